package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/pathlight/internal/planner"
)

// reportRequest is the body of POST /api/progress.
type reportRequest struct {
	UserID string `json:"user_id"`
	PathID string `json:"path_id"`
	Day    int    `json:"day"`
	Fields
}

// RegisterRoutes mounts the progress API endpoints on the given router.
func RegisterRoutes(r chi.Router, tracker *Tracker, paths *planner.Store) {
	r.Post("/api/progress", reportHandler(tracker))
	r.Get("/api/progress/{pathID}", recordsHandler(tracker))
	r.Get("/api/trends/{pathID}", trendsHandler(tracker))
	r.Get("/api/analytics", analyticsHandler(tracker, paths))
}

func reportHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		if req.UserID == "" || req.PathID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id and path_id are required"})
			return
		}
		// Ratings default to the scale midpoint when omitted.
		if req.DifficultyRating == 0 {
			req.DifficultyRating = 3
		}
		if req.Satisfaction == 0 {
			req.Satisfaction = 3
		}

		trend, err := tracker.Record(r.Context(), req.UserID, req.PathID, req.Day, req.Fields)
		if err != nil {
			status := http.StatusInternalServerError
			var dayErr *InvalidDayError
			var fieldsErr *InvalidFieldsError
			switch {
			case errors.As(err, &dayErr), errors.As(err, &fieldsErr):
				status = http.StatusBadRequest
			case errors.Is(err, planner.ErrNotFound):
				status = http.StatusNotFound
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, trend)
	}
}

func recordsHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")

		records, err := tracker.Records(r.Context(), userID, pathID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if records == nil {
			records = []Record{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func trendsHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")

		trends, err := tracker.History(r.Context(), userID, pathID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if trends == nil {
			trends = []Trend{}
		}
		writeJSON(w, http.StatusOK, trends)
	}
}

func analyticsHandler(tracker *Tracker, paths *planner.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
			return
		}

		summaries, err := paths.List(r.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		infos := make([]PathInfo, len(summaries))
		for i, s := range summaries {
			infos[i] = PathInfo{ID: s.ID, DurationDays: s.DurationDays}
		}

		summary, err := tracker.Summarize(r.Context(), userID, infos)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
