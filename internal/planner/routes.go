package planner

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/pathlight/internal/learner"
)

// generateRequest is the body of POST /api/paths.
type generateRequest struct {
	UserID       string            `json:"user_id"`
	Goal         string            `json:"goal"`
	DurationDays int               `json:"duration_days"`
	Difficulty   Difficulty        `json:"difficulty"`
	Type         PathType          `json:"type"`
	Context      learner.Overrides `json:"context"`
}

// RegisterRoutes mounts the learning path API endpoints on the given router.
func RegisterRoutes(r chi.Router, orchestrator *Orchestrator, store *Store, aggregator *learner.Aggregator) {
	r.Post("/api/paths", generateHandler(orchestrator, store, aggregator))
	r.Get("/api/paths", listHandler(store))
	r.Get("/api/paths/{pathID}", getHandler(store))
	r.Delete("/api/paths/{pathID}", deleteHandler(store))
	r.Post("/api/paths/{pathID}/duplicate", duplicateHandler(store))
}

func generateHandler(orchestrator *Orchestrator, store *Store, aggregator *learner.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		if req.UserID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
			return
		}

		lc := aggregator.BuildContext(r.Context(), req.UserID, req.Context)
		path, err := orchestrator.Generate(r.Context(), Request{
			UserID:       req.UserID,
			Goal:         req.Goal,
			DurationDays: req.DurationDays,
			Difficulty:   req.Difficulty,
			Type:         req.Type,
		}, lc)
		if err != nil {
			var invalid *InvalidInputError
			if errors.As(err, &invalid) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalid.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		if _, err := store.Save(r.Context(), path); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, path)
	}
}

func listHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
			return
		}

		summaries, err := store.List(r.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if summaries == nil {
			summaries = []PathSummary{}
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func getHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")

		path, err := store.Get(r.Context(), userID, pathID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, path)
	}
}

func deleteHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")

		if err := store.Delete(r.Context(), userID, pathID); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func duplicateHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")

		dup, err := store.Duplicate(r.Context(), userID, pathID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, dup)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
