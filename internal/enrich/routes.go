package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/pathlight/internal/planner"
)

// PathGetter loads a stored path. Implemented by the planner store.
type PathGetter interface {
	Get(ctx context.Context, userID, pathID string) (*planner.LearningPath, error)
}

// RegisterRoutes mounts the export and enrichment endpoints on the given
// router. enricher may be nil when no collaborators are configured.
func RegisterRoutes(r chi.Router, paths PathGetter, enricher *Enricher) {
	r.Get("/api/paths/{pathID}/export", exportHandler(paths))
	r.Get("/api/paths/{pathID}/extras", extrasHandler(paths, enricher))
}

func exportHandler(paths PathGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")
		format := Format(r.URL.Query().Get("format"))

		path, err := paths.Get(r.Context(), userID, pathID)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, planner.ErrNotFound) {
				status = http.StatusNotFound
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}

		content, contentType, err := Export(path, format)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

func extrasHandler(paths PathGetter, enricher *Enricher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")

		path, err := paths.Get(r.Context(), userID, pathID)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, planner.ErrNotFound) {
				status = http.StatusNotFound
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}

		if enricher == nil {
			writeJSON(w, http.StatusOK, []DayExtras{})
			return
		}
		writeJSON(w, http.StatusOK, enricher.Enrich(r.Context(), path))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
