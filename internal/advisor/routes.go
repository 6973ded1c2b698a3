package advisor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/pathlight/internal/progress"
)

// RegisterRoutes mounts the adaptation suggestion endpoint on the given
// router.
func RegisterRoutes(r chi.Router, tracker *progress.Tracker) {
	r.Get("/api/suggestions/{pathID}", suggestionsHandler(tracker))
}

func suggestionsHandler(tracker *progress.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		pathID := chi.URLParam(r, "pathID")
		if userID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
			return
		}

		trend, err := tracker.Latest(r.Context(), userID, pathID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, Suggest(trend))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
