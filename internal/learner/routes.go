package learner

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the learner API endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store, aggregator *Aggregator) {
	r.Get("/api/learners/{userID}/context", contextHandler(aggregator))
	r.Get("/api/learners/{userID}/profile", getProfileHandler(store))
	r.Put("/api/learners/{userID}/profile", setProfileHandler(store))
	r.Put("/api/learners/{userID}/preferences", setPreferencesHandler(store))
	r.Put("/api/learners/{userID}/metrics", setMetricsHandler(store))
}

func contextHandler(aggregator *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		lc := aggregator.BuildContext(r.Context(), userID, Overrides{})
		writeJSON(w, http.StatusOK, lc)
	}
}

func getProfileHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		profile, err := store.Profile(r.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if profile == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func setProfileHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		profile.UserID = chi.URLParam(r, "userID")
		if profile.LearningStyle != "" && !ValidStyle(profile.LearningStyle) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid learning_style"})
			return
		}
		if profile.LearningStyle == "" {
			profile.LearningStyle = StyleMixed
		}
		if profile.PacePreference == "" {
			profile.PacePreference = PaceModerate
		}
		if profile.ComplexityTolerance == "" {
			profile.ComplexityTolerance = ToleranceMedium
		}

		if err := store.SetProfile(r.Context(), profile); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func setPreferencesHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prefs Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		prefs.UserID = chi.URLParam(r, "userID")
		if prefs.NotificationFrequency == "" {
			prefs.NotificationFrequency = "daily"
		}

		if err := store.SetPreferences(r.Context(), prefs); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func setMetricsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var metrics Metrics
		if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		metrics.UserID = chi.URLParam(r, "userID")

		if err := store.SetMetrics(r.Context(), metrics); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
