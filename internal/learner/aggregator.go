package learner

import (
	"context"
	"time"
)

// Defaults used when a learner has no stored data. Missing data degrades to
// these, never to an error.
const (
	defaultTimePerDay   = "1 hour"
	defaultCurrentLevel = "Beginner"
)

// PathLister supplies the identifiers of a learner's prior learning paths.
// Implemented by the planner store.
type PathLister interface {
	ListPathIDs(ctx context.Context, userID string) ([]string, error)
}

// Aggregator merges a learner's stored profile, preferences, and performance
// metrics with caller-supplied overrides into a single Context.
type Aggregator struct {
	store *Store
	paths PathLister
}

// NewAggregator creates a context aggregator. paths may be nil, in which case
// PreviousPaths is left empty.
func NewAggregator(store *Store, paths PathLister) *Aggregator {
	return &Aggregator{store: store, paths: paths}
}

// BuildContext assembles the learner context for a generation request.
// Merge order, later wins: profile defaults, stored preferences, stored
// metrics, then base overrides. Lookup failures degrade to defaults; this
// function never returns an error to the caller.
func (a *Aggregator) BuildContext(ctx context.Context, userID string, base Overrides) Context {
	lc := Context{
		UserID:              userID,
		Timestamp:           time.Now().UTC(),
		LearningStyle:       StyleMixed,
		PacePreference:      PaceModerate,
		ComplexityTolerance: ToleranceMedium,
		TimePerDay:          defaultTimePerDay,
		CurrentLevel:        defaultCurrentLevel,
	}

	if profile, err := a.store.Profile(ctx, userID); err == nil && profile != nil {
		if ValidStyle(profile.LearningStyle) {
			lc.LearningStyle = profile.LearningStyle
		}
		if profile.PacePreference != "" {
			lc.PacePreference = profile.PacePreference
		}
		if profile.ComplexityTolerance != "" {
			lc.ComplexityTolerance = profile.ComplexityTolerance
		}
	}

	if prefs, err := a.store.Preferences(ctx, userID); err == nil && prefs != nil {
		lc.Interests = prefs.ContentTypes
		lc.TimePerDay = estimateTimePerDay(prefs.StudyTimeSlots)
	}

	if metrics, err := a.store.Metrics(ctx, userID); err == nil && metrics != nil {
		lc.CompletionRate = metrics.CompletionRate
		lc.ConsistencyScore = metrics.ConsistencyScore
		lc.RetentionRate = metrics.RetentionRate
		lc.CurrentLevel = assessLevel(metrics.CompletionRate)
	}

	if a.paths != nil {
		if ids, err := a.paths.ListPathIDs(ctx, userID); err == nil {
			lc.PreviousPaths = ids
		}
	}

	// Caller-supplied overrides win over everything stored.
	if base.LearningStyle != "" && ValidStyle(base.LearningStyle) {
		lc.LearningStyle = base.LearningStyle
	}
	if base.Pace != "" {
		lc.PacePreference = base.Pace
	}
	if base.TimePerDay != "" {
		lc.TimePerDay = base.TimePerDay
	}
	if base.CurrentLevel != "" {
		lc.CurrentLevel = base.CurrentLevel
	}
	if len(base.Interests) > 0 {
		lc.Interests = base.Interests
	}

	return lc
}

// estimateTimePerDay derives a daily time estimate from study-time slots.
// Two or more slots indicate a committed schedule; a single morning slot is
// worth more than a single evening one.
func estimateTimePerDay(slots []string) string {
	if len(slots) >= 2 {
		return "2-3 hours"
	}
	for _, slot := range slots {
		if slot == "morning" {
			return "1-2 hours"
		}
	}
	return defaultTimePerDay
}

// assessLevel maps a historical completion rate onto a skill band.
func assessLevel(completionRate float64) string {
	switch {
	case completionRate >= 90:
		return "Advanced"
	case completionRate >= 70:
		return "Intermediate"
	default:
		return defaultCurrentLevel
	}
}
