package progress

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultTrendWindow is the number of most recently reported days a
	// trend is computed over.
	DefaultTrendWindow = 7

	// DefaultTrendHistory caps the trend history per (user, path); older
	// entries are evicted FIFO.
	DefaultTrendHistory = 30
)

// PathResolver supplies the duration of a referenced path. Implemented by
// the planner store.
type PathResolver interface {
	DurationDays(ctx context.Context, userID, pathID string) (int, error)
}

// PathInfo is the slice of path metadata Summarize needs.
type PathInfo struct {
	ID           string
	DurationDays int
}

// Tracker records per-day completion events and maintains the rolling trend
// history for each (user, path).
type Tracker struct {
	store   *Store
	paths   PathResolver
	window  int
	history int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a progress tracker. window and history fall back to the
// defaults when zero.
func NewTracker(store *Store, paths PathResolver, window, history int) *Tracker {
	if window <= 0 {
		window = DefaultTrendWindow
	}
	if history <= 0 {
		history = DefaultTrendHistory
	}
	return &Tracker{
		store:   store,
		paths:   paths,
		window:  window,
		history: history,
		locks:   make(map[string]*sync.Mutex),
	}
}

// keyLock returns the mutex serializing updates for one (user, path) key.
// Different keys proceed in parallel.
func (t *Tracker) keyLock(userID, pathID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := userID + "\x00" + pathID
	lock, ok := t.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[key] = lock
	}
	return lock
}

// Record upserts the progress record for (user, path, day), recomputes the
// trend over the most recent window of reported days, appends it to the
// capped history, and returns it. The upsert-then-recompute sequence is
// atomic per key; concurrent reports for the same key do not interleave.
func (t *Tracker) Record(ctx context.Context, userID, pathID string, day int, fields Fields) (*Trend, error) {
	duration, err := t.paths.DurationDays(ctx, userID, pathID)
	if err != nil {
		return nil, err
	}
	if day < 1 || day > duration {
		return nil, &InvalidDayError{Day: day, Duration: duration}
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	lock := t.keyLock(userID, pathID)
	lock.Lock()
	defer lock.Unlock()

	rec := Record{
		UserID:           userID,
		PathID:           pathID,
		Day:              day,
		Completed:        fields.Completed,
		TimeSpent:        fields.TimeSpent,
		DifficultyRating: fields.DifficultyRating,
		Satisfaction:     fields.Satisfaction,
		ReportedAt:       time.Now().UTC(),
	}
	if err := t.store.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	recent, err := t.store.Recent(ctx, userID, pathID, t.window)
	if err != nil {
		return nil, err
	}

	trend := computeTrend(recent)
	if err := t.store.AppendTrend(ctx, userID, pathID, trend, t.history); err != nil {
		return nil, err
	}
	return &trend, nil
}

func validateFields(fields Fields) error {
	if fields.TimeSpent < 0 {
		return &InvalidFieldsError{Field: "time_spent", Reason: "must be >= 0"}
	}
	if fields.DifficultyRating < 1 || fields.DifficultyRating > 5 {
		return &InvalidFieldsError{Field: "difficulty_rating", Reason: "must be between 1 and 5"}
	}
	if fields.Satisfaction < 1 || fields.Satisfaction > 5 {
		return &InvalidFieldsError{Field: "satisfaction", Reason: "must be between 1 and 5"}
	}
	return nil
}

// computeTrend derives the rolling snapshot from the given records.
func computeTrend(records []Record) Trend {
	trend := Trend{
		DaysAnalyzed: len(records),
		ComputedAt:   time.Now().UTC(),
	}
	if len(records) == 0 {
		return trend
	}

	var completed int
	var totalTime, totalDifficulty float64
	for _, rec := range records {
		if rec.Completed {
			completed++
		}
		totalTime += float64(rec.TimeSpent)
		totalDifficulty += float64(rec.DifficultyRating)
	}

	n := float64(len(records))
	trend.CompletionRate = float64(completed) / n * 100
	trend.AvgTimeSpent = totalTime / n
	trend.AvgDifficulty = totalDifficulty / n
	return trend
}

// Latest returns the most recent trend for (user, path), nil if none.
func (t *Tracker) Latest(ctx context.Context, userID, pathID string) (*Trend, error) {
	return t.store.LatestTrend(ctx, userID, pathID)
}

// History returns the trend history for (user, path), oldest first.
func (t *Tracker) History(ctx context.Context, userID, pathID string) ([]Trend, error) {
	return t.store.Trends(ctx, userID, pathID)
}

// Records returns all progress records for (user, path) ordered by day.
func (t *Tracker) Records(ctx context.Context, userID, pathID string) ([]Record, error) {
	return t.store.Records(ctx, userID, pathID)
}

// Summarize aggregates completion across the given paths for one learner.
// Paths at 100% count as completed; anything in between counts as active.
func (t *Tracker) Summarize(ctx context.Context, userID string, paths []PathInfo) (*Summary, error) {
	summary := &Summary{TotalPaths: len(paths)}

	var totalCompletion float64
	for _, p := range paths {
		days, err := t.store.CompletedDays(ctx, userID, p.ID)
		if err != nil {
			return nil, err
		}
		summary.TotalDaysStudied += days

		var pct float64
		if p.DurationDays > 0 {
			pct = float64(days) / float64(p.DurationDays) * 100
		}
		totalCompletion += pct
		switch {
		case pct >= 100:
			summary.CompletedPaths++
		case pct > 0:
			summary.ActivePaths++
		}
	}
	if len(paths) > 0 {
		summary.AverageCompletion = totalCompletion / float64(len(paths))
	}
	return summary, nil
}
