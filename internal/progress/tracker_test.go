package progress

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pathlight/pathlight/internal/db"
	"github.com/pathlight/pathlight/internal/planner"
)

type fakeResolver struct {
	durations map[string]int
}

func (f *fakeResolver) DurationDays(ctx context.Context, userID, pathID string) (int, error) {
	d, ok := f.durations[pathID]
	if !ok {
		return 0, planner.ErrNotFound
	}
	return d, nil
}

func newTestTracker(t *testing.T, durations map[string]int, window, history int) *Tracker {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewTracker(NewStore(database), &fakeResolver{durations: durations}, window, history)
}

func TestRecordComputesTrend(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 7}, 0, 0)
	ctx := context.Background()

	trend, err := tracker.Record(ctx, "u1", "p1", 1, Fields{Completed: true, TimeSpent: 60, DifficultyRating: 4, Satisfaction: 5})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if trend.CompletionRate != 100 {
		t.Errorf("completion rate = %v, want 100", trend.CompletionRate)
	}
	if trend.AvgTimeSpent != 60 {
		t.Errorf("avg time = %v, want 60", trend.AvgTimeSpent)
	}
	if trend.AvgDifficulty != 4 {
		t.Errorf("avg difficulty = %v, want 4", trend.AvgDifficulty)
	}
	if trend.DaysAnalyzed != 1 {
		t.Errorf("days analyzed = %d, want 1", trend.DaysAnalyzed)
	}

	trend, err = tracker.Record(ctx, "u1", "p1", 2, Fields{Completed: false, TimeSpent: 30, DifficultyRating: 2, Satisfaction: 3})
	if err != nil {
		t.Fatalf("record day 2: %v", err)
	}
	if trend.CompletionRate != 50 {
		t.Errorf("completion rate = %v, want 50", trend.CompletionRate)
	}
	if trend.AvgTimeSpent != 45 {
		t.Errorf("avg time = %v, want 45", trend.AvgTimeSpent)
	}
	if trend.AvgDifficulty != 3 {
		t.Errorf("avg difficulty = %v, want 3", trend.AvgDifficulty)
	}
	if trend.DaysAnalyzed != 2 {
		t.Errorf("days analyzed = %d, want 2", trend.DaysAnalyzed)
	}
}

func TestRecordTrendBounds(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 30}, 0, 0)
	ctx := context.Background()

	for day := 1; day <= 10; day++ {
		fields := Fields{Completed: day%2 == 0, TimeSpent: day * 17, DifficultyRating: 1 + day%5, Satisfaction: 1 + day%5}
		trend, err := tracker.Record(ctx, "u1", "p1", day, fields)
		if err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
		if trend.CompletionRate < 0 || trend.CompletionRate > 100 {
			t.Errorf("day %d: completion rate %v out of range", day, trend.CompletionRate)
		}
		if trend.AvgDifficulty < 1 || trend.AvgDifficulty > 5 {
			t.Errorf("day %d: avg difficulty %v out of range", day, trend.AvgDifficulty)
		}
	}
}

func TestRecordRepeatedDayOverwrites(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 7}, 0, 0)
	ctx := context.Background()

	if _, err := tracker.Record(ctx, "u1", "p1", 1, Fields{Completed: false, TimeSpent: 20, DifficultyRating: 2, Satisfaction: 2}); err != nil {
		t.Fatalf("first report: %v", err)
	}
	trend, err := tracker.Record(ctx, "u1", "p1", 1, Fields{Completed: true, TimeSpent: 90, DifficultyRating: 5, Satisfaction: 4})
	if err != nil {
		t.Fatalf("second report: %v", err)
	}
	if trend.DaysAnalyzed != 1 {
		t.Errorf("days analyzed = %d, want 1 after overwriting the same day", trend.DaysAnalyzed)
	}
	if trend.CompletionRate != 100 {
		t.Errorf("completion rate = %v, want 100 from the overwriting report", trend.CompletionRate)
	}
	if trend.AvgTimeSpent != 90 {
		t.Errorf("avg time = %v, want 90 from the overwriting report", trend.AvgTimeSpent)
	}

	records, err := tracker.Records(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestRecordWindowLimitsTrend(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 30}, 0, 0)
	ctx := context.Background()

	// Days 1..5 incomplete, days 6..12 complete. The window covers the
	// seven highest reported days, all complete.
	for day := 1; day <= 5; day++ {
		if _, err := tracker.Record(ctx, "u1", "p1", day, Fields{Completed: false, TimeSpent: 10, DifficultyRating: 3, Satisfaction: 3}); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}
	var trend *Trend
	var err error
	for day := 6; day <= 12; day++ {
		trend, err = tracker.Record(ctx, "u1", "p1", day, Fields{Completed: true, TimeSpent: 60, DifficultyRating: 3, Satisfaction: 4})
		if err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}
	if trend.DaysAnalyzed != DefaultTrendWindow {
		t.Errorf("days analyzed = %d, want %d", trend.DaysAnalyzed, DefaultTrendWindow)
	}
	if trend.CompletionRate != 100 {
		t.Errorf("completion rate = %v, want 100 over the window", trend.CompletionRate)
	}
}

func TestRecordHistoryCapped(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 90}, 0, 0)
	ctx := context.Background()

	for day := 1; day <= DefaultTrendHistory+10; day++ {
		if _, err := tracker.Record(ctx, "u1", "p1", day, Fields{Completed: true, TimeSpent: 45, DifficultyRating: 3, Satisfaction: 3}); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}

	history, err := tracker.History(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != DefaultTrendHistory {
		t.Errorf("history length = %d, want %d", len(history), DefaultTrendHistory)
	}
	// Oldest surviving entry was computed after the eleventh report, when
	// eleven days had been reported but only the window counts.
	if history[0].DaysAnalyzed != DefaultTrendWindow {
		t.Errorf("oldest entry days analyzed = %d, want %d", history[0].DaysAnalyzed, DefaultTrendWindow)
	}
}

func TestRecordDayOutOfRange(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 7}, 0, 0)
	ctx := context.Background()

	for _, day := range []int{0, -1, 8, 100} {
		_, err := tracker.Record(ctx, "u1", "p1", day, Fields{Completed: true, TimeSpent: 30, DifficultyRating: 3, Satisfaction: 3})
		var dayErr *InvalidDayError
		if !errors.As(err, &dayErr) {
			t.Errorf("day %d: got %v, want InvalidDayError", day, err)
		}
	}
}

func TestRecordInvalidFields(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 7}, 0, 0)
	ctx := context.Background()

	cases := []struct {
		name   string
		fields Fields
	}{
		{"negative time", Fields{TimeSpent: -1, DifficultyRating: 3, Satisfaction: 3}},
		{"difficulty too low", Fields{TimeSpent: 10, DifficultyRating: 0, Satisfaction: 3}},
		{"difficulty too high", Fields{TimeSpent: 10, DifficultyRating: 6, Satisfaction: 3}},
		{"satisfaction too low", Fields{TimeSpent: 10, DifficultyRating: 3, Satisfaction: 0}},
		{"satisfaction too high", Fields{TimeSpent: 10, DifficultyRating: 3, Satisfaction: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tracker.Record(ctx, "u1", "p1", 1, tc.fields)
			var fieldsErr *InvalidFieldsError
			if !errors.As(err, &fieldsErr) {
				t.Errorf("got %v, want InvalidFieldsError", err)
			}
		})
	}
}

func TestRecordUnknownPath(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 7}, 0, 0)

	_, err := tracker.Record(context.Background(), "u1", "missing", 1, Fields{Completed: true, TimeSpent: 30, DifficultyRating: 3, Satisfaction: 3})
	if !errors.Is(err, planner.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestRecordConcurrentKeys(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"p1": 30, "p2": 30}, 0, 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		day := i + 1
		for _, pathID := range []string{"p1", "p2"} {
			wg.Add(1)
			go func(pathID string, day int) {
				defer wg.Done()
				_, err := tracker.Record(ctx, "u1", pathID, day, Fields{Completed: true, TimeSpent: 30, DifficultyRating: 3, Satisfaction: 3})
				errs <- err
			}(pathID, day)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent record: %v", err)
		}
	}

	for _, pathID := range []string{"p1", "p2"} {
		records, err := tracker.Records(ctx, "u1", pathID)
		if err != nil {
			t.Fatalf("records %s: %v", pathID, err)
		}
		if len(records) != 10 {
			t.Errorf("%s: got %d records, want 10", pathID, len(records))
		}
	}
}

func TestSummarize(t *testing.T) {
	tracker := newTestTracker(t, map[string]int{"done": 2, "active": 10, "untouched": 5}, 0, 0)
	ctx := context.Background()

	for day := 1; day <= 2; day++ {
		if _, err := tracker.Record(ctx, "u1", "done", day, Fields{Completed: true, TimeSpent: 30, DifficultyRating: 3, Satisfaction: 4}); err != nil {
			t.Fatalf("record done day %d: %v", day, err)
		}
	}
	if _, err := tracker.Record(ctx, "u1", "active", 1, Fields{Completed: true, TimeSpent: 30, DifficultyRating: 3, Satisfaction: 4}); err != nil {
		t.Fatalf("record active: %v", err)
	}

	summary, err := tracker.Summarize(ctx, "u1", []PathInfo{
		{ID: "done", DurationDays: 2},
		{ID: "active", DurationDays: 10},
		{ID: "untouched", DurationDays: 5},
	})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalPaths != 3 {
		t.Errorf("total paths = %d, want 3", summary.TotalPaths)
	}
	if summary.CompletedPaths != 1 {
		t.Errorf("completed paths = %d, want 1", summary.CompletedPaths)
	}
	if summary.ActivePaths != 1 {
		t.Errorf("active paths = %d, want 1", summary.ActivePaths)
	}
	if summary.TotalDaysStudied != 3 {
		t.Errorf("total days studied = %d, want 3", summary.TotalDaysStudied)
	}
	want := (100.0 + 10.0 + 0.0) / 3.0
	if summary.AverageCompletion != want {
		t.Errorf("average completion = %v, want %v", summary.AverageCompletion, want)
	}
}
