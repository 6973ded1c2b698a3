package progress

import (
	"fmt"
	"time"
)

// Record is one day's reported progress for a (user, path). Reports upsert:
// reporting the same day again overwrites the earlier record.
type Record struct {
	UserID           string    `json:"user_id"`
	PathID           string    `json:"path_id"`
	Day              int       `json:"day"`
	Completed        bool      `json:"completed"`
	TimeSpent        int       `json:"time_spent"`
	DifficultyRating int       `json:"difficulty_rating"`
	Satisfaction     int       `json:"satisfaction"`
	ReportedAt       time.Time `json:"timestamp"`
}

// Fields carries the caller-supplied part of a progress report.
type Fields struct {
	Completed        bool `json:"completed"`
	TimeSpent        int  `json:"time_spent"`
	DifficultyRating int  `json:"difficulty_rating"`
	Satisfaction     int  `json:"satisfaction"`
}

// Trend is a rolling snapshot over the most recently reported days of a
// (user, path).
type Trend struct {
	CompletionRate float64   `json:"completion_rate"`
	AvgTimeSpent   float64   `json:"avg_time_spent"`
	AvgDifficulty  float64   `json:"avg_difficulty_rating"`
	DaysAnalyzed   int       `json:"days_analyzed"`
	ComputedAt     time.Time `json:"timestamp"`
}

// Summary aggregates a learner's activity across all of their paths.
type Summary struct {
	TotalPaths        int     `json:"total_paths"`
	CompletedPaths    int     `json:"completed_paths"`
	ActivePaths       int     `json:"active_paths"`
	TotalDaysStudied  int     `json:"total_days_studied"`
	AverageCompletion float64 `json:"average_completion_rate"`
}

// InvalidDayError reports a progress report for a day outside the referenced
// path's range.
type InvalidDayError struct {
	Day      int
	Duration int
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("day %d is outside the path range 1..%d", e.Day, e.Duration)
}

// InvalidFieldsError reports out-of-range rating fields on a progress report.
type InvalidFieldsError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
