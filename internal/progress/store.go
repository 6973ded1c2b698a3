package progress

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pathlight/pathlight/internal/db"
)

// Store provides persistence for progress records and trend history.
type Store struct {
	db *db.DB
}

// NewStore creates a new progress store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Upsert creates or overwrites the record for (user, path, day).
func (s *Store) Upsert(ctx context.Context, rec Record) error {
	completed := 0
	if rec.Completed {
		completed = 1
	}
	if rec.ReportedAt.IsZero() {
		rec.ReportedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress_records (user_id, path_id, day, completed, time_spent, difficulty_rating, satisfaction, reported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, path_id, day) DO UPDATE SET
			completed = excluded.completed,
			time_spent = excluded.time_spent,
			difficulty_rating = excluded.difficulty_rating,
			satisfaction = excluded.satisfaction,
			reported_at = excluded.reported_at`,
		rec.UserID,
		rec.PathID,
		rec.Day,
		completed,
		rec.TimeSpent,
		rec.DifficultyRating,
		rec.Satisfaction,
		rec.ReportedAt.Format(time.DateTime),
	)
	return err
}

// Records returns all records for a (user, path) ordered by day.
func (s *Store) Records(ctx context.Context, userID, pathID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, path_id, day, completed, time_spent, difficulty_rating, satisfaction, reported_at
		FROM progress_records
		WHERE user_id = ? AND path_id = ?
		ORDER BY day`,
		userID, pathID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Recent returns the most recently reported records by day number, highest
// days first, limited to the trend window.
func (s *Store) Recent(ctx context.Context, userID, pathID string, window int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, path_id, day, completed, time_spent, difficulty_rating, satisfaction, reported_at
		FROM progress_records
		WHERE user_id = ? AND path_id = ?
		ORDER BY day DESC
		LIMIT ?`,
		userID, pathID, window)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var completed int
		var reported string
		if err := rows.Scan(&rec.UserID, &rec.PathID, &rec.Day, &completed, &rec.TimeSpent, &rec.DifficultyRating, &rec.Satisfaction, &reported); err != nil {
			return nil, err
		}
		rec.Completed = completed == 1
		rec.ReportedAt, _ = time.Parse(time.DateTime, reported)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AppendTrend adds a trend to the history for (user, path) and evicts the
// oldest entries beyond cap, FIFO.
func (s *Store) AppendTrend(ctx context.Context, userID, pathID string, trend Trend, cap int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO performance_trends (user_id, path_id, completion_rate, avg_time_spent, avg_difficulty_rating, days_analyzed, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID,
		pathID,
		trend.CompletionRate,
		trend.AvgTimeSpent,
		trend.AvgDifficulty,
		trend.DaysAnalyzed,
		trend.ComputedAt.Format(time.DateTime),
	)
	if err != nil {
		return err
	}

	if cap <= 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM performance_trends
		WHERE user_id = ? AND path_id = ? AND seq NOT IN (
			SELECT seq FROM performance_trends
			WHERE user_id = ? AND path_id = ?
			ORDER BY seq DESC LIMIT ?
		)`,
		userID, pathID, userID, pathID, cap)
	return err
}

// Trends returns the trend history for (user, path), oldest first.
func (s *Store) Trends(ctx context.Context, userID, pathID string) ([]Trend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT completion_rate, avg_time_spent, avg_difficulty_rating, days_analyzed, computed_at
		FROM performance_trends
		WHERE user_id = ? AND path_id = ?
		ORDER BY seq`,
		userID, pathID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []Trend
	for rows.Next() {
		var tr Trend
		var computed string
		if err := rows.Scan(&tr.CompletionRate, &tr.AvgTimeSpent, &tr.AvgDifficulty, &tr.DaysAnalyzed, &computed); err != nil {
			return nil, err
		}
		tr.ComputedAt, _ = time.Parse(time.DateTime, computed)
		trends = append(trends, tr)
	}
	return trends, rows.Err()
}

// LatestTrend returns the most recent trend for (user, path), or nil if no
// progress has been reported yet.
func (s *Store) LatestTrend(ctx context.Context, userID, pathID string) (*Trend, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT completion_rate, avg_time_spent, avg_difficulty_rating, days_analyzed, computed_at
		FROM performance_trends
		WHERE user_id = ? AND path_id = ?
		ORDER BY seq DESC LIMIT 1`,
		userID, pathID)

	var tr Trend
	var computed string
	err := row.Scan(&tr.CompletionRate, &tr.AvgTimeSpent, &tr.AvgDifficulty, &tr.DaysAnalyzed, &computed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tr.ComputedAt, _ = time.Parse(time.DateTime, computed)
	return &tr, nil
}

// CompletedDays counts completed records for (user, path).
func (s *Store) CompletedDays(ctx context.Context, userID, pathID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM progress_records
		WHERE user_id = ? AND path_id = ? AND completed = 1`,
		userID, pathID).Scan(&count)
	return count, err
}
