package learner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/pathlight/pathlight/internal/db"
)

// Store provides persistence for learner profiles, preferences, and metrics.
type Store struct {
	db *db.DB
}

// NewStore creates a new learner store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// SetProfile upserts a learner's profile.
func (s *Store) SetProfile(ctx context.Context, p Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learner_profiles (user_id, learning_style, pace_preference, complexity_tolerance, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			learning_style = excluded.learning_style,
			pace_preference = excluded.pace_preference,
			complexity_tolerance = excluded.complexity_tolerance,
			updated_at = excluded.updated_at`,
		p.UserID,
		string(p.LearningStyle),
		string(p.PacePreference),
		string(p.ComplexityTolerance),
		time.Now().UTC().Format(time.DateTime),
	)
	return err
}

// Profile returns the stored profile for a user, or nil if none exists.
func (s *Store) Profile(ctx context.Context, userID string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, learning_style, pace_preference, complexity_tolerance, updated_at
		FROM learner_profiles WHERE user_id = ?`, userID)

	var p Profile
	var updated string
	err := row.Scan(&p.UserID, &p.LearningStyle, &p.PacePreference, &p.ComplexityTolerance, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.UpdatedAt, _ = time.Parse(time.DateTime, updated)
	return &p, nil
}

// SetPreferences upserts a learner's study preferences.
func (s *Store) SetPreferences(ctx context.Context, p Preferences) error {
	contentTypes, err := json.Marshal(p.ContentTypes)
	if err != nil {
		return err
	}
	slots, err := json.Marshal(p.StudyTimeSlots)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO learner_preferences (user_id, content_types, study_time_slots, notification_frequency, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			content_types = excluded.content_types,
			study_time_slots = excluded.study_time_slots,
			notification_frequency = excluded.notification_frequency,
			updated_at = excluded.updated_at`,
		p.UserID,
		string(contentTypes),
		string(slots),
		p.NotificationFrequency,
		time.Now().UTC().Format(time.DateTime),
	)
	return err
}

// Preferences returns the stored preferences for a user, or nil if none exist.
func (s *Store) Preferences(ctx context.Context, userID string) (*Preferences, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, content_types, study_time_slots, notification_frequency, updated_at
		FROM learner_preferences WHERE user_id = ?`, userID)

	var p Preferences
	var contentTypes, slots, updated string
	err := row.Scan(&p.UserID, &contentTypes, &slots, &p.NotificationFrequency, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(contentTypes), &p.ContentTypes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(slots), &p.StudyTimeSlots); err != nil {
		return nil, err
	}
	p.UpdatedAt, _ = time.Parse(time.DateTime, updated)
	return &p, nil
}

// SetMetrics upserts a learner's performance metrics.
func (s *Store) SetMetrics(ctx context.Context, m Metrics) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learner_metrics (user_id, completion_rate, consistency_score, retention_rate, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			completion_rate = excluded.completion_rate,
			consistency_score = excluded.consistency_score,
			retention_rate = excluded.retention_rate,
			updated_at = excluded.updated_at`,
		m.UserID,
		m.CompletionRate,
		m.ConsistencyScore,
		m.RetentionRate,
		time.Now().UTC().Format(time.DateTime),
	)
	return err
}

// Metrics returns the stored metrics for a user, or nil if none exist.
func (s *Store) Metrics(ctx context.Context, userID string) (*Metrics, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, completion_rate, consistency_score, retention_rate, updated_at
		FROM learner_metrics WHERE user_id = ?`, userID)

	var m Metrics
	var updated string
	err := row.Scan(&m.UserID, &m.CompletionRate, &m.ConsistencyScore, &m.RetentionRate, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.UpdatedAt, _ = time.Parse(time.DateTime, updated)
	return &m, nil
}
