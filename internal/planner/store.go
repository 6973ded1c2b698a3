package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pathlight/pathlight/internal/db"
)

// Store provides persistence for learning paths. The full plan is stored as
// a JSON payload; the query-relevant columns are lifted out alongside it.
type Store struct {
	db *db.DB
}

// NewStore creates a new learning path store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save persists a learning path and returns its ID. If the path has no ID, a
// new UUID is assigned.
func (s *Store) Save(ctx context.Context, path *LearningPath) (string, error) {
	if path.ID == "" {
		path.ID = uuid.NewString()
	}
	if path.CreatedAt.IsZero() {
		path.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(path)
	if err != nil {
		return "", fmt.Errorf("marshalling path payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO learning_paths (id, user_id, goal, duration_days, difficulty, path_type, provenance, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			goal = excluded.goal,
			duration_days = excluded.duration_days,
			difficulty = excluded.difficulty,
			path_type = excluded.path_type,
			provenance = excluded.provenance,
			payload = excluded.payload`,
		path.ID,
		path.UserID,
		path.Goal,
		path.DurationDays,
		string(path.Difficulty),
		string(path.Type),
		string(path.Provenance),
		string(payload),
		path.CreatedAt.Format(time.DateTime),
	)
	if err != nil {
		return "", fmt.Errorf("saving learning path: %w", err)
	}
	return path.ID, nil
}

// Get retrieves a learning path by ID for the given user.
// Returns ErrNotFound if no such path exists.
func (s *Store) Get(ctx context.Context, userID, pathID string) (*LearningPath, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM learning_paths WHERE id = ? AND user_id = ?`,
		pathID, userID)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var path LearningPath
	if err := json.Unmarshal([]byte(payload), &path); err != nil {
		return nil, fmt.Errorf("decoding path payload: %w", err)
	}
	return &path, nil
}

// List returns summaries of all of a user's paths, newest first, with
// completed-day counts joined in from progress records.
func (s *Store) List(ctx context.Context, userID string) ([]PathSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.goal, p.duration_days, p.difficulty, p.path_type, p.provenance, p.created_at,
			COALESCE((SELECT COUNT(*) FROM progress_records r
				WHERE r.user_id = p.user_id AND r.path_id = p.id AND r.completed = 1), 0)
		FROM learning_paths p
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC, p.id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []PathSummary
	for rows.Next() {
		var ps PathSummary
		var created string
		if err := rows.Scan(&ps.ID, &ps.Goal, &ps.DurationDays, &ps.Difficulty, &ps.Type, &ps.Provenance, &created, &ps.CompletedDays); err != nil {
			return nil, err
		}
		ps.CreatedAt, _ = time.Parse(time.DateTime, created)
		if ps.DurationDays > 0 {
			ps.CompletionPercent = float64(ps.CompletedDays) / float64(ps.DurationDays) * 100
		}
		results = append(results, ps)
	}
	return results, rows.Err()
}

// ListPathIDs returns the IDs of a user's paths, newest first. Implements
// learner.PathLister.
func (s *Store) ListPathIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM learning_paths WHERE user_id = ? ORDER BY created_at DESC, id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DurationDays returns the duration of a path, or ErrNotFound.
func (s *Store) DurationDays(ctx context.Context, userID, pathID string) (int, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT duration_days FROM learning_paths WHERE id = ? AND user_id = ?`,
		pathID, userID)

	var days int
	if err := row.Scan(&days); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return days, nil
}

// Delete removes a path along with its progress records and trend history.
func (s *Store) Delete(ctx context.Context, userID, pathID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM learning_paths WHERE id = ? AND user_id = ?`, pathID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM progress_records WHERE user_id = ? AND path_id = ?`, userID, pathID); err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM performance_trends WHERE user_id = ? AND path_id = ?`, userID, pathID)
	return err
}

// Duplicate copies an existing path under a fresh ID with " (Copy)" appended
// to the goal. Progress is not carried over.
func (s *Store) Duplicate(ctx context.Context, userID, pathID string) (*LearningPath, error) {
	original, err := s.Get(ctx, userID, pathID)
	if err != nil {
		return nil, err
	}

	dup := *original
	dup.ID = ""
	dup.Goal = original.Goal + " (Copy)"
	dup.CreatedAt = time.Now().UTC()

	if _, err := s.Save(ctx, &dup); err != nil {
		return nil, err
	}
	return &dup, nil
}
