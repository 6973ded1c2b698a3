package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with pathlight-specific helpers.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Each connection to :memory: is a distinct database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. New tables are added here.
const schema = `
CREATE TABLE IF NOT EXISTS learner_profiles (
    user_id TEXT PRIMARY KEY,
    learning_style TEXT NOT NULL DEFAULT 'mixed' CHECK(learning_style IN ('visual','auditory','kinesthetic','mixed')),
    pace_preference TEXT NOT NULL DEFAULT 'moderate' CHECK(pace_preference IN ('slow','moderate','fast')),
    complexity_tolerance TEXT NOT NULL DEFAULT 'medium' CHECK(complexity_tolerance IN ('low','medium','high')),
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS learner_preferences (
    user_id TEXT PRIMARY KEY,
    content_types TEXT NOT NULL DEFAULT '[]',
    study_time_slots TEXT NOT NULL DEFAULT '[]',
    notification_frequency TEXT NOT NULL DEFAULT 'daily',
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS learner_metrics (
    user_id TEXT PRIMARY KEY,
    completion_rate REAL NOT NULL DEFAULT 0,
    consistency_score REAL NOT NULL DEFAULT 0,
    retention_rate REAL NOT NULL DEFAULT 0,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS learning_paths (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    goal TEXT NOT NULL,
    duration_days INTEGER NOT NULL CHECK(duration_days BETWEEN 1 AND 90),
    difficulty TEXT NOT NULL CHECK(difficulty IN ('beginner','intermediate','advanced','expert')),
    path_type TEXT NOT NULL DEFAULT 'normal' CHECK(path_type IN ('normal','adaptive')),
    provenance TEXT NOT NULL DEFAULT 'fallback' CHECK(provenance IN ('personalized','fallback')),
    payload TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_paths_user ON learning_paths(user_id);

CREATE TABLE IF NOT EXISTS progress_records (
    user_id TEXT NOT NULL,
    path_id TEXT NOT NULL,
    day INTEGER NOT NULL CHECK(day >= 1),
    completed INTEGER NOT NULL DEFAULT 0,
    time_spent INTEGER NOT NULL DEFAULT 0 CHECK(time_spent >= 0),
    difficulty_rating INTEGER NOT NULL DEFAULT 3 CHECK(difficulty_rating BETWEEN 1 AND 5),
    satisfaction INTEGER NOT NULL DEFAULT 3 CHECK(satisfaction BETWEEN 1 AND 5),
    reported_at DATETIME NOT NULL DEFAULT (datetime('now')),
    PRIMARY KEY (user_id, path_id, day)
);

CREATE INDEX IF NOT EXISTS idx_progress_path ON progress_records(user_id, path_id);

CREATE TABLE IF NOT EXISTS performance_trends (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    path_id TEXT NOT NULL,
    completion_rate REAL NOT NULL,
    avg_time_spent REAL NOT NULL,
    avg_difficulty_rating REAL NOT NULL,
    days_analyzed INTEGER NOT NULL,
    computed_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_trends_path ON performance_trends(user_id, path_id, seq);
`
