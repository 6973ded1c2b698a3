package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/pathlight/pathlight/internal/db"
	"github.com/pathlight/pathlight/internal/learner"
)

func setupTestStore(t *testing.T) (*Store, *db.DB) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database), database
}

func samplePath(t *testing.T, userID string, days int) *LearningPath {
	t.Helper()
	o := NewOrchestrator(nil, "", Options{})
	req := validRequest()
	req.UserID = userID
	req.DurationDays = days
	path, err := o.Generate(context.Background(), req, learner.Context{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return path
}

func TestSaveAndGet(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	path := samplePath(t, "u1", 5)
	id, err := store.Save(ctx, path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned empty ID")
	}

	got, err := store.Get(ctx, "u1", id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Goal != path.Goal {
		t.Errorf("Goal = %q, want %q", got.Goal, path.Goal)
	}
	if len(got.DailyPlans) != 5 {
		t.Errorf("DailyPlans = %d, want 5", len(got.DailyPlans))
	}
	if got.Provenance != ProvenanceFallback {
		t.Errorf("Provenance = %q", got.Provenance)
	}
}

func TestGetNotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Get(context.Background(), "u1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetWrongUser(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, samplePath(t, "u1", 3))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := store.Get(ctx, "u2", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestListWithCompletion(t *testing.T) {
	store, database := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, samplePath(t, "u1", 4))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mark two of four days complete.
	for _, day := range []int{1, 2} {
		if _, err := database.Exec(`
			INSERT INTO progress_records (user_id, path_id, day, completed)
			VALUES (?, ?, ?, 1)`, "u1", id, day); err != nil {
			t.Fatalf("insert progress: %v", err)
		}
	}

	summaries, err := store.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("List returned %d summaries", len(summaries))
	}
	if summaries[0].CompletedDays != 2 {
		t.Errorf("CompletedDays = %d, want 2", summaries[0].CompletedDays)
	}
	if summaries[0].CompletionPercent != 50 {
		t.Errorf("CompletionPercent = %v, want 50", summaries[0].CompletionPercent)
	}
}

func TestDurationDays(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, samplePath(t, "u1", 14))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	days, err := store.DurationDays(ctx, "u1", id)
	if err != nil {
		t.Fatalf("DurationDays: %v", err)
	}
	if days != 14 {
		t.Errorf("DurationDays = %d, want 14", days)
	}

	if _, err := store.DurationDays(ctx, "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicate(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, samplePath(t, "u1", 3))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	dup, err := store.Duplicate(ctx, "u1", id)
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if dup.ID == id {
		t.Error("duplicate should get a fresh ID")
	}
	if dup.Goal != "Learn Go programming (Copy)" {
		t.Errorf("Goal = %q", dup.Goal)
	}

	ids, err := store.ListPathIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("ListPathIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 paths after duplicate, got %d", len(ids))
	}
}

func TestDeleteCascades(t *testing.T) {
	store, database := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, samplePath(t, "u1", 3))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := database.Exec(`
		INSERT INTO progress_records (user_id, path_id, day, completed)
		VALUES ('u1', ?, 1, 1)`, id); err != nil {
		t.Fatalf("insert progress: %v", err)
	}

	if err := store.Delete(ctx, "u1", id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "u1", id); !errors.Is(err, ErrNotFound) {
		t.Error("path should be gone after delete")
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM progress_records WHERE path_id = ?`, id).Scan(&count); err != nil {
		t.Fatalf("count progress: %v", err)
	}
	if count != 0 {
		t.Errorf("progress records remain after delete: %d", count)
	}

	if err := store.Delete(ctx, "u1", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should return ErrNotFound, got %v", err)
	}
}
