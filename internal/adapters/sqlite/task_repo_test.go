package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/example/stockbook/internal/adapters/sqlite"
	"github.com/example/stockbook/internal/models"
)

func TestTaskSaveInsertThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Task{
		Title:   "Book preg testing",
		DueDate: sql.NullTime{Time: utcDate(2024, time.July, 15), Valid: true},
	})
	if err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected new task to get an id")
	}

	saved.Title = "Book preg testing with vet"
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}
	if updated.Title != "Book preg testing with vet" {
		t.Errorf("unexpected title %q", updated.Title)
	}
}

func TestTaskListPendingOrderAndWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	undated, err := repo.Save(ctx, &models.Task{Title: "Fix yard gate"})
	if err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	later, err := repo.Save(ctx, &models.Task{
		Title:   "Drench weaners",
		DueDate: sql.NullTime{Time: utcDate(2024, time.July, 10), Valid: true},
	})
	if err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	sooner, err := repo.Save(ctx, &models.Task{
		Title:   "Check troughs",
		DueDate: sql.NullTime{Time: utcDate(2024, time.July, 3), Valid: true},
	})
	if err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	// Outside the window; must not appear.
	if _, err := repo.Save(ctx, &models.Task{
		Title:   "Shearing",
		DueDate: sql.NullTime{Time: utcDate(2024, time.September, 1), Valid: true},
	}); err != nil {
		t.Fatalf("failed to save task: %v", err)
	}

	pending, err := repo.ListPending(ctx, utcDate(2024, time.July, 31))
	if err != nil {
		t.Fatalf("failed to list pending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending tasks, got %d", len(pending))
	}
	wantOrder := []int64{sooner.ID, later.ID, undated.ID}
	for i, task := range pending {
		if task.ID != wantOrder[i] {
			t.Errorf("position %d: expected task %d, got %d (%q)", i, wantOrder[i], task.ID, task.Title)
		}
	}
}

func TestTaskCompleteRemovesFromPending(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Task{Title: "Order lick blocks"})
	if err != nil {
		t.Fatalf("failed to save task: %v", err)
	}

	doneAt := time.Date(2024, time.July, 4, 9, 30, 0, 0, time.UTC)
	if err := repo.Complete(ctx, saved.ID, doneAt); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	got, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if !got.Completed {
		t.Error("expected task marked completed")
	}
	if !got.CompletedAt.Valid || !got.CompletedAt.Time.Equal(doneAt) {
		t.Errorf("expected completed_at %v, got %+v", doneAt, got.CompletedAt)
	}

	pending, err := repo.ListPending(ctx, utcDate(2030, time.January, 1))
	if err != nil {
		t.Fatalf("failed to list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending tasks, got %d", len(pending))
	}
}

func TestTaskLinkedToSourceEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	events := sqlite.NewEventRepository(db)
	ctx := context.Background()

	animalID := seedAnimal(t, db, "T9", "")
	event, err := events.Save(ctx, &models.Event{
		EventType: models.EventTypeTreatment,
		EventDate: utcDate(2024, time.June, 1),
		AnimalID:  sql.NullInt64{Int64: animalID, Valid: true},
	})
	if err != nil {
		t.Fatalf("failed to save event: %v", err)
	}

	task, err := repo.Save(ctx, &models.Task{
		Title:         "Booster due",
		SourceEventID: sql.NullInt64{Int64: event.ID, Valid: true},
		AnimalID:      sql.NullInt64{Int64: animalID, Valid: true},
	})
	if err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	if !task.SourceEventID.Valid || task.SourceEventID.Int64 != event.ID {
		t.Errorf("expected task linked to event %d, got %+v", event.ID, task.SourceEventID)
	}
}
