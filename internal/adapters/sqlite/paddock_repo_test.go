package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/stockbook/internal/adapters/sqlite"
	"github.com/example/stockbook/internal/models"
)

func TestPaddockSaveInsertThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPaddockRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Paddock{
		Name:         "River Flat",
		AreaHectares: sql.NullFloat64{Float64: 42.5, Valid: true},
		PIC:          "NA123456",
	})
	if err != nil {
		t.Fatalf("failed to save paddock: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected new paddock to get an id")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected created_at to be populated")
	}

	saved.Name = "River Flat East"
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("failed to update paddock: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("update changed id from %d to %d", saved.ID, updated.ID)
	}
	if updated.Name != "River Flat East" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list paddocks: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 paddock after update, got %d", len(all))
	}
}

func TestPaddockGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPaddockRepository(db)

	paddock, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paddock != nil {
		t.Errorf("expected nil for missing paddock, got %+v", paddock)
	}
}

func TestPaddockListOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPaddockRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Top Block", "Airstrip", "Middle Run"} {
		if _, err := repo.Save(ctx, &models.Paddock{Name: name}); err != nil {
			t.Fatalf("failed to save paddock: %v", err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list paddocks: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 paddocks, got %d", len(all))
	}
	want := []string{"Airstrip", "Middle Run", "Top Block"}
	for i, paddock := range all {
		if paddock.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], paddock.Name)
		}
	}
}

func TestPaddockDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPaddockRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Paddock{Name: "Holding Yard"})
	if err != nil {
		t.Fatalf("failed to save paddock: %v", err)
	}

	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("failed to delete paddock: %v", err)
	}

	paddock, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paddock != nil {
		t.Error("expected paddock gone after delete")
	}
}
