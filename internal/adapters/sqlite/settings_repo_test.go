package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/stockbook/internal/adapters/sqlite"
	"github.com/example/stockbook/internal/models"
)

func TestSettingsGetBeforeFirstSave(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSettingsRepository(db)

	settings, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != nil {
		t.Errorf("expected nil before first save, got %+v", settings)
	}
}

func TestSettingsSingletonSave(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSettingsRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.PropertySettings{
		PropertyName: "Glenbrook Station",
		PIC:          "NA123456",
		OwnerName:    "A. Grazier",
		Email:        "office@glenbrook.example.com",
	})
	if err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected settings row to get an id")
	}

	saved.Phone = "02 6000 0000"
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("update created a second row: %d vs %d", updated.ID, saved.ID)
	}
	if updated.Phone != "02 6000 0000" {
		t.Errorf("unexpected phone %q", updated.Phone)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM property_settings").Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single settings row, got %d", count)
	}
}
