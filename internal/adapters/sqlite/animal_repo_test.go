package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/stockbook/internal/adapters/sqlite"
	"github.com/example/stockbook/internal/models"
)

func TestAnimalSaveInsertThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Animal{
		EID:       "982 000123456789",
		VisualTag: "Y042",
		Species:   models.SpeciesCattle,
		Breed:     "Angus",
		Sex:       models.SexFemale,
		Status:    models.AnimalStatusAlive,
	})
	if err != nil {
		t.Fatalf("failed to save animal: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected new animal to get an id")
	}

	saved.Status = models.AnimalStatusSold
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("failed to update animal: %v", err)
	}
	if updated.Status != models.AnimalStatusSold {
		t.Errorf("expected status sold, got %q", updated.Status)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("failed to list animals: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 animal after update, got %d", len(all))
	}
}

func TestAnimalGetByEID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	seedAnimal(t, db, "B7", "982 000111222333")

	animal, err := repo.GetByEID(ctx, "982 000111222333")
	if err != nil {
		t.Fatalf("failed to get by eid: %v", err)
	}
	if animal == nil {
		t.Fatal("expected animal for known eid")
	}
	if animal.VisualTag != "B7" {
		t.Errorf("expected visual tag B7, got %q", animal.VisualTag)
	}

	missing, err := repo.GetByEID(ctx, "982 000999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown eid, got %+v", missing)
	}
}

func TestAnimalListFiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	aliveID := seedAnimal(t, db, "A1", "")
	soldID := seedAnimal(t, db, "A2", "")
	if _, err := db.Exec("UPDATE animals SET status = ? WHERE id = ?", models.AnimalStatusSold, soldID); err != nil {
		t.Fatalf("failed to mark sold: %v", err)
	}

	alive, err := repo.List(ctx, models.AnimalStatusAlive)
	if err != nil {
		t.Fatalf("failed to list alive: %v", err)
	}
	if len(alive) != 1 || alive[0].ID != aliveID {
		t.Errorf("expected only animal %d alive, got %d results", aliveID, len(alive))
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("failed to list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 animals unfiltered, got %d", len(all))
	}
}

func TestAnimalListByMob(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	mobID := seedMob(t, db, "")
	inMob := seedAnimal(t, db, "M1", "")
	if _, err := db.Exec("UPDATE animals SET mob_id = ? WHERE id = ?", mobID, inMob); err != nil {
		t.Fatalf("failed to assign mob: %v", err)
	}
	seedAnimal(t, db, "M2", "")

	animals, err := repo.ListByMob(ctx, mobID)
	if err != nil {
		t.Fatalf("failed to list by mob: %v", err)
	}
	if len(animals) != 1 || animals[0].ID != inMob {
		t.Errorf("expected only animal %d in mob, got %d results", inMob, len(animals))
	}
}

func TestAnimalSearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	byTag := seedAnimal(t, db, "y42b", "")
	byEID := seedAnimal(t, db, "B9", "982 000000042000")
	seedAnimal(t, db, "C3", "982 000000555000")

	results, err := repo.Search(ctx, "42")
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "42", len(results))
	}
	found := map[int64]bool{}
	for _, animal := range results {
		found[animal.ID] = true
	}
	if !found[byTag] || !found[byEID] {
		t.Errorf("expected animals %d and %d, got %v", byTag, byEID, found)
	}

	upper, err := repo.Search(ctx, "Y42")
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}
	if len(upper) != 1 || upper[0].ID != byTag {
		t.Errorf("expected case-insensitive match on tag y42b, got %d results", len(upper))
	}
}

func TestAnimalStatusAndSpeciesCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	seedAnimal(t, db, "C1", "")
	seedAnimal(t, db, "C2", "")
	deadID := seedAnimal(t, db, "C3", "")
	if _, err := db.Exec("UPDATE animals SET status = ? WHERE id = ?", models.AnimalStatusDead, deadID); err != nil {
		t.Fatalf("failed to mark dead: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO animals (visual_tag, species, sex, status) VALUES (?, ?, ?, ?)",
		"S1", models.SpeciesSheep, models.SexWether, models.AnimalStatusAlive,
	); err != nil {
		t.Fatalf("failed to seed sheep: %v", err)
	}

	statuses, err := repo.StatusCounts(ctx)
	if err != nil {
		t.Fatalf("failed to count statuses: %v", err)
	}
	if statuses[models.AnimalStatusAlive] != 3 || statuses[models.AnimalStatusDead] != 1 {
		t.Errorf("unexpected status counts: %v", statuses)
	}

	species, err := repo.SpeciesCounts(ctx)
	if err != nil {
		t.Fatalf("failed to count species: %v", err)
	}
	// Dead animal excluded from species counts.
	if species[models.SpeciesCattle] != 2 || species[models.SpeciesSheep] != 1 {
		t.Errorf("unexpected species counts: %v", species)
	}
}

func TestAnimalParentage(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAnimalRepository(db)
	ctx := context.Background()

	damID := seedAnimal(t, db, "D1", "")

	calf, err := repo.Save(ctx, &models.Animal{
		VisualTag: "K1",
		Species:   models.SpeciesCattle,
		Sex:       models.SexSteer,
		Status:    models.AnimalStatusAlive,
		DamID:     sql.NullInt64{Int64: damID, Valid: true},
	})
	if err != nil {
		t.Fatalf("failed to save calf: %v", err)
	}
	if !calf.DamID.Valid || calf.DamID.Int64 != damID {
		t.Errorf("expected dam %d, got %+v", damID, calf.DamID)
	}
}
