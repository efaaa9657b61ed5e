package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
)

// AnimalRepository implements secondary.AnimalRepository with SQLite.
type AnimalRepository struct {
	db *sql.DB
}

// NewAnimalRepository creates a new SQLite animal repository.
func NewAnimalRepository(db *sql.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

const animalSelectCols = "id, eid, visual_tag, species, breed, sex, date_of_birth, status, mob_id, dam_id, sire_id, notes, created_at, updated_at"

func scanAnimal(scanner interface {
	Scan(dest ...any) error
}) (*models.Animal, error) {
	var eid, visualTag, breed, notes sql.NullString

	animal := &models.Animal{}
	err := scanner.Scan(
		&animal.ID, &eid, &visualTag, &animal.Species, &breed, &animal.Sex,
		&animal.DateOfBirth, &animal.Status, &animal.MobID,
		&animal.DamID, &animal.SireID, &notes,
		&animal.CreatedAt, &animal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	animal.EID = eid.String
	animal.VisualTag = visualTag.String
	animal.Breed = breed.String
	animal.Notes = notes.String
	return animal, nil
}

// Save inserts the animal when its ID is zero, otherwise updates in place.
func (r *AnimalRepository) Save(ctx context.Context, animal *models.Animal) (*models.Animal, error) {
	if animal.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO animals (eid, visual_tag, species, breed, sex, date_of_birth, status, mob_id, dam_id, sire_id, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			animal.EID, animal.VisualTag, animal.Species, animal.Breed, animal.Sex,
			animal.DateOfBirth, animal.Status, animal.MobID, animal.DamID, animal.SireID, animal.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert animal: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get animal id: %w", err)
		}
		return r.GetByID(ctx, id)
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE animals SET eid = ?, visual_tag = ?, species = ?, breed = ?, sex = ?, date_of_birth = ?,
		 status = ?, mob_id = ?, dam_id = ?, sire_id = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		animal.EID, animal.VisualTag, animal.Species, animal.Breed, animal.Sex, animal.DateOfBirth,
		animal.Status, animal.MobID, animal.DamID, animal.SireID, animal.Notes, animal.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return r.GetByID(ctx, animal.ID)
}

// GetByID retrieves an animal, returning (nil, nil) when it does not exist.
func (r *AnimalRepository) GetByID(ctx context.Context, id int64) (*models.Animal, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+animalSelectCols+" FROM animals WHERE id = ?", id,
	)

	animal, err := scanAnimal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	return animal, nil
}

// GetByEID retrieves an animal by its electronic tag, returning
// (nil, nil) when no animal carries it.
func (r *AnimalRepository) GetByEID(ctx context.Context, eid string) (*models.Animal, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+animalSelectCols+" FROM animals WHERE eid = ?", eid,
	)

	animal, err := scanAnimal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get animal by eid: %w", err)
	}
	return animal, nil
}

// List retrieves animals ordered by visual tag, filtered by status when
// status is non-empty.
func (r *AnimalRepository) List(ctx context.Context, status string) ([]*models.Animal, error) {
	query := "SELECT " + animalSelectCols + " FROM animals"
	args := []any{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY visual_tag, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	defer rows.Close()

	return collectAnimals(rows)
}

// ListByMob retrieves the animals assigned to a mob.
func (r *AnimalRepository) ListByMob(ctx context.Context, mobID int64) ([]*models.Animal, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+animalSelectCols+" FROM animals WHERE mob_id = ? ORDER BY visual_tag, id",
		mobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list mob animals: %w", err)
	}
	defer rows.Close()

	return collectAnimals(rows)
}

// Search matches the query case-insensitively as a substring of the
// EID or visual tag.
func (r *AnimalRepository) Search(ctx context.Context, query string) ([]*models.Animal, error) {
	// LIKE is case-insensitive for ASCII in SQLite by default.
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+animalSelectCols+" FROM animals WHERE eid LIKE ? OR visual_tag LIKE ? ORDER BY visual_tag, id",
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search animals: %w", err)
	}
	defer rows.Close()

	return collectAnimals(rows)
}

// Delete removes an animal.
func (r *AnimalRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM animals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	return nil
}

// StatusCounts groups all animals by status.
func (r *AnimalRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM animals GROUP BY status",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals by status: %w", err)
	}
	defer rows.Close()

	return collectCounts(rows)
}

// SpeciesCounts groups alive animals by species.
func (r *AnimalRepository) SpeciesCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT species, COUNT(*) FROM animals WHERE status = ? GROUP BY species",
		models.AnimalStatusAlive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals by species: %w", err)
	}
	defer rows.Close()

	return collectCounts(rows)
}

func collectAnimals(rows *sql.Rows) ([]*models.Animal, error) {
	animals := []*models.Animal{}
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal: %w", err)
		}
		animals = append(animals, animal)
	}
	return animals, rows.Err()
}

func collectCounts(rows *sql.Rows) (map[string]int, error) {
	counts := map[string]int{}
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}
