package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
)

// MobRepository implements secondary.MobRepository with SQLite.
type MobRepository struct {
	db *sql.DB
}

// NewMobRepository creates a new SQLite mob repository.
func NewMobRepository(db *sql.DB) *MobRepository {
	return &MobRepository{db: db}
}

const mobSelectCols = "id, name, species, description, current_paddock_id, created_at, updated_at"

func scanMob(scanner interface {
	Scan(dest ...any) error
}) (*models.Mob, error) {
	var desc sql.NullString

	mob := &models.Mob{}
	err := scanner.Scan(
		&mob.ID, &mob.Name, &mob.Species, &desc,
		&mob.CurrentPaddockID, &mob.CreatedAt, &mob.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	mob.Description = desc.String
	return mob, nil
}

// Save inserts the mob when its ID is zero, otherwise updates in place.
func (r *MobRepository) Save(ctx context.Context, mob *models.Mob) (*models.Mob, error) {
	if mob.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO mobs (name, species, description, current_paddock_id) VALUES (?, ?, ?, ?)",
			mob.Name, mob.Species, mob.Description, mob.CurrentPaddockID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert mob: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get mob id: %w", err)
		}
		return r.GetByID(ctx, id)
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE mobs SET name = ?, species = ?, description = ?, current_paddock_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		mob.Name, mob.Species, mob.Description, mob.CurrentPaddockID, mob.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update mob: %w", err)
	}
	return r.GetByID(ctx, mob.ID)
}

// GetByID retrieves a mob, returning (nil, nil) when it does not exist.
func (r *MobRepository) GetByID(ctx context.Context, id int64) (*models.Mob, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+mobSelectCols+" FROM mobs WHERE id = ?", id,
	)

	mob, err := scanMob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mob: %w", err)
	}
	return mob, nil
}

// List retrieves all mobs ordered by name.
func (r *MobRepository) List(ctx context.Context) ([]*models.Mob, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+mobSelectCols+" FROM mobs ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list mobs: %w", err)
	}
	defer rows.Close()

	mobs := []*models.Mob{}
	for rows.Next() {
		mob, err := scanMob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mob: %w", err)
		}
		mobs = append(mobs, mob)
	}
	return mobs, rows.Err()
}

// Delete removes a mob. Callers unassign the mob's animals first;
// events referencing the mob keep it alive via foreign keys.
func (r *MobRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM mobs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete mob: %w", err)
	}
	return nil
}

// AliveCount returns the number of alive animals assigned to the mob.
func (r *MobRepository) AliveCount(ctx context.Context, mobID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animals WHERE mob_id = ? AND status = ?",
		mobID, models.AnimalStatusAlive,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count mob animals: %w", err)
	}
	return count, nil
}
