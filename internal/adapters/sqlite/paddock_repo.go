// Package sqlite contains SQLite implementations of the repository
// interfaces in ports/secondary.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
)

// PaddockRepository implements secondary.PaddockRepository with SQLite.
type PaddockRepository struct {
	db *sql.DB
}

// NewPaddockRepository creates a new SQLite paddock repository.
func NewPaddockRepository(db *sql.DB) *PaddockRepository {
	return &PaddockRepository{db: db}
}

const paddockSelectCols = "id, name, area_hectares, notes, pic, created_at, updated_at"

func scanPaddock(scanner interface {
	Scan(dest ...any) error
}) (*models.Paddock, error) {
	var notes, pic sql.NullString

	paddock := &models.Paddock{}
	err := scanner.Scan(
		&paddock.ID, &paddock.Name, &paddock.AreaHectares,
		&notes, &pic, &paddock.CreatedAt, &paddock.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	paddock.Notes = notes.String
	paddock.PIC = pic.String
	return paddock, nil
}

// Save inserts the paddock when its ID is zero, otherwise updates in
// place. The stored row is returned with identity and timestamps set.
func (r *PaddockRepository) Save(ctx context.Context, paddock *models.Paddock) (*models.Paddock, error) {
	if paddock.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO paddocks (name, area_hectares, notes, pic) VALUES (?, ?, ?, ?)",
			paddock.Name, paddock.AreaHectares, paddock.Notes, paddock.PIC,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert paddock: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get paddock id: %w", err)
		}
		return r.GetByID(ctx, id)
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE paddocks SET name = ?, area_hectares = ?, notes = ?, pic = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		paddock.Name, paddock.AreaHectares, paddock.Notes, paddock.PIC, paddock.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update paddock: %w", err)
	}
	return r.GetByID(ctx, paddock.ID)
}

// GetByID retrieves a paddock, returning (nil, nil) when it does not exist.
func (r *PaddockRepository) GetByID(ctx context.Context, id int64) (*models.Paddock, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+paddockSelectCols+" FROM paddocks WHERE id = ?", id,
	)

	paddock, err := scanPaddock(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get paddock: %w", err)
	}
	return paddock, nil
}

// List retrieves all paddocks ordered by name.
func (r *PaddockRepository) List(ctx context.Context) ([]*models.Paddock, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+paddockSelectCols+" FROM paddocks ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list paddocks: %w", err)
	}
	defer rows.Close()

	paddocks := []*models.Paddock{}
	for rows.Next() {
		paddock, err := scanPaddock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan paddock: %w", err)
		}
		paddocks = append(paddocks, paddock)
	}
	return paddocks, rows.Err()
}

// Delete removes a paddock.
func (r *PaddockRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM paddocks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete paddock: %w", err)
	}
	return nil
}
