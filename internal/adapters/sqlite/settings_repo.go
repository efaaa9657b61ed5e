package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
)

// SettingsRepository implements secondary.SettingsRepository with
// SQLite. Property settings are a singleton row.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsSelectCols = "id, property_name, pic, owner_name, address, phone, email, created_at, updated_at"

// Get returns the property settings, or (nil, nil) when none have been
// saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.PropertySettings, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+settingsSelectCols+" FROM property_settings ORDER BY id LIMIT 1",
	)

	settings := &models.PropertySettings{}
	err := row.Scan(
		&settings.ID, &settings.PropertyName, &settings.PIC, &settings.OwnerName,
		&settings.Address, &settings.Phone, &settings.Email,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Save inserts the singleton row on first save, then updates it.
func (r *SettingsRepository) Save(ctx context.Context, settings *models.PropertySettings) (*models.PropertySettings, error) {
	if settings.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO property_settings (property_name, pic, owner_name, address, phone, email) VALUES (?, ?, ?, ?, ?, ?)",
			settings.PropertyName, settings.PIC, settings.OwnerName,
			settings.Address, settings.Phone, settings.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert settings: %w", err)
		}
		if _, err := res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to get settings id: %w", err)
		}
		return r.Get(ctx)
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE property_settings SET property_name = ?, pic = ?, owner_name = ?, address = ?, phone = ?, email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		settings.PropertyName, settings.PIC, settings.OwnerName,
		settings.Address, settings.Phone, settings.Email, settings.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return r.Get(ctx)
}
