package primary

import (
	"context"

	"github.com/example/stockbook/internal/models"
)

// SaveSettingsRequest updates the property settings singleton.
type SaveSettingsRequest struct {
	PropertyName string `validate:"required"`
	PIC          string
	OwnerName    string
	Address      string
	Phone        string
	Email        string `validate:"omitempty,email"`
}

// SettingsService manages the property settings singleton. GetSettings
// returns an empty unsaved record when none has been stored yet.
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.PropertySettings, error)
	SaveSettings(ctx context.Context, req SaveSettingsRequest) (*models.PropertySettings, error)
}
