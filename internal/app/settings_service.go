package app

import (
	"context"
	"fmt"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// SettingsServiceImpl implements the SettingsService interface.
type SettingsServiceImpl struct {
	settingsRepo secondary.SettingsRepository
}

// NewSettingsService creates a new SettingsService with injected dependencies.
func NewSettingsService(settingsRepo secondary.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// GetSettings returns the property settings, or an empty unsaved
// record when none have been stored yet.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (*models.PropertySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &models.PropertySettings{}, nil
	}
	return settings, nil
}

// SaveSettings updates the property settings singleton.
func (s *SettingsServiceImpl) SaveSettings(ctx context.Context, req primary.SaveSettingsRequest) (*models.PropertySettings, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings := &models.PropertySettings{
		PropertyName: req.PropertyName,
		PIC:          req.PIC,
		OwnerName:    req.OwnerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
	}
	if existing != nil {
		settings.ID = existing.ID
	}

	saved, err := s.settingsRepo.Save(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return saved, nil
}

var _ primary.SettingsService = (*SettingsServiceImpl)(nil)
