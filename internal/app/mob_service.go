package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// MobServiceImpl implements the MobService interface.
type MobServiceImpl struct {
	mobRepo    secondary.MobRepository
	animalRepo secondary.AnimalRepository
}

// NewMobService creates a new MobService with injected dependencies.
func NewMobService(mobRepo secondary.MobRepository, animalRepo secondary.AnimalRepository) *MobServiceImpl {
	return &MobServiceImpl{
		mobRepo:    mobRepo,
		animalRepo: animalRepo,
	}
}

// SaveMob creates or updates a mob.
func (s *MobServiceImpl) SaveMob(ctx context.Context, req primary.SaveMobRequest) (*models.Mob, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	mob := &models.Mob{
		ID:          req.ID,
		Name:        req.Name,
		Species:     req.Species,
		Description: req.Description,
	}
	if req.CurrentPaddockID > 0 {
		mob.CurrentPaddockID = sql.NullInt64{Int64: req.CurrentPaddockID, Valid: true}
	}

	saved, err := s.mobRepo.Save(ctx, mob)
	if err != nil {
		return nil, fmt.Errorf("failed to save mob: %w", err)
	}
	return saved, nil
}

// GetMob retrieves a mob by ID.
func (s *MobServiceImpl) GetMob(ctx context.Context, id int64) (*models.Mob, error) {
	mob, err := s.mobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mob == nil {
		return nil, fmt.Errorf("mob %d not found", id)
	}
	return mob, nil
}

// ListMobs lists all mobs with their alive head counts.
func (s *MobServiceImpl) ListMobs(ctx context.Context) ([]*primary.MobWithCount, error) {
	mobs, err := s.mobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*primary.MobWithCount, len(mobs))
	for i, mob := range mobs {
		count, err := s.mobRepo.AliveCount(ctx, mob.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count mob %d: %w", mob.ID, err)
		}
		result[i] = &primary.MobWithCount{Mob: mob, HeadCount: count}
	}
	return result, nil
}

// DeleteMob deletes a mob. Member animals are unassigned first, never
// deleted.
func (s *MobServiceImpl) DeleteMob(ctx context.Context, id int64) error {
	mob, err := s.mobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mob == nil {
		return fmt.Errorf("mob %d not found", id)
	}

	animals, err := s.animalRepo.ListByMob(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list mob animals: %w", err)
	}
	for _, animal := range animals {
		animal.MobID = sql.NullInt64{}
		if _, err := s.animalRepo.Save(ctx, animal); err != nil {
			return fmt.Errorf("failed to unassign animal %d: %w", animal.ID, err)
		}
	}

	return s.mobRepo.Delete(ctx, id)
}

var _ primary.MobService = (*MobServiceImpl)(nil)
