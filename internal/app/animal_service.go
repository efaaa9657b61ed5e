package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// AnimalServiceImpl implements the AnimalService interface.
type AnimalServiceImpl struct {
	animalRepo secondary.AnimalRepository
}

// NewAnimalService creates a new AnimalService with injected dependencies.
func NewAnimalService(animalRepo secondary.AnimalRepository) *AnimalServiceImpl {
	return &AnimalServiceImpl{animalRepo: animalRepo}
}

// SaveAnimal creates or updates an animal.
func (s *AnimalServiceImpl) SaveAnimal(ctx context.Context, req primary.SaveAnimalRequest) (*models.Animal, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	animal := &models.Animal{
		ID:        req.ID,
		EID:       req.EID,
		VisualTag: req.VisualTag,
		Species:   req.Species,
		Breed:     req.Breed,
		Sex:       req.Sex,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if req.DateOfBirth != nil {
		animal.DateOfBirth = sql.NullTime{Time: *req.DateOfBirth, Valid: true}
	}
	if req.MobID > 0 {
		animal.MobID = sql.NullInt64{Int64: req.MobID, Valid: true}
	}
	if req.DamID > 0 {
		animal.DamID = sql.NullInt64{Int64: req.DamID, Valid: true}
	}
	if req.SireID > 0 {
		animal.SireID = sql.NullInt64{Int64: req.SireID, Valid: true}
	}

	saved, err := s.animalRepo.Save(ctx, animal)
	if err != nil {
		return nil, fmt.Errorf("failed to save animal: %w", err)
	}
	return saved, nil
}

// GetAnimal retrieves an animal by ID.
func (s *AnimalServiceImpl) GetAnimal(ctx context.Context, id int64) (*models.Animal, error) {
	animal, err := s.animalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, fmt.Errorf("animal %d not found", id)
	}
	return animal, nil
}

// GetAnimalByEID retrieves an animal by its electronic tag.
func (s *AnimalServiceImpl) GetAnimalByEID(ctx context.Context, eid string) (*models.Animal, error) {
	animal, err := s.animalRepo.GetByEID(ctx, eid)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, fmt.Errorf("no animal with EID %q", eid)
	}
	return animal, nil
}

// ListAnimals lists animals, filtered by status when status is non-empty.
func (s *AnimalServiceImpl) ListAnimals(ctx context.Context, status string) ([]*models.Animal, error) {
	return s.animalRepo.List(ctx, status)
}

// ListAnimalsByMob lists the animals assigned to a mob.
func (s *AnimalServiceImpl) ListAnimalsByMob(ctx context.Context, mobID int64) ([]*models.Animal, error) {
	return s.animalRepo.ListByMob(ctx, mobID)
}

// SearchAnimals matches the query against tags and electronic IDs.
func (s *AnimalServiceImpl) SearchAnimals(ctx context.Context, query string) ([]*models.Animal, error) {
	return s.animalRepo.Search(ctx, query)
}

// DeleteAnimal deletes an animal.
func (s *AnimalServiceImpl) DeleteAnimal(ctx context.Context, id int64) error {
	return s.animalRepo.Delete(ctx, id)
}

var _ primary.AnimalService = (*AnimalServiceImpl)(nil)
