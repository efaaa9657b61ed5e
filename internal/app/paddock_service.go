package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// PaddockServiceImpl implements the PaddockService interface.
type PaddockServiceImpl struct {
	paddockRepo secondary.PaddockRepository
}

// NewPaddockService creates a new PaddockService with injected dependencies.
func NewPaddockService(paddockRepo secondary.PaddockRepository) *PaddockServiceImpl {
	return &PaddockServiceImpl{paddockRepo: paddockRepo}
}

// SavePaddock creates or updates a paddock.
func (s *PaddockServiceImpl) SavePaddock(ctx context.Context, req primary.SavePaddockRequest) (*models.Paddock, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	paddock := &models.Paddock{
		ID:    req.ID,
		Name:  req.Name,
		Notes: req.Notes,
		PIC:   req.PIC,
	}
	if req.AreaHectares > 0 {
		paddock.AreaHectares = sql.NullFloat64{Float64: req.AreaHectares, Valid: true}
	}

	saved, err := s.paddockRepo.Save(ctx, paddock)
	if err != nil {
		return nil, fmt.Errorf("failed to save paddock: %w", err)
	}
	return saved, nil
}

// GetPaddock retrieves a paddock by ID.
func (s *PaddockServiceImpl) GetPaddock(ctx context.Context, id int64) (*models.Paddock, error) {
	paddock, err := s.paddockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paddock == nil {
		return nil, fmt.Errorf("paddock %d not found", id)
	}
	return paddock, nil
}

// ListPaddocks lists all paddocks.
func (s *PaddockServiceImpl) ListPaddocks(ctx context.Context) ([]*models.Paddock, error) {
	return s.paddockRepo.List(ctx)
}

// DeletePaddock deletes a paddock.
func (s *PaddockServiceImpl) DeletePaddock(ctx context.Context, id int64) error {
	return s.paddockRepo.Delete(ctx, id)
}

var _ primary.PaddockService = (*PaddockServiceImpl)(nil)
