// Package primary defines the driving-side ports: the service
// interfaces the CLI (and any future GUI shell) calls, together with
// their request types. Request fields carry validate tags; services
// check them before touching the store, so the persistence layer only
// ever sees the store's own declared constraints.
package primary

import (
	"context"

	"github.com/example/stockbook/internal/models"
)

// SavePaddockRequest creates a paddock when ID is zero, updates it
// otherwise.
type SavePaddockRequest struct {
	ID           int64
	Name         string `validate:"required"`
	AreaHectares float64
	Notes        string
	PIC          string
}

// PaddockService manages paddocks.
type PaddockService interface {
	SavePaddock(ctx context.Context, req SavePaddockRequest) (*models.Paddock, error)
	GetPaddock(ctx context.Context, id int64) (*models.Paddock, error)
	ListPaddocks(ctx context.Context) ([]*models.Paddock, error)
	DeletePaddock(ctx context.Context, id int64) error
}
