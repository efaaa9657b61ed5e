package primary

import (
	"context"

	"github.com/example/stockbook/internal/models"
)

// SaveMobRequest creates a mob when ID is zero, updates it otherwise.
// CurrentPaddockID of zero means no paddock.
type SaveMobRequest struct {
	ID               int64
	Name             string `validate:"required"`
	Species          string `validate:"required,oneof=cattle sheep"`
	Description      string
	CurrentPaddockID int64
}

// MobWithCount pairs a mob with its alive head count for list views.
type MobWithCount struct {
	Mob       *models.Mob
	HeadCount int
}

// MobService manages mobs. Deleting a mob first unassigns its member
// animals; it never deletes them.
type MobService interface {
	SaveMob(ctx context.Context, req SaveMobRequest) (*models.Mob, error)
	GetMob(ctx context.Context, id int64) (*models.Mob, error)
	ListMobs(ctx context.Context) ([]*MobWithCount, error)
	DeleteMob(ctx context.Context, id int64) error
}
