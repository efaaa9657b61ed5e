package primary

import (
	"context"
	"time"

	"github.com/example/stockbook/internal/models"
)

// SaveAnimalRequest creates an animal when ID is zero, updates it
// otherwise. Zero reference IDs mean "none".
type SaveAnimalRequest struct {
	ID          int64
	EID         string
	VisualTag   string
	Species     string `validate:"required,oneof=cattle sheep"`
	Breed       string
	Sex         string `validate:"required,oneof=male female steer wether"`
	DateOfBirth *time.Time
	Status      string `validate:"required,oneof=alive sold dead missing"`
	MobID       int64
	DamID       int64
	SireID      int64
	Notes       string
}

// AnimalService manages individual animals.
type AnimalService interface {
	SaveAnimal(ctx context.Context, req SaveAnimalRequest) (*models.Animal, error)
	GetAnimal(ctx context.Context, id int64) (*models.Animal, error)
	GetAnimalByEID(ctx context.Context, eid string) (*models.Animal, error)
	// ListAnimals filters by status when status != "".
	ListAnimals(ctx context.Context, status string) ([]*models.Animal, error)
	ListAnimalsByMob(ctx context.Context, mobID int64) ([]*models.Animal, error)
	SearchAnimals(ctx context.Context, query string) ([]*models.Animal, error)
	DeleteAnimal(ctx context.Context, id int64) error
}
