// Package secondary defines the driven-side ports: the repository
// interfaces the application services depend on. The SQLite
// implementations live in internal/adapters/sqlite.
//
// Save semantics are shared by every repository: an entity with a zero
// ID is inserted and returned with its new identity and timestamps
// populated; a non-zero ID updates in place, last write wins. Lookups
// return (nil, nil) when the row does not exist; list queries return
// empty slices. Deletes are unconditional.
package secondary

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/stockbook/internal/models"
)

// PaddockRepository persists paddocks.
type PaddockRepository interface {
	Save(ctx context.Context, paddock *models.Paddock) (*models.Paddock, error)
	GetByID(ctx context.Context, id int64) (*models.Paddock, error)
	List(ctx context.Context) ([]*models.Paddock, error)
	Delete(ctx context.Context, id int64) error
}

// MobRepository persists mobs.
type MobRepository interface {
	Save(ctx context.Context, mob *models.Mob) (*models.Mob, error)
	GetByID(ctx context.Context, id int64) (*models.Mob, error)
	List(ctx context.Context) ([]*models.Mob, error)
	Delete(ctx context.Context, id int64) error
	// AliveCount returns the number of alive animals assigned to the mob.
	AliveCount(ctx context.Context, mobID int64) (int, error)
}

// AnimalRepository persists animals and answers the herd-level
// aggregate queries.
type AnimalRepository interface {
	Save(ctx context.Context, animal *models.Animal) (*models.Animal, error)
	GetByID(ctx context.Context, id int64) (*models.Animal, error)
	GetByEID(ctx context.Context, eid string) (*models.Animal, error)
	// List returns all animals, filtered by status when status != "".
	List(ctx context.Context, status string) ([]*models.Animal, error)
	ListByMob(ctx context.Context, mobID int64) ([]*models.Animal, error)
	// Search matches the query case-insensitively as a substring of the
	// EID or visual tag.
	Search(ctx context.Context, query string) ([]*models.Animal, error)
	Delete(ctx context.Context, id int64) error
	// StatusCounts groups all animals by status.
	StatusCounts(ctx context.Context) (map[string]int, error)
	// SpeciesCounts groups alive animals by species.
	SpeciesCounts(ctx context.Context) (map[string]int, error)
}

// ProductRepository persists treatment products.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// WHPRecord is one row of the withholding-period join: an alive animal
// together with the treatment currently restricting it.
type WHPRecord struct {
	AnimalID    int64
	EID         string
	VisualTag   string
	EventID     int64
	EventDate   time.Time
	MeatWHPEnd  sql.NullTime
	MilkWHPEnd  sql.NullTime
	ESIEnd      sql.NullTime
	ProductName string
}

// EventRepository persists events and their typed detail rows.
type EventRepository interface {
	Save(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	// SaveMovement, SaveTreatment and SaveWeigh write the base event and
	// its detail row together, forcing the matching event type.
	SaveMovement(ctx context.Context, event *models.Event, detail *models.MovementDetail) error
	SaveTreatment(ctx context.Context, event *models.Event, detail *models.TreatmentDetail) error
	SaveWeigh(ctx context.Context, event *models.Event, detail *models.WeighDetail) error
	// ListForAnimal and ListForMob return newest first, filtered by
	// event type when eventType != "".
	ListForAnimal(ctx context.Context, animalID int64, eventType string) ([]*models.Event, error)
	ListForMob(ctx context.Context, mobID int64, eventType string) ([]*models.Event, error)
	// ListRecent returns the most recent events across the property,
	// capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*models.Event, error)
	MovementDetail(ctx context.Context, eventID int64) (*models.MovementDetail, error)
	TreatmentDetail(ctx context.Context, eventID int64) (*models.TreatmentDetail, error)
	WeighDetail(ctx context.Context, eventID int64) (*models.WeighDetail, error)
	Delete(ctx context.Context, id int64) error
	// AnimalsOnWHP returns alive animals with any withholding end date
	// (meat, milk or ESI) on or after asOf, ordered by meat WHP end
	// then visual tag.
	AnimalsOnWHP(ctx context.Context, asOf time.Time) ([]*WHPRecord, error)
}

// TaskRepository persists reminder tasks.
type TaskRepository interface {
	Save(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	// ListPending returns incomplete tasks with no due date or a due
	// date on or before until, due date order with undated tasks last.
	ListPending(ctx context.Context, until time.Time) ([]*models.Task, error)
	Complete(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository persists the property settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.PropertySettings, error)
	Save(ctx context.Context, settings *models.PropertySettings) (*models.PropertySettings, error)
}
