package primary

import (
	"context"
	"time"

	"github.com/example/stockbook/internal/models"
)

// RecordTreatmentRequest records one treatment event per listed
// animal, or a single mob-level event when MobID is set. Exactly one
// of AnimalIDs/MobID must be provided. The product's withholding day
// counts are resolved at entry time into fixed end dates on each
// detail row.
type RecordTreatmentRequest struct {
	AnimalIDs      []int64
	MobID          int64
	Date           time.Time `validate:"required"`
	ProductID      int64     `validate:"required,gt=0"`
	BatchNumber    string
	Dose           string
	Route          string `validate:"omitempty,oneof=oral subcutaneous intramuscular pour_on spray ear_tag intraruminal other"`
	AdministeredBy string
	Notes          string
	RecordedBy     string
}

// TreatmentResult reports the recorded events and the end dates stored
// on every detail row of the batch.
type TreatmentResult struct {
	EventIDs   []int64
	MeatWHPEnd *time.Time
	MilkWHPEnd *time.Time
	ESIEnd     *time.Time
}

// RecordWeighRequest records a weight for a single animal.
// ConditionScore of zero means not assessed.
type RecordWeighRequest struct {
	AnimalID       int64     `validate:"required,gt=0"`
	Date           time.Time `validate:"required"`
	WeightKg       float64   `validate:"required,gt=0"`
	ConditionScore float64   `validate:"omitempty,gte=1,lte=5"`
	Notes          string
	RecordedBy     string
}

// RecordMovementRequest records a movement for an animal or a mob.
// Exactly one of AnimalID/MobID must be set. Moving a mob also updates
// its current paddock. FromPaddockID of zero defaults to the mob's
// current paddock; ToPaddockID of zero records removal from paddocks.
type RecordMovementRequest struct {
	AnimalID      int64
	MobID         int64
	Date          time.Time `validate:"required"`
	FromPaddockID int64
	ToPaddockID   int64
	Reason        string
	HeadCount     int `validate:"gte=0"`
	Notes         string
	RecordedBy    string
}

// RecordEventRequest records an untyped event (death, sale, birth,
// pregnancy test, joining, note) against an animal or a mob.
type RecordEventRequest struct {
	Type       string `validate:"required,oneof=death sale birth pregnancy_test joining note"`
	AnimalID   int64
	MobID      int64
	Date       time.Time `validate:"required"`
	Notes      string
	RecordedBy string
}

// EventService records events and reads event history.
type EventService interface {
	RecordTreatment(ctx context.Context, req RecordTreatmentRequest) (*TreatmentResult, error)
	RecordWeigh(ctx context.Context, req RecordWeighRequest) (*models.Event, error)
	RecordMovement(ctx context.Context, req RecordMovementRequest) (*models.Event, error)
	RecordEvent(ctx context.Context, req RecordEventRequest) (*models.Event, error)
	// AnimalHistory and MobHistory return newest first, filtered by
	// event type when eventType != "".
	AnimalHistory(ctx context.Context, animalID int64, eventType string) ([]*models.Event, error)
	MobHistory(ctx context.Context, mobID int64, eventType string) ([]*models.Event, error)
	RecentEvents(ctx context.Context, limit int) ([]*models.Event, error)
	TreatmentDetail(ctx context.Context, eventID int64) (*models.TreatmentDetail, error)
	MovementDetail(ctx context.Context, eventID int64) (*models.MovementDetail, error)
	WeighDetail(ctx context.Context, eventID int64) (*models.WeighDetail, error)
	DeleteEvent(ctx context.Context, id int64) error
}
