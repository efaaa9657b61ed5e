package models

import (
	"database/sql"
	"time"
)

// Event is the base record for everything that happens to an animal or
// a mob. Typed events (movement, treatment, weigh) carry a detail row
// joined 1:1 by event id; the detail row exists iff the event was
// recorded through the corresponding typed entry path.
type Event struct {
	ID         int64
	EventType  string
	EventDate  time.Time
	AnimalID   sql.NullInt64
	MobID      sql.NullInt64
	Notes      string
	RecordedBy string
	CreatedAt  time.Time
}

// Event type constants
const (
	EventTypeMovement      = "movement"
	EventTypeTreatment     = "treatment"
	EventTypeWeigh         = "weigh"
	EventTypeDeath         = "death"
	EventTypeSale          = "sale"
	EventTypeBirth         = "birth"
	EventTypePregnancyTest = "pregnancy_test"
	EventTypeJoining       = "joining"
	EventTypeNote          = "note"
)

// MovementDetail records a movement of animals between paddocks.
type MovementDetail struct {
	ID            int64
	EventID       int64
	FromPaddockID sql.NullInt64
	ToPaddockID   sql.NullInt64
	Reason        string
	HeadCount     int // number of animals moved, for mob moves
}

// TreatmentDetail records a treatment administered to an animal or mob.
// The WHP/ESI end dates are computed once at entry time from the
// product's day counts and stored; they are never recomputed on read.
type TreatmentDetail struct {
	ID             int64
	EventID        int64
	ProductID      sql.NullInt64
	BatchNumber    string
	Dose           string
	Route          string
	AdministeredBy string
	MeatWHPEnd     sql.NullTime
	MilkWHPEnd     sql.NullTime
	ESIEnd         sql.NullTime
}

// WeighDetail records a weight for an animal.
type WeighDetail struct {
	ID             int64
	EventID        int64
	WeightKg       float64
	ConditionScore sql.NullFloat64 // body condition score, 1-5
}
