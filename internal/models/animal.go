// Package models contains domain types for Stockbook entities.
// SQL persistence lives in internal/adapters/sqlite.
package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Animal represents an individual animal in the herd or flock.
// An ID of zero means the animal has not been saved yet.
type Animal struct {
	ID          int64
	EID         string // Electronic ID (NLIS/RFID tag)
	VisualTag   string
	Species     string
	Breed       string
	Sex         string
	DateOfBirth sql.NullTime
	Status      string
	MobID       sql.NullInt64
	DamID       sql.NullInt64 // mother
	SireID      sql.NullInt64 // father
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Animal status constants
const (
	AnimalStatusAlive   = "alive"
	AnimalStatusSold    = "sold"
	AnimalStatusDead    = "dead"
	AnimalStatusMissing = "missing"
)

// Species constants
const (
	SpeciesCattle = "cattle"
	SpeciesSheep  = "sheep"
)

// Sex constants. Steer and wether are castrated male cattle and sheep.
const (
	SexMale   = "male"
	SexFemale = "female"
	SexSteer  = "steer"
	SexWether = "wether"
)

// DisplayID returns the best identifier for display: the visual tag,
// falling back to the EID, falling back to the row id.
func (a *Animal) DisplayID() string {
	if a.VisualTag != "" {
		return a.VisualTag
	}
	if a.EID != "" {
		return a.EID
	}
	return fmt.Sprintf("#%d", a.ID)
}
