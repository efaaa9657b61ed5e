package models

import (
	"database/sql"
	"time"
)

// Mob represents a named group of animals managed as a unit.
type Mob struct {
	ID               int64
	Name             string
	Species          string
	Description      string
	CurrentPaddockID sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Paddock represents a paddock or pasture area on the property.
type Paddock struct {
	ID           int64
	Name         string
	AreaHectares sql.NullFloat64
	Notes        string
	PIC          string // Property Identification Code
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
