package models

import (
	"database/sql"
	"time"
)

// Task is a reminder, optionally tied to the event that generated it
// and to an animal or mob.
type Task struct {
	ID            int64
	Title         string
	Description   string
	DueDate       sql.NullTime
	SourceEventID sql.NullInt64
	AnimalID      sql.NullInt64
	MobID         sql.NullInt64
	Completed     bool
	CompletedAt   sql.NullTime
	CreatedAt     time.Time
}

// PropertySettings is the singleton record holding property identity
// and contact details used in report headers.
type PropertySettings struct {
	ID           int64
	PropertyName string
	PIC          string
	OwnerName    string
	Address      string
	Phone        string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
