package models

import "time"

// Product represents a treatment product (drench, vaccine, antibiotic).
// The withholding day counts are copied onto treatment records as fixed
// end dates at entry time; changing them here does not rewrite history.
type Product struct {
	ID               int64
	Name             string
	ActiveIngredient string
	Category         string
	MeatWHPDays      int // meat withholding period, days
	MilkWHPDays      int // milk withholding period, days
	ESIDays          int // export slaughter interval, days
	DefaultDose      string
	DefaultRoute     string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Treatment route constants
const (
	RouteOral          = "oral"
	RouteSubcutaneous  = "subcutaneous"
	RouteIntramuscular = "intramuscular"
	RoutePourOn        = "pour_on"
	RouteSpray         = "spray"
	RouteEarTag        = "ear_tag"
	RouteIntraruminal  = "intraruminal"
	RouteOther         = "other"
)
