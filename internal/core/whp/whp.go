// Package whp implements the withholding-period date arithmetic.
// Guarding sale compliance is the one real business rule in the
// system, so it lives here as pure functions with no store access.
package whp

import (
	"time"

	"github.com/example/stockbook/internal/models"
)

// EndDates holds the computed clearance dates for a treatment. A nil
// date means the product imposes no withholding on that channel.
type EndDates struct {
	Meat *time.Time
	Milk *time.Time
	ESI  *time.Time
}

// Compute derives the clearance dates for a treatment entered on
// eventDate: eventDate plus the product's day count, set only when the
// count is positive. The results are stored on the treatment detail
// row at entry time and never recomputed on read; editing the
// product's day counts later does not rewrite recorded treatments.
func Compute(product *models.Product, eventDate time.Time) EndDates {
	var ends EndDates
	if product == nil {
		return ends
	}
	if product.MeatWHPDays > 0 {
		d := eventDate.AddDate(0, 0, product.MeatWHPDays)
		ends.Meat = &d
	}
	if product.MilkWHPDays > 0 {
		d := eventDate.AddDate(0, 0, product.MilkWHPDays)
		ends.Milk = &d
	}
	if product.ESIDays > 0 {
		d := eventDate.AddDate(0, 0, product.ESIDays)
		ends.ESI = &d
	}
	return ends
}

// Restricted reports whether an end date still withholds the animal as
// of asOf. The end day itself is restricted; the animal clears the day
// after.
func Restricted(end, asOf time.Time) bool {
	return !end.Before(asOf)
}

// DaysLeft returns the whole days from asOf until end. Zero means the
// end date is today; negative means already cleared.
func DaysLeft(end, asOf time.Time) int {
	return int(end.Sub(asOf).Hours() / 24)
}
