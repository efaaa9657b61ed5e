// Package adg computes average daily gain between successive
// weighings of the same animal.
package adg

import (
	"sort"
	"time"
)

// Sample is one weighing.
type Sample struct {
	Date     time.Time
	WeightKg float64
}

// ForDate returns the gain per day at the weighing on currentDate,
// measured against the animal's previous weighing. It returns nil for
// the animal's first weighing, when currentDate is not in samples, and
// when the interval to the previous weighing is zero days (same-day
// reweigh, ADG undefined).
func ForDate(samples []Sample, currentDate time.Time) *float64 {
	if len(samples) < 2 {
		return nil
	}

	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for i, s := range sorted {
		if s.Date.Equal(currentDate) {
			if i == 0 {
				return nil
			}
			prev := sorted[i-1]
			days := int(s.Date.Sub(prev.Date).Hours() / 24)
			if days <= 0 {
				return nil
			}
			gain := (s.WeightKg - prev.WeightKg) / float64(days)
			return &gain
		}
	}

	return nil
}
