package primary

import (
	"context"
	"time"
)

// WeightSummaryRequest selects weigh events by date range and optional
// mob. MobID of zero means all mobs.
type WeightSummaryRequest struct {
	From  time.Time `validate:"required"`
	To    time.Time `validate:"required"`
	MobID int64
}

// WeightRow is one weigh record with its computed average daily gain.
// ADG is nil for an animal's first weight in the range and when the
// interval since the previous weight is zero days.
type WeightRow struct {
	Date           time.Time
	AnimalID       int64
	AnimalDisplay  string
	WeightKg       float64
	ConditionScore *float64
	ADG            *float64
	Notes          string
}

// WeightSummary is the weight table plus its aggregate statistics.
type WeightSummary struct {
	Rows      []*WeightRow
	Count     int
	AvgWeight float64
	MinWeight float64
	MaxWeight float64
	// AvgADG averages the rows that have an ADG value.
	AvgADG float64
}

// WeightsService builds the weight summary with per-row ADG.
type WeightsService interface {
	Summary(ctx context.Context, req WeightSummaryRequest) (*WeightSummary, error)
}
