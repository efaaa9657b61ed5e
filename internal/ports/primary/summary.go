package primary

import (
	"context"
	"time"

	"github.com/example/stockbook/internal/models"
)

// WHPEntry is one animal currently restricted by a withholding period.
type WHPEntry struct {
	AnimalID      int64
	VisualTag     string
	EID           string
	ProductName   string
	TreatmentDate time.Time
	MeatWHPEnd    *time.Time
	MilkWHPEnd    *time.Time
	ESIEnd        *time.Time
	// MeatDaysLeft is days until the meat WHP clears, relative to the
	// query's reference date. Only meaningful when MeatWHPEnd is set.
	MeatDaysLeft int
}

// DashboardSummary is everything the dashboard shows in one fetch.
type DashboardSummary struct {
	StatusCounts  map[string]int
	SpeciesCounts map[string]int
	OnWHP         []*WHPEntry
	PendingTasks  []*models.Task
	RecentEvents  []*models.Event
}

// SummaryService answers the read-side aggregate queries.
type SummaryService interface {
	// Dashboard assembles the summary as of today.
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	// AnimalsOnWHP lists animals restricted as of the given date.
	AnimalsOnWHP(ctx context.Context, asOf time.Time) ([]*WHPEntry, error)
}
