package app

import (
	"context"
	"time"

	"github.com/example/stockbook/internal/core/whp"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// dashboardRecentEvents caps the activity feed on the dashboard.
const dashboardRecentEvents = 10

// SummaryServiceImpl implements the SummaryService interface.
type SummaryServiceImpl struct {
	animalRepo  secondary.AnimalRepository
	eventRepo   secondary.EventRepository
	taskRepo    secondary.TaskRepository
	pendingDays int
	now         func() time.Time
}

// NewSummaryService creates a new SummaryService. pendingDays is the
// dashboard's look-ahead window for due tasks.
func NewSummaryService(
	animalRepo secondary.AnimalRepository,
	eventRepo secondary.EventRepository,
	taskRepo secondary.TaskRepository,
	pendingDays int,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		animalRepo:  animalRepo,
		eventRepo:   eventRepo,
		taskRepo:    taskRepo,
		pendingDays: pendingDays,
		now:         time.Now,
	}
}

// Dashboard assembles the property summary as of today.
func (s *SummaryServiceImpl) Dashboard(ctx context.Context) (*primary.DashboardSummary, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)

	statusCounts, err := s.animalRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	speciesCounts, err := s.animalRepo.SpeciesCounts(ctx)
	if err != nil {
		return nil, err
	}
	onWHP, err := s.AnimalsOnWHP(ctx, today)
	if err != nil {
		return nil, err
	}
	pending, err := s.taskRepo.ListPending(ctx, today.AddDate(0, 0, s.pendingDays))
	if err != nil {
		return nil, err
	}
	recent, err := s.eventRepo.ListRecent(ctx, dashboardRecentEvents)
	if err != nil {
		return nil, err
	}

	return &primary.DashboardSummary{
		StatusCounts:  statusCounts,
		SpeciesCounts: speciesCounts,
		OnWHP:         onWHP,
		PendingTasks:  pending,
		RecentEvents:  recent,
	}, nil
}

// AnimalsOnWHP lists animals restricted from sale as of the given date.
func (s *SummaryServiceImpl) AnimalsOnWHP(ctx context.Context, asOf time.Time) ([]*primary.WHPEntry, error) {
	records, err := s.eventRepo.AnimalsOnWHP(ctx, asOf)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.WHPEntry, len(records))
	for i, rec := range records {
		entry := &primary.WHPEntry{
			AnimalID:      rec.AnimalID,
			VisualTag:     rec.VisualTag,
			EID:           rec.EID,
			ProductName:   rec.ProductName,
			TreatmentDate: rec.EventDate,
		}
		if rec.MeatWHPEnd.Valid {
			end := rec.MeatWHPEnd.Time
			entry.MeatWHPEnd = &end
			entry.MeatDaysLeft = whp.DaysLeft(end, asOf)
		}
		if rec.MilkWHPEnd.Valid {
			end := rec.MilkWHPEnd.Time
			entry.MilkWHPEnd = &end
		}
		if rec.ESIEnd.Valid {
			end := rec.ESIEnd.Time
			entry.ESIEnd = &end
		}
		entries[i] = entry
	}
	return entries, nil
}

var _ primary.SummaryService = (*SummaryServiceImpl)(nil)
