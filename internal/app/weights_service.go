package app

import (
	"context"

	"github.com/example/stockbook/internal/core/adg"
	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// maxReportEvents caps how much event history the read-side summaries
// pull in one fetch. Filtering happens client-side on the capped set.
const maxReportEvents = 1000

// WeightsServiceImpl implements the WeightsService interface.
type WeightsServiceImpl struct {
	eventRepo  secondary.EventRepository
	animalRepo secondary.AnimalRepository
}

// NewWeightsService creates a new WeightsService with injected dependencies.
func NewWeightsService(eventRepo secondary.EventRepository, animalRepo secondary.AnimalRepository) *WeightsServiceImpl {
	return &WeightsServiceImpl{
		eventRepo:  eventRepo,
		animalRepo: animalRepo,
	}
}

// Summary builds the weight table for the requested range with per-row
// average daily gain. ADG for a row is measured against the animal's
// previous weighing anywhere in the fetched history, so a weight just
// before the range still anchors the first in-range row.
func (s *WeightsServiceImpl) Summary(ctx context.Context, req primary.WeightSummaryRequest) (*primary.WeightSummary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListRecent(ctx, maxReportEvents)
	if err != nil {
		return nil, err
	}

	animals := map[int64]*models.Animal{}
	samples := map[int64][]adg.Sample{}
	type weighRecord struct {
		event  *models.Event
		detail *models.WeighDetail
	}
	var weighs []weighRecord

	for _, event := range events {
		if event.EventType != models.EventTypeWeigh || !event.AnimalID.Valid {
			continue
		}
		detail, err := s.eventRepo.WeighDetail(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		if detail == nil {
			continue
		}

		animalID := event.AnimalID.Int64
		if _, ok := animals[animalID]; !ok {
			animal, err := s.animalRepo.GetByID(ctx, animalID)
			if err != nil {
				return nil, err
			}
			if animal == nil {
				continue
			}
			animals[animalID] = animal
		}

		samples[animalID] = append(samples[animalID], adg.Sample{
			Date:     event.EventDate,
			WeightKg: detail.WeightKg,
		})
		weighs = append(weighs, weighRecord{event: event, detail: detail})
	}

	summary := &primary.WeightSummary{Rows: []*primary.WeightRow{}}
	var totalWeight, totalADG float64
	var adgCount int

	// ListRecent is newest first; walk backwards for a dated table.
	for i := len(weighs) - 1; i >= 0; i-- {
		event, detail := weighs[i].event, weighs[i].detail
		if event.EventDate.Before(req.From) || event.EventDate.After(req.To) {
			continue
		}
		animal := animals[event.AnimalID.Int64]
		if req.MobID > 0 && (!animal.MobID.Valid || animal.MobID.Int64 != req.MobID) {
			continue
		}

		row := &primary.WeightRow{
			Date:          event.EventDate,
			AnimalID:      animal.ID,
			AnimalDisplay: animal.DisplayID(),
			WeightKg:      detail.WeightKg,
			ADG:           adg.ForDate(samples[animal.ID], event.EventDate),
			Notes:         event.Notes,
		}
		if detail.ConditionScore.Valid {
			score := detail.ConditionScore.Float64
			row.ConditionScore = &score
		}

		summary.Rows = append(summary.Rows, row)
		totalWeight += row.WeightKg
		if summary.MinWeight == 0 || row.WeightKg < summary.MinWeight {
			summary.MinWeight = row.WeightKg
		}
		if row.WeightKg > summary.MaxWeight {
			summary.MaxWeight = row.WeightKg
		}
		if row.ADG != nil {
			totalADG += *row.ADG
			adgCount++
		}
	}

	summary.Count = len(summary.Rows)
	if summary.Count > 0 {
		summary.AvgWeight = totalWeight / float64(summary.Count)
	}
	if adgCount > 0 {
		summary.AvgADG = totalADG / float64(adgCount)
	}
	return summary, nil
}

var _ primary.WeightsService = (*WeightsServiceImpl)(nil)
