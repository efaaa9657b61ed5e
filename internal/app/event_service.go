package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/core/herd"
	"github.com/example/stockbook/internal/core/whp"
	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// EventServiceImpl implements the EventService interface.
type EventServiceImpl struct {
	eventRepo   secondary.EventRepository
	animalRepo  secondary.AnimalRepository
	mobRepo     secondary.MobRepository
	productRepo secondary.ProductRepository
	paddockRepo secondary.PaddockRepository
}

// NewEventService creates a new EventService with injected dependencies.
func NewEventService(
	eventRepo secondary.EventRepository,
	animalRepo secondary.AnimalRepository,
	mobRepo secondary.MobRepository,
	productRepo secondary.ProductRepository,
	paddockRepo secondary.PaddockRepository,
) *EventServiceImpl {
	return &EventServiceImpl{
		eventRepo:   eventRepo,
		animalRepo:  animalRepo,
		mobRepo:     mobRepo,
		productRepo: productRepo,
		paddockRepo: paddockRepo,
	}
}

func nullID(id int64) sql.NullInt64 {
	if id > 0 {
		return sql.NullInt64{Int64: id, Valid: true}
	}
	return sql.NullInt64{}
}

// RecordTreatment records one treatment event per listed animal, or a
// single mob-level event. The product's withholding day counts are
// resolved into fixed end dates stored on every detail row; they are
// never recomputed when the product changes later.
func (s *EventServiceImpl) RecordTreatment(ctx context.Context, req primary.RecordTreatmentRequest) (*primary.TreatmentResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	guardCtx := herd.TreatmentContext{
		ProductID:     req.ProductID,
		ProductExists: product != nil,
		AnimalCount:   len(req.AnimalIDs),
		HasMob:        req.MobID > 0,
	}
	if guardCtx.HasMob && product != nil {
		count, err := s.mobRepo.AliveCount(ctx, req.MobID)
		if err != nil {
			return nil, err
		}
		guardCtx.MobAnimalCount = count
	}
	if err := herd.CanRecordTreatment(guardCtx).Error(); err != nil {
		return nil, err
	}

	ends := whp.Compute(product, req.Date)

	dose := req.Dose
	if dose == "" {
		dose = product.DefaultDose
	}
	route := req.Route
	if route == "" {
		route = product.DefaultRoute
	}

	newDetail := func() *models.TreatmentDetail {
		detail := &models.TreatmentDetail{
			ProductID:      sql.NullInt64{Int64: product.ID, Valid: true},
			BatchNumber:    req.BatchNumber,
			Dose:           dose,
			Route:          route,
			AdministeredBy: req.AdministeredBy,
		}
		if ends.Meat != nil {
			detail.MeatWHPEnd = sql.NullTime{Time: *ends.Meat, Valid: true}
		}
		if ends.Milk != nil {
			detail.MilkWHPEnd = sql.NullTime{Time: *ends.Milk, Valid: true}
		}
		if ends.ESI != nil {
			detail.ESIEnd = sql.NullTime{Time: *ends.ESI, Valid: true}
		}
		return detail
	}

	result := &primary.TreatmentResult{
		MeatWHPEnd: ends.Meat,
		MilkWHPEnd: ends.Milk,
		ESIEnd:     ends.ESI,
	}

	if req.MobID > 0 {
		event := &models.Event{
			EventDate:  req.Date,
			MobID:      nullID(req.MobID),
			Notes:      req.Notes,
			RecordedBy: req.RecordedBy,
		}
		if err := s.eventRepo.SaveTreatment(ctx, event, newDetail()); err != nil {
			return nil, err
		}
		result.EventIDs = append(result.EventIDs, event.ID)
		return result, nil
	}

	for _, animalID := range req.AnimalIDs {
		animal, err := s.animalRepo.GetByID(ctx, animalID)
		if err != nil {
			return nil, err
		}
		if animal == nil {
			return nil, fmt.Errorf("animal %d not found", animalID)
		}

		event := &models.Event{
			EventDate:  req.Date,
			AnimalID:   nullID(animalID),
			Notes:      req.Notes,
			RecordedBy: req.RecordedBy,
		}
		if err := s.eventRepo.SaveTreatment(ctx, event, newDetail()); err != nil {
			return nil, err
		}
		result.EventIDs = append(result.EventIDs, event.ID)
	}
	return result, nil
}

// RecordWeigh records a weight for a single animal.
func (s *EventServiceImpl) RecordWeigh(ctx context.Context, req primary.RecordWeighRequest) (*models.Event, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	animal, err := s.animalRepo.GetByID(ctx, req.AnimalID)
	if err != nil {
		return nil, err
	}
	guardCtx := herd.WeighContext{
		AnimalID:     req.AnimalID,
		AnimalExists: animal != nil,
		WeightKg:     req.WeightKg,
	}
	if err := herd.CanRecordWeigh(guardCtx).Error(); err != nil {
		return nil, err
	}

	event := &models.Event{
		EventDate:  req.Date,
		AnimalID:   nullID(req.AnimalID),
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	}
	detail := &models.WeighDetail{WeightKg: req.WeightKg}
	if req.ConditionScore > 0 {
		detail.ConditionScore = sql.NullFloat64{Float64: req.ConditionScore, Valid: true}
	}

	if err := s.eventRepo.SaveWeigh(ctx, event, detail); err != nil {
		return nil, err
	}
	return event, nil
}

// RecordMovement records a movement for an animal or a mob. Moving a
// mob also updates its current paddock; a zero destination records
// removal from paddocks.
func (s *EventServiceImpl) RecordMovement(ctx context.Context, req primary.RecordMovementRequest) (*models.Event, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	toPaddockExists := req.ToPaddockID == 0
	if req.ToPaddockID > 0 {
		paddock, err := s.paddockRepo.GetByID(ctx, req.ToPaddockID)
		if err != nil {
			return nil, err
		}
		toPaddockExists = paddock != nil
	}

	guardCtx := herd.MovementContext{
		HasAnimal:       req.AnimalID > 0,
		HasMob:          req.MobID > 0,
		ToPaddockID:     req.ToPaddockID,
		ToPaddockExists: toPaddockExists,
	}
	if err := herd.CanRecordMovement(guardCtx).Error(); err != nil {
		return nil, err
	}

	detail := &models.MovementDetail{
		FromPaddockID: nullID(req.FromPaddockID),
		ToPaddockID:   nullID(req.ToPaddockID),
		Reason:        req.Reason,
		HeadCount:     req.HeadCount,
	}

	var mob *models.Mob
	if req.MobID > 0 {
		var err error
		mob, err = s.mobRepo.GetByID(ctx, req.MobID)
		if err != nil {
			return nil, err
		}
		if mob == nil {
			return nil, fmt.Errorf("mob %d not found", req.MobID)
		}
		if req.FromPaddockID == 0 {
			detail.FromPaddockID = mob.CurrentPaddockID
		}
		if req.HeadCount == 0 {
			count, err := s.mobRepo.AliveCount(ctx, req.MobID)
			if err != nil {
				return nil, err
			}
			detail.HeadCount = count
		}
	}

	event := &models.Event{
		EventDate:  req.Date,
		AnimalID:   nullID(req.AnimalID),
		MobID:      nullID(req.MobID),
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	}
	if err := s.eventRepo.SaveMovement(ctx, event, detail); err != nil {
		return nil, err
	}

	if mob != nil {
		mob.CurrentPaddockID = nullID(req.ToPaddockID)
		if _, err := s.mobRepo.Save(ctx, mob); err != nil {
			return nil, fmt.Errorf("failed to update mob paddock: %w", err)
		}
	}
	return event, nil
}

// RecordEvent records an untyped event. Death and sale events against
// an animal also update its status.
func (s *EventServiceImpl) RecordEvent(ctx context.Context, req primary.RecordEventRequest) (*models.Event, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if (req.AnimalID > 0) == (req.MobID > 0) {
		return nil, fmt.Errorf("event needs exactly one of an animal or a mob")
	}

	event := &models.Event{
		EventType:  req.Type,
		EventDate:  req.Date,
		AnimalID:   nullID(req.AnimalID),
		MobID:      nullID(req.MobID),
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	}
	saved, err := s.eventRepo.Save(ctx, event)
	if err != nil {
		return nil, err
	}

	if req.AnimalID > 0 && (req.Type == models.EventTypeDeath || req.Type == models.EventTypeSale) {
		animal, err := s.animalRepo.GetByID(ctx, req.AnimalID)
		if err != nil {
			return nil, err
		}
		if animal != nil {
			if req.Type == models.EventTypeDeath {
				animal.Status = models.AnimalStatusDead
			} else {
				animal.Status = models.AnimalStatusSold
			}
			if _, err := s.animalRepo.Save(ctx, animal); err != nil {
				return nil, fmt.Errorf("failed to update animal status: %w", err)
			}
		}
	}
	return saved, nil
}

// AnimalHistory returns an animal's events newest first.
func (s *EventServiceImpl) AnimalHistory(ctx context.Context, animalID int64, eventType string) ([]*models.Event, error) {
	return s.eventRepo.ListForAnimal(ctx, animalID, eventType)
}

// MobHistory returns a mob's events newest first.
func (s *EventServiceImpl) MobHistory(ctx context.Context, mobID int64, eventType string) ([]*models.Event, error) {
	return s.eventRepo.ListForMob(ctx, mobID, eventType)
}

// RecentEvents returns the most recent events across the property.
func (s *EventServiceImpl) RecentEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	return s.eventRepo.ListRecent(ctx, limit)
}

// TreatmentDetail returns the treatment detail row for an event.
func (s *EventServiceImpl) TreatmentDetail(ctx context.Context, eventID int64) (*models.TreatmentDetail, error) {
	return s.eventRepo.TreatmentDetail(ctx, eventID)
}

// MovementDetail returns the movement detail row for an event.
func (s *EventServiceImpl) MovementDetail(ctx context.Context, eventID int64) (*models.MovementDetail, error) {
	return s.eventRepo.MovementDetail(ctx, eventID)
}

// WeighDetail returns the weigh detail row for an event.
func (s *EventServiceImpl) WeighDetail(ctx context.Context, eventID int64) (*models.WeighDetail, error) {
	return s.eventRepo.WeighDetail(ctx, eventID)
}

// DeleteEvent deletes an event and its detail row.
func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

var _ primary.EventService = (*EventServiceImpl)(nil)
