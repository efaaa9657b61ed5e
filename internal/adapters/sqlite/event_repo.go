package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/secondary"
)

// EventRepository implements secondary.EventRepository with SQLite.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new SQLite event repository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventSelectCols = "id, event_type, event_date, animal_id, mob_id, notes, recorded_by, created_at"

func scanEvent(scanner interface {
	Scan(dest ...any) error
}) (*models.Event, error) {
	var notes, recordedBy sql.NullString

	event := &models.Event{}
	err := scanner.Scan(
		&event.ID, &event.EventType, &event.EventDate,
		&event.AnimalID, &event.MobID, &notes, &recordedBy, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Notes = notes.String
	event.RecordedBy = recordedBy.String
	return event, nil
}

// Save inserts the event when its ID is zero, otherwise updates in place.
func (r *EventRepository) Save(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO events (event_type, event_date, animal_id, mob_id, notes, recorded_by) VALUES (?, ?, ?, ?, ?, ?)",
			event.EventType, event.EventDate, event.AnimalID, event.MobID, event.Notes, event.RecordedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert event: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get event id: %w", err)
		}
		return r.GetByID(ctx, id)
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE events SET event_type = ?, event_date = ?, animal_id = ?, mob_id = ?, notes = ?, recorded_by = ? WHERE id = ?",
		event.EventType, event.EventDate, event.AnimalID, event.MobID, event.Notes, event.RecordedBy, event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return r.GetByID(ctx, event.ID)
}

// GetByID retrieves an event, returning (nil, nil) when it does not exist.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+eventSelectCols+" FROM events WHERE id = ?", id,
	)

	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// saveTyped writes the base event and its detail row in one
// transaction. insertDetail receives the new event id.
func (r *EventRepository) saveTyped(ctx context.Context, event *models.Event, insertDetail func(tx *sql.Tx, eventID int64) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO events (event_type, event_date, animal_id, mob_id, notes, recorded_by) VALUES (?, ?, ?, ?, ?, ?)",
		event.EventType, event.EventDate, event.AnimalID, event.MobID, event.Notes, event.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	eventID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get event id: %w", err)
	}

	if err := insertDetail(tx, eventID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event: %w", err)
	}
	event.ID = eventID
	return nil
}

// SaveMovement writes a movement event and its detail row together.
func (r *EventRepository) SaveMovement(ctx context.Context, event *models.Event, detail *models.MovementDetail) error {
	event.EventType = models.EventTypeMovement
	return r.saveTyped(ctx, event, func(tx *sql.Tx, eventID int64) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO movement_events (event_id, from_paddock_id, to_paddock_id, reason, head_count) VALUES (?, ?, ?, ?, ?)",
			eventID, detail.FromPaddockID, detail.ToPaddockID, detail.Reason, detail.HeadCount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert movement detail: %w", err)
		}
		detail.ID, _ = res.LastInsertId()
		detail.EventID = eventID
		return nil
	})
}

// SaveTreatment writes a treatment event and its detail row together.
func (r *EventRepository) SaveTreatment(ctx context.Context, event *models.Event, detail *models.TreatmentDetail) error {
	event.EventType = models.EventTypeTreatment
	return r.saveTyped(ctx, event, func(tx *sql.Tx, eventID int64) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO treatment_events (event_id, product_id, batch_number, dose, route, administered_by, meat_whp_end, milk_whp_end, esi_end)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			eventID, detail.ProductID, detail.BatchNumber, detail.Dose, detail.Route,
			detail.AdministeredBy, detail.MeatWHPEnd, detail.MilkWHPEnd, detail.ESIEnd,
		)
		if err != nil {
			return fmt.Errorf("failed to insert treatment detail: %w", err)
		}
		detail.ID, _ = res.LastInsertId()
		detail.EventID = eventID
		return nil
	})
}

// SaveWeigh writes a weigh event and its detail row together.
func (r *EventRepository) SaveWeigh(ctx context.Context, event *models.Event, detail *models.WeighDetail) error {
	event.EventType = models.EventTypeWeigh
	return r.saveTyped(ctx, event, func(tx *sql.Tx, eventID int64) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO weigh_events (event_id, weight_kg, condition_score) VALUES (?, ?, ?)",
			eventID, detail.WeightKg, detail.ConditionScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert weigh detail: %w", err)
		}
		detail.ID, _ = res.LastInsertId()
		detail.EventID = eventID
		return nil
	})
}

func (r *EventRepository) listEvents(ctx context.Context, where string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventSelectCols+" FROM events "+where, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// ListForAnimal returns the animal's events newest first, filtered by
// type when eventType is non-empty.
func (r *EventRepository) ListForAnimal(ctx context.Context, animalID int64, eventType string) ([]*models.Event, error) {
	where := "WHERE animal_id = ?"
	args := []any{animalID}
	if eventType != "" {
		where += " AND event_type = ?"
		args = append(args, eventType)
	}
	where += " ORDER BY event_date DESC, id DESC"
	return r.listEvents(ctx, where, args...)
}

// ListForMob returns the mob's events newest first, filtered by type
// when eventType is non-empty.
func (r *EventRepository) ListForMob(ctx context.Context, mobID int64, eventType string) ([]*models.Event, error) {
	where := "WHERE mob_id = ?"
	args := []any{mobID}
	if eventType != "" {
		where += " AND event_type = ?"
		args = append(args, eventType)
	}
	where += " ORDER BY event_date DESC, id DESC"
	return r.listEvents(ctx, where, args...)
}

// ListRecent returns the most recent events across the property,
// capped at limit.
func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]*models.Event, error) {
	return r.listEvents(ctx, "ORDER BY event_date DESC, id DESC LIMIT ?", limit)
}

// MovementDetail returns the movement detail row for an event, or
// (nil, nil) when the event has none.
func (r *EventRepository) MovementDetail(ctx context.Context, eventID int64) (*models.MovementDetail, error) {
	detail := &models.MovementDetail{}
	var reason sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT id, event_id, from_paddock_id, to_paddock_id, reason, head_count FROM movement_events WHERE event_id = ?",
		eventID,
	).Scan(&detail.ID, &detail.EventID, &detail.FromPaddockID, &detail.ToPaddockID, &reason, &detail.HeadCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movement detail: %w", err)
	}
	detail.Reason = reason.String
	return detail, nil
}

// TreatmentDetail returns the treatment detail row for an event, or
// (nil, nil) when the event has none.
func (r *EventRepository) TreatmentDetail(ctx context.Context, eventID int64) (*models.TreatmentDetail, error) {
	detail := &models.TreatmentDetail{}
	var batch, dose, route, adminBy sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, product_id, batch_number, dose, route, administered_by, meat_whp_end, milk_whp_end, esi_end
		 FROM treatment_events WHERE event_id = ?`,
		eventID,
	).Scan(&detail.ID, &detail.EventID, &detail.ProductID, &batch, &dose, &route, &adminBy,
		&detail.MeatWHPEnd, &detail.MilkWHPEnd, &detail.ESIEnd)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment detail: %w", err)
	}
	detail.BatchNumber = batch.String
	detail.Dose = dose.String
	detail.Route = route.String
	detail.AdministeredBy = adminBy.String
	return detail, nil
}

// WeighDetail returns the weigh detail row for an event, or (nil, nil)
// when the event has none.
func (r *EventRepository) WeighDetail(ctx context.Context, eventID int64) (*models.WeighDetail, error) {
	detail := &models.WeighDetail{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, event_id, weight_kg, condition_score FROM weigh_events WHERE event_id = ?",
		eventID,
	).Scan(&detail.ID, &detail.EventID, &detail.WeightKg, &detail.ConditionScore)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weigh detail: %w", err)
	}
	return detail, nil
}

// Delete removes an event. Detail rows cascade.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// AnimalsOnWHP returns alive animals with any withholding end date on
// or after asOf, ordered by meat WHP end then visual tag. An animal
// treated more than once appears once per restricting treatment.
func (r *EventRepository) AnimalsOnWHP(ctx context.Context, asOf time.Time) ([]*secondary.WHPRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.eid, a.visual_tag, e.id, e.event_date,
		        t.meat_whp_end, t.milk_whp_end, t.esi_end, COALESCE(p.name, '')
		 FROM treatment_events t
		 JOIN events e ON e.id = t.event_id
		 JOIN animals a ON a.id = e.animal_id
		 LEFT JOIN products p ON p.id = t.product_id
		 WHERE a.status = ?
		   AND (t.meat_whp_end >= ? OR t.milk_whp_end >= ? OR t.esi_end >= ?)
		 ORDER BY t.meat_whp_end, a.visual_tag`,
		models.AnimalStatusAlive, asOf, asOf, asOf,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query animals on WHP: %w", err)
	}
	defer rows.Close()

	records := []*secondary.WHPRecord{}
	for rows.Next() {
		var eid, visualTag sql.NullString
		rec := &secondary.WHPRecord{}
		err := rows.Scan(&rec.AnimalID, &eid, &visualTag, &rec.EventID, &rec.EventDate,
			&rec.MeatWHPEnd, &rec.MilkWHPEnd, &rec.ESIEnd, &rec.ProductName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan WHP record: %w", err)
		}
		rec.EID = eid.String
		rec.VisualTag = visualTag.String
		records = append(records, rec)
	}
	return records, rows.Err()
}
