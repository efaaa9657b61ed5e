package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/example/stockbook/internal/core/whp"
	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
)

// subjectLabel names the animal or mob an event was recorded against.
func (g *Generator) subjectLabel(ctx context.Context, event *models.Event) string {
	if event.AnimalID.Valid {
		animal, err := g.animalRepo.GetByID(ctx, event.AnimalID.Int64)
		if err == nil && animal != nil {
			return animal.DisplayID()
		}
		return fmt.Sprintf("animal #%d", event.AnimalID.Int64)
	}
	if event.MobID.Valid {
		mob, err := g.mobRepo.GetByID(ctx, event.MobID.Int64)
		if err == nil && mob != nil {
			return mob.Name + " (mob)"
		}
		return fmt.Sprintf("mob #%d", event.MobID.Int64)
	}
	return ""
}

func (g *Generator) paddockName(ctx context.Context, id int64) string {
	paddock, err := g.paddockRepo.GetByID(ctx, id)
	if err != nil || paddock == nil {
		return fmt.Sprintf("#%d", id)
	}
	return paddock.Name
}

// eventsInRange returns events of one type within [from, to], oldest
// first, drawn from the capped recent-history fetch.
func (g *Generator) eventsInRange(ctx context.Context, eventType string, from, to time.Time) ([]*models.Event, error) {
	events, err := g.eventRepo.ListRecent(ctx, maxReportEvents)
	if err != nil {
		return nil, err
	}

	matched := []*models.Event{}
	// ListRecent is newest first; walk backwards for a dated register.
	for i := len(events) - 1; i >= 0; i-- {
		event := events[i]
		if event.EventType != eventType {
			continue
		}
		if event.EventDate.Before(from) || event.EventDate.After(to) {
			continue
		}
		matched = append(matched, event)
	}
	return matched, nil
}

// TreatmentRegister writes the chemical treatment register for the
// date range.
func (g *Generator) TreatmentRegister(ctx context.Context, from, to time.Time, path string) error {
	doc, err := g.newDocument(ctx, "Treatment Register", rangeSubtitle(from, to))
	if err != nil {
		return err
	}

	events, err := g.eventsInRange(ctx, models.EventTypeTreatment, from, to)
	if err != nil {
		return err
	}

	doc.tableHeader(
		[]float64{22, 38, 42, 25, 22, 28, 30, 25, 25},
		[]string{"Date", "Stock", "Product", "Batch", "Dose", "Route", "Administered By", "Meat WHP", "ESI"},
	)
	for _, event := range events {
		detail, err := g.eventRepo.TreatmentDetail(ctx, event.ID)
		if err != nil {
			return err
		}
		if detail == nil {
			continue
		}

		productName := ""
		if detail.ProductID.Valid {
			product, err := g.productRepo.GetByID(ctx, detail.ProductID.Int64)
			if err == nil && product != nil {
				productName = product.Name
			}
		}
		meatEnd, esiEnd := "-", "-"
		if detail.MeatWHPEnd.Valid {
			meatEnd = formatDate(detail.MeatWHPEnd.Time)
		}
		if detail.ESIEnd.Valid {
			esiEnd = formatDate(detail.ESIEnd.Time)
		}

		doc.tableRow([]string{
			formatDate(event.EventDate),
			g.subjectLabel(ctx, event),
			productName,
			detail.BatchNumber,
			detail.Dose,
			detail.Route,
			detail.AdministeredBy,
			meatEnd,
			esiEnd,
		})
	}
	if len(events) == 0 {
		doc.emptyNote("No treatments recorded in this period.")
	}

	return g.save(doc, path, "treatment register")
}

// MovementLog writes the stock movement log for the date range.
func (g *Generator) MovementLog(ctx context.Context, from, to time.Time, path string) error {
	doc, err := g.newDocument(ctx, "Movement Log", rangeSubtitle(from, to))
	if err != nil {
		return err
	}

	events, err := g.eventsInRange(ctx, models.EventTypeMovement, from, to)
	if err != nil {
		return err
	}

	doc.tableHeader(
		[]float64{25, 50, 45, 45, 20, 60},
		[]string{"Date", "Stock", "From", "To", "Head", "Reason"},
	)
	for _, event := range events {
		detail, err := g.eventRepo.MovementDetail(ctx, event.ID)
		if err != nil {
			return err
		}
		if detail == nil {
			continue
		}

		fromName, toName := "-", "-"
		if detail.FromPaddockID.Valid {
			fromName = g.paddockName(ctx, detail.FromPaddockID.Int64)
		}
		if detail.ToPaddockID.Valid {
			toName = g.paddockName(ctx, detail.ToPaddockID.Int64)
		}

		doc.tableRow([]string{
			formatDate(event.EventDate),
			g.subjectLabel(ctx, event),
			fromName,
			toName,
			fmt.Sprintf("%d", detail.HeadCount),
			detail.Reason,
		})
	}
	if len(events) == 0 {
		doc.emptyNote("No movements recorded in this period.")
	}

	return g.save(doc, path, "movement log")
}

// WHPClearance writes the list of animals restricted from sale as of
// the reference date.
func (g *Generator) WHPClearance(ctx context.Context, asOf time.Time, path string) error {
	doc, err := g.newDocument(ctx, "WHP Clearance List", fmt.Sprintf("Animals restricted as of %s", formatDate(asOf)))
	if err != nil {
		return err
	}

	records, err := g.eventRepo.AnimalsOnWHP(ctx, asOf)
	if err != nil {
		return err
	}

	doc.tableHeader(
		[]float64{30, 45, 45, 28, 28, 25, 28, 28},
		[]string{"Tag", "EID", "Product", "Treated", "Meat WHP", "Days Left", "Milk WHP", "ESI"},
	)
	for _, rec := range records {
		meatEnd, daysLeft, milkEnd, esiEnd := "-", "-", "-", "-"
		if rec.MeatWHPEnd.Valid {
			meatEnd = formatDate(rec.MeatWHPEnd.Time)
			daysLeft = fmt.Sprintf("%d", whp.DaysLeft(rec.MeatWHPEnd.Time, asOf))
		}
		if rec.MilkWHPEnd.Valid {
			milkEnd = formatDate(rec.MilkWHPEnd.Time)
		}
		if rec.ESIEnd.Valid {
			esiEnd = formatDate(rec.ESIEnd.Time)
		}

		doc.tableRow([]string{
			rec.VisualTag,
			rec.EID,
			rec.ProductName,
			formatDate(rec.EventDate),
			meatEnd,
			daysLeft,
			milkEnd,
			esiEnd,
		})
	}
	if len(records) == 0 {
		doc.emptyNote("No animals are currently within a withholding period.")
	}

	return g.save(doc, path, "WHP clearance")
}

// SaleDraft writes the sale draft: alive animals (optionally one mob)
// with their withholding status so restricted stock is flagged before
// loading.
func (g *Generator) SaleDraft(ctx context.Context, mobID int64, asOf time.Time, path string) error {
	subtitle := "All alive animals"
	if mobID > 0 {
		mob, err := g.mobRepo.GetByID(ctx, mobID)
		if err != nil {
			return err
		}
		if mob != nil {
			subtitle = fmt.Sprintf("Mob: %s", mob.Name)
		}
	}

	doc, err := g.newDocument(ctx, "Sale Draft", subtitle)
	if err != nil {
		return err
	}

	var animals []*models.Animal
	if mobID > 0 {
		animals, err = g.animalRepo.ListByMob(ctx, mobID)
	} else {
		animals, err = g.animalRepo.List(ctx, models.AnimalStatusAlive)
	}
	if err != nil {
		return err
	}

	restricted := map[int64]time.Time{}
	records, err := g.eventRepo.AnimalsOnWHP(ctx, asOf)
	if err != nil {
		return err
	}
	for _, rec := range records {
		latest := restricted[rec.AnimalID]
		if rec.MeatWHPEnd.Valid && rec.MeatWHPEnd.Time.After(latest) {
			latest = rec.MeatWHPEnd.Time
		}
		if rec.ESIEnd.Valid && rec.ESIEnd.Time.After(latest) {
			latest = rec.ESIEnd.Time
		}
		if rec.MilkWHPEnd.Valid && rec.MilkWHPEnd.Time.After(latest) {
			latest = rec.MilkWHPEnd.Time
		}
		restricted[rec.AnimalID] = latest
	}

	doc.tableHeader(
		[]float64{28, 45, 28, 32, 22, 30, 60},
		[]string{"Tag", "EID", "Species", "Breed", "Sex", "Born", "WHP Status"},
	)
	count := 0
	for _, animal := range animals {
		if animal.Status != models.AnimalStatusAlive {
			continue
		}
		count++

		born := "-"
		if animal.DateOfBirth.Valid {
			born = formatDate(animal.DateOfBirth.Time)
		}
		status := "Clear"
		if until, ok := restricted[animal.ID]; ok {
			status = fmt.Sprintf("ON WHP until %s", formatDate(until))
		}

		doc.tableRow([]string{
			animal.VisualTag,
			animal.EID,
			animal.Species,
			animal.Breed,
			animal.Sex,
			born,
			status,
		})
	}
	if count == 0 {
		doc.emptyNote("No alive animals to draft.")
	}

	return g.save(doc, path, "sale draft")
}

// Inventory writes the full stock inventory with herd totals.
func (g *Generator) Inventory(ctx context.Context, path string) error {
	doc, err := g.newDocument(ctx, "Stock Inventory", "")
	if err != nil {
		return err
	}

	counts, err := g.animalRepo.StatusCounts(ctx)
	if err != nil {
		return err
	}
	doc.pdf.SetFont("Helvetica", "", 10)
	summary := fmt.Sprintf("Alive: %d   Sold: %d   Dead: %d   Missing: %d",
		counts[models.AnimalStatusAlive], counts[models.AnimalStatusSold],
		counts[models.AnimalStatusDead], counts[models.AnimalStatusMissing])
	doc.pdf.CellFormat(0, 6, summary, "", 1, "L", false, 0, "")
	doc.pdf.Ln(3)

	animals, err := g.animalRepo.List(ctx, "")
	if err != nil {
		return err
	}

	mobNames := map[int64]string{}
	mobs, err := g.mobRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, mob := range mobs {
		mobNames[mob.ID] = mob.Name
	}

	doc.tableHeader(
		[]float64{28, 45, 28, 32, 22, 30, 25, 45},
		[]string{"Tag", "EID", "Species", "Breed", "Sex", "Born", "Status", "Mob"},
	)
	for _, animal := range animals {
		born := "-"
		if animal.DateOfBirth.Valid {
			born = formatDate(animal.DateOfBirth.Time)
		}
		mobName := "-"
		if animal.MobID.Valid {
			if name, ok := mobNames[animal.MobID.Int64]; ok {
				mobName = name
			}
		}

		doc.tableRow([]string{
			animal.VisualTag,
			animal.EID,
			animal.Species,
			animal.Breed,
			animal.Sex,
			born,
			animal.Status,
			mobName,
		})
	}
	if len(animals) == 0 {
		doc.emptyNote("No animals recorded.")
	}

	return g.save(doc, path, "inventory")
}

// WeightSummary writes the weight table built by the weights service.
func (g *Generator) WeightSummary(ctx context.Context, summary *primary.WeightSummary, from, to time.Time, path string) error {
	doc, err := g.newDocument(ctx, "Weight Summary", rangeSubtitle(from, to))
	if err != nil {
		return err
	}

	doc.tableHeader(
		[]float64{28, 45, 30, 32, 32, 80},
		[]string{"Date", "Animal", "Weight (kg)", "Condition", "ADG (kg/day)", "Notes"},
	)
	for _, row := range summary.Rows {
		condition, adgCell := "-", "-"
		if row.ConditionScore != nil {
			condition = fmt.Sprintf("%.1f", *row.ConditionScore)
		}
		if row.ADG != nil {
			adgCell = fmt.Sprintf("%.2f", *row.ADG)
		}

		doc.tableRow([]string{
			formatDate(row.Date),
			row.AnimalDisplay,
			fmt.Sprintf("%.1f", row.WeightKg),
			condition,
			adgCell,
			row.Notes,
		})
	}
	if summary.Count == 0 {
		doc.emptyNote("No weights recorded in this period.")
	} else {
		doc.pdf.Ln(3)
		doc.pdf.SetFont("Helvetica", "B", 10)
		stats := fmt.Sprintf("Count: %d   Avg: %.1fkg   Min: %.1fkg   Max: %.1fkg   Avg ADG: %.2fkg/day",
			summary.Count, summary.AvgWeight, summary.MinWeight, summary.MaxWeight, summary.AvgADG)
		doc.pdf.CellFormat(0, 7, stats, "", 1, "L", false, 0, "")
	}

	return g.save(doc, path, "weight summary")
}
