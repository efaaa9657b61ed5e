package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/example/stockbook/internal/models"
)

func TestAnimalsOnWHPBoundaryDays(t *testing.T) {
	animals := newMockAnimalRepository()
	events := newMockEventRepository(animals)
	tasks := newMockTaskRepository()
	service := NewSummaryService(animals, events, tasks, 7)
	ctx := context.Background()

	animal, _ := animals.Save(ctx, &models.Animal{
		VisualTag: "WHP1",
		Species:   models.SpeciesCattle,
		Sex:       models.SexFemale,
		Status:    models.AnimalStatusAlive,
	})

	treated := testDate(2024, time.January, 10)
	end := testDate(2024, time.February, 7)
	event := &models.Event{EventDate: treated, AnimalID: nullID(animal.ID)}
	detail := &models.TreatmentDetail{
		MeatWHPEnd: sql.NullTime{Time: end, Valid: true},
	}
	if err := events.SaveTreatment(ctx, event, detail); err != nil {
		t.Fatalf("failed to seed treatment: %v", err)
	}

	onEnd, err := service.AnimalsOnWHP(ctx, end)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(onEnd) != 1 {
		t.Fatalf("expected restricted on the end date, got %d entries", len(onEnd))
	}
	if onEnd[0].MeatDaysLeft != 0 {
		t.Errorf("expected 0 days left on the end date, got %d", onEnd[0].MeatDaysLeft)
	}

	threeBefore, err := service.AnimalsOnWHP(ctx, end.AddDate(0, 0, -3))
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(threeBefore) != 1 || threeBefore[0].MeatDaysLeft != 3 {
		t.Errorf("expected 3 days left, got %+v", threeBefore)
	}

	after, err := service.AnimalsOnWHP(ctx, end.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("expected clear the day after the end date, got %d entries", len(after))
	}
}

func TestDashboardAssemblesSections(t *testing.T) {
	animals := newMockAnimalRepository()
	events := newMockEventRepository(animals)
	tasks := newMockTaskRepository()
	service := NewSummaryService(animals, events, tasks, 7)
	service.now = func() time.Time { return testDate(2024, time.June, 1) }
	ctx := context.Background()

	animals.Save(ctx, &models.Animal{
		VisualTag: "D1", Species: models.SpeciesCattle,
		Sex: models.SexFemale, Status: models.AnimalStatusAlive,
	})
	tasks.Save(ctx, &models.Task{Title: "Check water"})
	event := &models.Event{
		EventType: models.EventTypeNote,
		EventDate: testDate(2024, time.May, 30),
	}
	events.Save(ctx, event)

	dashboard, err := service.Dashboard(ctx)
	if err != nil {
		t.Fatalf("failed to build dashboard: %v", err)
	}
	if dashboard.StatusCounts[models.AnimalStatusAlive] != 1 {
		t.Errorf("unexpected status counts: %v", dashboard.StatusCounts)
	}
	if dashboard.SpeciesCounts[models.SpeciesCattle] != 1 {
		t.Errorf("unexpected species counts: %v", dashboard.SpeciesCounts)
	}
	if len(dashboard.PendingTasks) != 1 {
		t.Errorf("expected 1 pending task, got %d", len(dashboard.PendingTasks))
	}
	if len(dashboard.RecentEvents) != 1 {
		t.Errorf("expected 1 recent event, got %d", len(dashboard.RecentEvents))
	}
}
