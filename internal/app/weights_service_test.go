package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
)

func TestWeightSummaryADG(t *testing.T) {
	animals := newMockAnimalRepository()
	events := newMockEventRepository(animals)
	service := NewWeightsService(events, animals)
	ctx := context.Background()

	animal, _ := animals.Save(ctx, &models.Animal{
		VisualTag: "W100",
		Species:   models.SpeciesCattle,
		Sex:       models.SexSteer,
		Status:    models.AnimalStatusAlive,
	})

	day0 := testDate(2024, time.March, 1)
	day10 := day0.AddDate(0, 0, 10)
	for _, w := range []struct {
		date   time.Time
		weight float64
	}{
		{day0, 100},
		{day10, 110},
	} {
		event := &models.Event{EventDate: w.date, AnimalID: nullID(animal.ID)}
		if err := events.SaveWeigh(ctx, event, &models.WeighDetail{WeightKg: w.weight}); err != nil {
			t.Fatalf("failed to seed weigh: %v", err)
		}
	}

	summary, err := service.Summary(ctx, primary.WeightSummaryRequest{
		From: day0,
		To:   day10,
	})
	if err != nil {
		t.Fatalf("failed to build summary: %v", err)
	}
	if summary.Count != 2 {
		t.Fatalf("expected 2 rows, got %d", summary.Count)
	}

	first, second := summary.Rows[0], summary.Rows[1]
	if first.ADG != nil {
		t.Errorf("expected no ADG for first weighing, got %v", *first.ADG)
	}
	if second.ADG == nil {
		t.Fatal("expected ADG for second weighing")
	}
	if *second.ADG != 1.0 {
		t.Errorf("expected ADG exactly 1.0 kg/day, got %v", *second.ADG)
	}

	if summary.AvgWeight != 105 {
		t.Errorf("expected average weight 105, got %v", summary.AvgWeight)
	}
	if summary.MinWeight != 100 || summary.MaxWeight != 110 {
		t.Errorf("expected min 100 max 110, got %v/%v", summary.MinWeight, summary.MaxWeight)
	}
	if summary.AvgADG != 1.0 {
		t.Errorf("expected average ADG 1.0, got %v", summary.AvgADG)
	}
}

func TestWeightSummarySingleWeightNoADG(t *testing.T) {
	animals := newMockAnimalRepository()
	events := newMockEventRepository(animals)
	service := NewWeightsService(events, animals)
	ctx := context.Background()

	animal, _ := animals.Save(ctx, &models.Animal{
		VisualTag: "W200",
		Species:   models.SpeciesCattle,
		Sex:       models.SexFemale,
		Status:    models.AnimalStatusAlive,
	})
	event := &models.Event{EventDate: testDate(2024, time.May, 5), AnimalID: nullID(animal.ID)}
	if err := events.SaveWeigh(ctx, event, &models.WeighDetail{WeightKg: 330}); err != nil {
		t.Fatalf("failed to seed weigh: %v", err)
	}

	summary, err := service.Summary(ctx, primary.WeightSummaryRequest{
		From: testDate(2024, time.May, 1),
		To:   testDate(2024, time.May, 31),
	})
	if err != nil {
		t.Fatalf("failed to build summary: %v", err)
	}
	if summary.Count != 1 {
		t.Fatalf("expected 1 row, got %d", summary.Count)
	}
	if summary.Rows[0].ADG != nil {
		t.Errorf("expected undefined ADG for single record, got %v", *summary.Rows[0].ADG)
	}
	if summary.AvgADG != 0 {
		t.Errorf("expected zero average ADG with no ADG rows, got %v", summary.AvgADG)
	}
}

func TestWeightSummaryMobFilter(t *testing.T) {
	animals := newMockAnimalRepository()
	mobs := newMockMobRepository(animals)
	events := newMockEventRepository(animals)
	service := NewWeightsService(events, animals)
	ctx := context.Background()

	mob, _ := mobs.Save(ctx, &models.Mob{Name: "Sale Mob", Species: models.SpeciesCattle})
	inMob, _ := animals.Save(ctx, &models.Animal{
		VisualTag: "IN1", Species: models.SpeciesCattle, Sex: models.SexSteer,
		Status: models.AnimalStatusAlive, MobID: nullID(mob.ID),
	})
	outside, _ := animals.Save(ctx, &models.Animal{
		VisualTag: "OUT1", Species: models.SpeciesCattle, Sex: models.SexSteer,
		Status: models.AnimalStatusAlive,
	})

	date := testDate(2024, time.June, 10)
	for _, a := range []*models.Animal{inMob, outside} {
		event := &models.Event{EventDate: date, AnimalID: nullID(a.ID)}
		if err := events.SaveWeigh(ctx, event, &models.WeighDetail{WeightKg: 400}); err != nil {
			t.Fatalf("failed to seed weigh: %v", err)
		}
	}

	summary, err := service.Summary(ctx, primary.WeightSummaryRequest{
		From:  testDate(2024, time.June, 1),
		To:    testDate(2024, time.June, 30),
		MobID: mob.ID,
	})
	if err != nil {
		t.Fatalf("failed to build summary: %v", err)
	}
	if summary.Count != 1 {
		t.Fatalf("expected only the mob's animal, got %d rows", summary.Count)
	}
	if summary.Rows[0].AnimalID != inMob.ID {
		t.Errorf("expected animal %d, got %d", inMob.ID, summary.Rows[0].AnimalID)
	}
}
