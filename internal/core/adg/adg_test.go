package adg

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestForDateTenDayGain(t *testing.T) {
	samples := []Sample{
		{Date: day(0), WeightKg: 100},
		{Date: day(10), WeightKg: 110},
	}

	got := ForDate(samples, day(10))
	if got == nil {
		t.Fatal("expected an ADG value")
	}
	if *got != 1.0 {
		t.Errorf("expected ADG 1.0 kg/day, got %v", *got)
	}
}

func TestForDateFirstWeighingUndefined(t *testing.T) {
	samples := []Sample{
		{Date: day(0), WeightKg: 100},
		{Date: day(10), WeightKg: 110},
	}

	if got := ForDate(samples, day(0)); got != nil {
		t.Errorf("expected nil ADG for first weighing, got %v", *got)
	}
}

func TestForDateSingleSampleUndefined(t *testing.T) {
	samples := []Sample{{Date: day(0), WeightKg: 100}}

	if got := ForDate(samples, day(0)); got != nil {
		t.Errorf("expected nil ADG for a single weighing, got %v", *got)
	}
}

func TestForDateZeroDayIntervalSkipped(t *testing.T) {
	samples := []Sample{
		{Date: day(5), WeightKg: 100},
		{Date: day(5), WeightKg: 104},
	}

	if got := ForDate(samples, day(5)); got != nil {
		t.Errorf("expected nil ADG for zero-day interval, got %v", *got)
	}
}

func TestForDateUnsortedInput(t *testing.T) {
	samples := []Sample{
		{Date: day(20), WeightKg: 130},
		{Date: day(0), WeightKg: 100},
		{Date: day(10), WeightKg: 110},
	}

	got := ForDate(samples, day(20))
	if got == nil {
		t.Fatal("expected an ADG value")
	}
	if *got != 2.0 {
		t.Errorf("expected ADG 2.0 kg/day between day 10 and day 20, got %v", *got)
	}
}

func TestForDateLoss(t *testing.T) {
	samples := []Sample{
		{Date: day(0), WeightKg: 110},
		{Date: day(10), WeightKg: 100},
	}

	got := ForDate(samples, day(10))
	if got == nil {
		t.Fatal("expected an ADG value")
	}
	if *got != -1.0 {
		t.Errorf("expected ADG -1.0 kg/day for weight loss, got %v", *got)
	}
}
