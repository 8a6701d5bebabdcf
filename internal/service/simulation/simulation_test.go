package simulation

import (
	"errors"
	"math"
	"testing"
)

func baseInput() CapacityInput {
	return CapacityInput{
		Workers:                  2,
		Stations:                 1,
		CapacityPerStation:       4,
		MinutesPerUnit:           5,
		PrepMinutesPerUnit:       1,
		DailyHours:               8,
		DaysPerWeek:              6,
		EfficiencyPercent:        85,
		WagePerHour:              18,
		EnergyCostPerStationHour: 6,
		Period:                   PeriodWeekly,
	}
}

func TestEstimateWeekly(t *testing.T) {
	got, err := Estimate(baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 48h -> 2880 min -> 2448 effective -> 408 cycles of 6 min -> 1632 units.
	if got.TotalHours != 48 {
		t.Fatalf("TotalHours = %v, want 48", got.TotalHours)
	}
	if got.Units != 1632 {
		t.Fatalf("Units = %d, want 1632", got.Units)
	}
	if math.Abs(got.LaborCost-1728) > 1e-9 || math.Abs(got.EnergyCost-288) > 1e-9 || math.Abs(got.TotalCost-2016) > 1e-9 {
		t.Fatalf("unexpected costs: %+v", got)
	}
}

func TestEstimateDaily(t *testing.T) {
	in := baseInput()
	in.Period = PeriodDaily

	got, err := Estimate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 8h -> 480 min -> 408 effective -> 68 cycles -> 272 units.
	if got.TotalHours != 8 {
		t.Fatalf("TotalHours = %v, want 8", got.TotalHours)
	}
	if got.Units != 272 {
		t.Fatalf("Units = %d, want 272", got.Units)
	}
	if math.Abs(got.TotalCost-(2*8*18+1*8*6)) > 1e-9 {
		t.Fatalf("TotalCost = %v", got.TotalCost)
	}
}

func TestEstimateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CapacityInput)
		want   error
	}{
		{name: "bad period", mutate: func(in *CapacityInput) { in.Period = "mensual" }, want: ErrInvalidPeriod},
		{name: "zero workers", mutate: func(in *CapacityInput) { in.Workers = 0 }, want: ErrInvalidInput},
		{name: "zero minutes per unit", mutate: func(in *CapacityInput) { in.MinutesPerUnit = 0 }, want: ErrInvalidInput},
		{name: "eight day week", mutate: func(in *CapacityInput) { in.DaysPerWeek = 8 }, want: ErrInvalidInput},
		{name: "efficiency above 100", mutate: func(in *CapacityInput) { in.EfficiencyPercent = 120 }, want: ErrInvalidInput},
		{name: "negative wage", mutate: func(in *CapacityInput) { in.WagePerHour = -1 }, want: ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			if _, err := Estimate(in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
