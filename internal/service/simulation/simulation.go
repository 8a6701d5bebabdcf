// Package simulation estimates production capacity and operating cost for a
// given crew, equipment and schedule. The model is cycle based: every
// station turns out its full capacity once per cycle, and a cycle lasts the
// unit production time plus its prep time.
package simulation

import (
	"errors"
	"math"
)

// Simulation periods.
const (
	PeriodDaily  = "diario"
	PeriodWeekly = "semanal"
)

var (
	ErrInvalidPeriod = errors.New("period must be diario or semanal")
	ErrInvalidInput  = errors.New("simulation input out of range")
)

// CapacityInput describes the scenario to simulate.
type CapacityInput struct {
	Workers                  int     `json:"workers"`
	Stations                 int     `json:"stations"`
	CapacityPerStation       int     `json:"capacity_per_station"`
	MinutesPerUnit           float64 `json:"minutes_per_unit"`
	PrepMinutesPerUnit       float64 `json:"prep_minutes_per_unit"`
	DailyHours               float64 `json:"daily_hours"`
	DaysPerWeek              int     `json:"days_per_week"`
	EfficiencyPercent        float64 `json:"efficiency_percent"`
	WagePerHour              float64 `json:"wage_per_hour"`
	EnergyCostPerStationHour float64 `json:"energy_cost_per_station_hour"`
	Period                   string  `json:"period"`
}

// CapacityResult is the projected output and cost for the period.
type CapacityResult struct {
	Period     string  `json:"period"`
	TotalHours float64 `json:"total_hours"`
	Units      int     `json:"units"`
	LaborCost  float64 `json:"labor_cost"`
	EnergyCost float64 `json:"energy_cost"`
	TotalCost  float64 `json:"total_cost"`
}

func (in CapacityInput) validate() error {
	switch in.Period {
	case PeriodDaily, PeriodWeekly:
	default:
		return ErrInvalidPeriod
	}

	if in.Workers < 1 || in.Stations < 1 || in.CapacityPerStation < 1 {
		return ErrInvalidInput
	}
	if in.MinutesPerUnit <= 0 || in.PrepMinutesPerUnit < 0 || in.DailyHours <= 0 {
		return ErrInvalidInput
	}
	if in.Period == PeriodWeekly && (in.DaysPerWeek < 1 || in.DaysPerWeek > 7) {
		return ErrInvalidInput
	}
	if in.EfficiencyPercent <= 0 || in.EfficiencyPercent > 100 {
		return ErrInvalidInput
	}
	if in.WagePerHour < 0 || in.EnergyCostPerStationHour < 0 {
		return ErrInvalidInput
	}
	return nil
}

// Estimate runs the capacity model.
func Estimate(in CapacityInput) (CapacityResult, error) {
	if err := in.validate(); err != nil {
		return CapacityResult{}, err
	}

	totalHours := in.DailyHours
	if in.Period == PeriodWeekly {
		totalHours = in.DailyHours * float64(in.DaysPerWeek)
	}

	effectiveMinutes := totalHours * 60 * in.EfficiencyPercent / 100
	cycleMinutes := in.MinutesPerUnit + in.PrepMinutesPerUnit
	cycles := int(math.Floor(effectiveMinutes / cycleMinutes))

	laborCost := float64(in.Workers) * totalHours * in.WagePerHour
	energyCost := float64(in.Stations) * totalHours * in.EnergyCostPerStationHour

	return CapacityResult{
		Period:     in.Period,
		TotalHours: totalHours,
		Units:      cycles * in.Stations * in.CapacityPerStation,
		LaborCost:  laborCost,
		EnergyCost: energyCost,
		TotalCost:  laborCost + energyCost,
	}, nil
}
