// Package analytics computes fleet-wide and per-device summary metrics.
// All functions are pure: they never mutate their inputs.
package analytics

import (
	"math"

	"energy-dashboard-backend/internal/model"
)

const (
	// unitPrice is the flat electricity tariff in currency per kWh.
	unitPrice = 0.12
	// carbonFactor converts kWh to kg of CO2.
	carbonFactor = 0.85
)

// Totals summarizes consumption across the whole device fleet.
type Totals struct {
	TotalConsumption  float64 `json:"totalConsumption"` // kWh
	TotalCost         float64 `json:"totalCost"`
	TotalCO2          float64 `json:"totalCO2"` // kg
	AverageEfficiency float64 `json:"averageEfficiency"`
}

// FleetTotals aggregates daily consumption, cost, carbon and mean efficiency
// over devices. AverageEfficiency is NaN for an empty fleet; callers must
// guard before formatting it.
func FleetTotals(devices []model.Device) Totals {
	var consumption float64
	var efficiencySum int
	for _, d := range devices {
		consumption += d.DailyUsage
		efficiencySum += d.Efficiency
	}

	avg := math.NaN()
	if len(devices) > 0 {
		avg = float64(efficiencySum) / float64(len(devices))
	}

	return Totals{
		TotalConsumption:  consumption,
		TotalCost:         consumption * unitPrice,
		TotalCO2:          consumption * carbonFactor,
		AverageEfficiency: avg,
	}
}

// DailyCost sums the cost of every reading in series.
func DailyCost(series []model.HourlyReading) float64 {
	var total float64
	for _, r := range series {
		total += r.Cost
	}
	return total
}

// PeakUsage returns the maximum actual reading in series.
func PeakUsage(series []model.HourlyReading) (float64, error) {
	if len(series) == 0 {
		return 0, model.ErrEmptySeries
	}
	peak := series[0].Actual
	for _, r := range series[1:] {
		if r.Actual > peak {
			peak = r.Actual
		}
	}
	return peak, nil
}

// AverageUsage returns the mean actual reading in series.
func AverageUsage(series []model.HourlyReading) (float64, error) {
	if len(series) == 0 {
		return 0, model.ErrEmptySeries
	}
	var sum float64
	for _, r := range series {
		sum += r.Actual
	}
	return sum / float64(len(series)), nil
}

// DeviceCO2 converts a device's daily consumption into kg of CO2.
func DeviceCO2(d model.Device) float64 {
	return d.DailyUsage * carbonFactor
}
