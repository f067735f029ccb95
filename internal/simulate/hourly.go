package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"energy-dashboard-backend/internal/model"
)

// unitPrice is the flat electricity tariff in currency per kWh.
const unitPrice = 0.12

// Generator synthesizes per-device hourly consumption curves. The random
// source is injected so tests can fix the seed; a mutex guards it because
// rand.Rand is not safe for the concurrent handlers that call it.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// HourlySeries returns 24 readings, one per hour "00:00".."23:00", modelling
// a diurnal load curve: a sinusoidal baseline with a night trough and an
// evening peak, plus independent per-hour noise. Every call draws fresh
// randomness; the series is a simulation, not a record, and is never cached.
func (g *Generator) HourlySeries() []model.HourlyReading {
	g.mu.Lock()
	defer g.mu.Unlock()

	series := make([]model.HourlyReading, 0, 24)
	for i := 0; i < 24; i++ {
		base := math.Sin(float64(i-6)*math.Pi/12)*2 + 3
		actual := math.Max(0, base+g.rng.Float64()*1.5)
		// Predicted is intentionally not floored and may dip below zero.
		predicted := actual + (g.rng.Float64()-0.5)*0.8
		cost := actual * unitPrice

		series = append(series, model.HourlyReading{
			Hour:      fmt.Sprintf("%02d:00", i),
			Actual:    round2(actual),
			Predicted: round2(predicted),
			Cost:      round3(cost),
		})
	}
	return series
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
