package simulate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlySeries_Shape(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	series := g.HourlySeries()
	require.Len(t, series, 24)

	for i, r := range series {
		assert.Equal(t, fmt.Sprintf("%02d:00", i), r.Hour)
		assert.GreaterOrEqual(t, r.Actual, 0.0, "actual must never be negative")
		assert.GreaterOrEqual(t, r.Cost, 0.0)
		assert.InDelta(t, r.Actual*0.12, r.Cost, 0.0005, "cost must be actual at the flat tariff")
	}
}

func TestHourlySeries_FreshPerCall(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))

	first := g.HourlySeries()
	second := g.HourlySeries()

	// Each call is a fresh simulation, so two successive series should differ
	// in at least one hour.
	assert.NotEqual(t, first, second)
}

func TestHourlySeries_DeterministicForFixedSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(7))).HourlySeries()
	b := NewGenerator(rand.New(rand.NewSource(7))).HourlySeries()

	assert.Equal(t, a, b)
}

func TestHourlySeries_DiurnalTendency(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))

	// Averaged over many runs the evening values must sit well above the
	// night trough; individual hours are noisy so only the tendency is
	// asserted.
	var night, evening float64
	const runs = 200
	for i := 0; i < runs; i++ {
		s := g.HourlySeries()
		night += s[0].Actual
		evening += s[18].Actual
	}
	assert.Greater(t, evening/runs, night/runs+2.0)
}

func TestHourlySeries_Rounding(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(9)))

	for _, r := range g.HourlySeries() {
		assert.InDelta(t, r.Actual, float64(int(r.Actual*100+0.5))/100, 1e-9)
		assert.InDelta(t, r.Cost, float64(int(r.Cost*1000+0.5))/1000, 1e-9)
	}
}
