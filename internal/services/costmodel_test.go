package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flight-route-service/internal/domain"
)

func TestCostModelFuelAndCO2(t *testing.T) {
	m := NewCostModel(domain.Aircraft{
		FuelEfficiencyKgPerKm: 2.8,
		CO2EmissionFactor:     3.16,
		CruiseSpeedKmh:        840,
	})

	fuel, co2 := m.FuelAndCO2(1000)
	assert.InDelta(t, 1000*2.8*1.15, fuel, 1e-9)
	assert.InDelta(t, fuel*3.16, co2, 1e-9)
}

func TestCostModelDefaultsFromSparseAircraft(t *testing.T) {
	m := NewCostModel(domain.Aircraft{})

	assert.Equal(t, domain.DefaultFuelEfficiencyKgPerKm, m.FuelEfficiencyKgPerKm)
	assert.Equal(t, domain.DefaultCO2Factor, m.CO2Factor)
	assert.Equal(t, domain.ReferenceCruiseSpeedKmh, m.CruiseSpeedKmh)
}

func TestCostModelUsesAircraftCruiseSpeed(t *testing.T) {
	m := NewCostModel(domain.Aircraft{CruiseSpeedKmh: 903})
	assert.InDelta(t, 1806.0/903, m.FlightTimeHours(1806), 1e-9)
}

func TestScoreMonotonicity(t *testing.T) {
	m := NewCostModel(domain.Aircraft{FuelEfficiencyKgPerKm: 2.8})

	base := m.Score(5000, 2000)
	assert.Greater(t, m.Score(6000, 2000), base, "score must grow with fuel")
	assert.Greater(t, m.Score(5000, 2500), base, "score must grow with distance")
	assert.InDelta(t, (0.6*5000+0.4*2000)/1000, base, 1e-9)
}

// The straight-line heuristic is admissible only while every edge's weighted
// cost stays at or above its raw distance. With convex weights and the 15%
// ground overhead this holds for all realistic efficiencies; a regression
// here means someone rescaled the cost or the heuristic.
func TestEdgeCostNeverBelowDistance(t *testing.T) {
	m := NewCostModel(domain.Aircraft{FuelEfficiencyKgPerKm: 2.8})

	for _, pref := range domain.Preferences {
		for _, d := range []float64{1, 50, 1112, 8000, 15000} {
			assert.GreaterOrEqual(t, m.EdgeCost(d, pref), d,
				"pref=%s distance=%v", pref, d)
		}
	}
}
