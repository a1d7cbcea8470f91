package services

import "flight-route-service/internal/domain"

// Flat surcharge modelling fuel spent on takeoff, landing and taxi as 15%
// on top of cruise-proportional burn.
const groundOverheadFactor = 1.15

// CostModel converts leg distances into fuel, emission and time estimates
// for one aircraft profile. It is a pure value; all methods are
// deterministic functions of their inputs.
type CostModel struct {
	FuelEfficiencyKgPerKm float64
	CO2Factor             float64
	CruiseSpeedKmh        float64
}

// NewCostModel derives a cost model from an aircraft performance profile,
// falling back to fleet defaults for fields the record does not carry.
func NewCostModel(aircraft domain.Aircraft) CostModel {
	efficiency := aircraft.FuelEfficiencyKgPerKm
	if efficiency <= 0 {
		efficiency = domain.DefaultFuelEfficiencyKgPerKm
	}

	return CostModel{
		FuelEfficiencyKgPerKm: efficiency,
		CO2Factor:             aircraft.EffectiveCO2Factor(),
		CruiseSpeedKmh:        aircraft.EffectiveCruiseSpeedKmh(),
	}
}

// FuelAndCO2 estimates fuel burn and CO2 mass for a leg of the given length.
func (m CostModel) FuelAndCO2(distanceKm float64) (fuelKg, co2Kg float64) {
	fuelKg = distanceKm * m.FuelEfficiencyKgPerKm * groundOverheadFactor
	co2Kg = fuelKg * m.CO2Factor
	return fuelKg, co2Kg
}

// FlightTimeHours estimates cruise time for the given distance.
func (m CostModel) FlightTimeHours(distanceKm float64) float64 {
	return distanceKm / m.CruiseSpeedKmh
}

// Score collapses fuel and distance into the single ranking number shared by
// all searched paths (lower is better). Using one formula regardless of the
// preference that found a path keeps alternatives comparable.
func (m CostModel) Score(fuelKg, distanceKm float64) float64 {
	return (0.6*fuelKg + 0.4*distanceKm) / 1000
}

// EdgeCost returns the preference-weighted cost of traversing one leg:
// a convex combination of estimated fuel burn and raw distance.
func (m CostModel) EdgeCost(distanceKm float64, pref domain.Preference) float64 {
	fuelWeight, distanceWeight := pref.Weights()
	fuelKg, _ := m.FuelAndCO2(distanceKm)
	return fuelWeight*fuelKg + distanceWeight*distanceKm
}
