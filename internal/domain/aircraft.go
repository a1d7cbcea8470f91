package domain

// Combustion stoichiometry of jet fuel, kg CO2 per kg burned.
const DefaultCO2Factor = 3.16

// Cruise speed used for time estimates when an aircraft record does not
// carry its own, km/h.
const ReferenceCruiseSpeedKmh = 850.0

// Fuel-efficiency of the default fleet aircraft (A320neo), kg per km.
const DefaultFuelEfficiencyKgPerKm = 2.8

// Represents an aircraft model and its physical performance profile.
type Aircraft struct {
	ID                    int
	Model                 string
	Manufacturer          string
	Capacity              int
	FuelEfficiencyKgPerKm float64
	CruiseSpeedKmh        float64
	MaxRangeKm            float64
	CO2EmissionFactor     float64
}

// EffectiveCruiseSpeedKmh returns the per-model cruise speed, or the fixed
// reference speed when the record does not carry one.
func (a Aircraft) EffectiveCruiseSpeedKmh() float64 {
	if a.CruiseSpeedKmh > 0 {
		return a.CruiseSpeedKmh
	}
	return ReferenceCruiseSpeedKmh
}

// EffectiveCO2Factor returns the per-model emission factor, or the
// stoichiometric default when the record does not carry one.
func (a Aircraft) EffectiveCO2Factor() float64 {
	if a.CO2EmissionFactor > 0 {
		return a.CO2EmissionFactor
	}
	return DefaultCO2Factor
}
