package dto

type RouteResponse struct {
	ID                int     `json:"id"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DistanceKm        float64 `json:"distance_km"`
	FlightTimeMinutes float64 `json:"flight_time_minutes,omitempty"`
}

type AircraftResponse struct {
	Model          string  `json:"model"`
	Manufacturer   string  `json:"manufacturer"`
	Capacity       int     `json:"capacity"`
	FuelEfficiency float64 `json:"fuel_efficiency"`
	CruiseSpeed    float64 `json:"cruise_speed"`
	MaxRange       float64 `json:"max_range"`
}

type EmissionRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	AircraftModel string `json:"aircraft_model"`
}

type EmissionResponse struct {
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DistanceKm        float64 `json:"distance_km"`
	AircraftModel     string  `json:"aircraft_model"`
	FuelConsumptionKg float64 `json:"fuel_consumption_kg"`
	CO2EmissionsKg    float64 `json:"co2_emissions_kg"`
	CO2EmissionsTons  float64 `json:"co2_emissions_tons"`
	FlightTimeHours   float64 `json:"flight_time_hours"`
	Passengers        int     `json:"passengers"`
	CO2PerPassengerKg float64 `json:"co2_per_passenger_kg"`
}
