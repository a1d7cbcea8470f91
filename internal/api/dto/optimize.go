package dto

import "time"

type OptimizationRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	AircraftModel string `json:"aircraft_model"`
	Preference    string `json:"preference"`
}

type PathSegment struct {
	FromAirport string `json:"from_airport"`
	ToAirport   string `json:"to_airport"`
}

type OptimizationResponse struct {
	Origin             string        `json:"origin"`
	Destination        string        `json:"destination"`
	Waypoints          []string      `json:"waypoints"`
	PathSegments       []PathSegment `json:"path_segments"`
	TotalDistanceKm    float64       `json:"total_distance_km"`
	EstimatedFuelKg    float64       `json:"estimated_fuel_kg"`
	EstimatedCO2Kg     float64       `json:"estimated_co2_kg"`
	EstimatedCO2Tons   float64       `json:"estimated_co2_tons"`
	FlightTimeHours    float64       `json:"flight_time_hours"`
	AircraftModel      string        `json:"aircraft_model"`
	Preference         string        `json:"optimization_preference"`
	Score              float64       `json:"score"`
	CO2SavingsVsDirect *float64      `json:"co2_savings_vs_direct,omitempty"`
}

type AlternativeRoutesResponse struct {
	Routes       []OptimizationResponse `json:"routes"`
	TotalOptions int                    `json:"total_options"`
}

type HistoryEntry struct {
	ID          int       `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Waypoints   []string  `json:"waypoints"`
	DistanceKm  float64   `json:"distance_km"`
	CO2Kg       float64   `json:"co2_kg"`
	Algorithm   string    `json:"algorithm"`
	CreatedAt   time.Time `json:"created_at"`
}
