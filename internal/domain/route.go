package domain

// Represents a directed scheduled route between two airports.
// Distance is the great-circle length of the leg in kilometers, computed
// at ingestion time and treated as the edge weight during optimization.
type Route struct {
	ID                   int
	Origin               string
	Destination          string
	DistanceKm           float64
	AvgFlightTimeMinutes float64
}
