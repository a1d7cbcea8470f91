package domain

import "strings"

// Represents an optimized flight path between two airports.
// A FlightPath is the output of the optimization engine and is immutable
// planning data: an ordered waypoint sequence plus aggregate distance,
// fuel, emission and time estimates. Lower Score is better.
type FlightPath struct {
	Waypoints       []string
	TotalDistanceKm float64
	EstimatedFuelKg float64
	EstimatedCO2Kg  float64
	FlightTimeHours float64
	Score           float64
}

// WaypointKey returns the waypoint sequence as a single comparable string.
// Two paths with the same key are the same routing option regardless of
// which preference discovered them.
func (p FlightPath) WaypointKey() string {
	return strings.Join(p.Waypoints, ",")
}

// Direct reports whether the path is a two-waypoint direct leg.
func (p FlightPath) Direct() bool { return len(p.Waypoints) == 2 }
