package domain

import "strings"

// Represents a single airport known to the system.
// Identity is the IATA code (3 letters, uppercase); coordinates are
// WGS84-style degrees taken from the catalog snapshot. Airports are
// immutable for the lifetime of one optimization request.
type Airport struct {
	ID           int
	IATA         string
	ICAO         string
	Name         string
	City         string
	Country      string
	Coordinates  Coordinates
	AltitudeFeet float64
}

// NormalizeCode canonicalizes an airport code for lookups and cache keys.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
