package domain

import "math"

// Mean Earth radius in kilometers used by the great-circle computation.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// GreatCircleKm returns the haversine distance to other in kilometers.
// Inputs are taken as-is; out-of-range coordinates propagate garbage-out.
func (c Coordinates) GreatCircleKm(other Coordinates) float64 {
	dLat := degToRad(other.Lat - c.Lat)
	dLon := degToRad(other.Lon - c.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(c.Lat))*math.Cos(degToRad(other.Lat))*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
