package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"flight-route-service/internal/domain"
)

type AirportSeed struct {
	IATA         string  `json:"iata"`
	ICAO         string  `json:"icao"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AltitudeFeet float64 `json:"altitude_feet"`
}

type RouteSeed struct {
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	DistanceKm           float64 `json:"distance_km"`
	AvgFlightTimeMinutes float64 `json:"avg_flight_time_minutes"`
}

type AircraftSeed struct {
	Model             string  `json:"model"`
	Manufacturer      string  `json:"manufacturer"`
	Capacity          int     `json:"capacity"`
	FuelEfficiency    float64 `json:"fuel_efficiency_kg_per_km"`
	CruiseSpeedKmh    float64 `json:"cruise_speed_kmh"`
	MaxRangeKm        float64 `json:"max_range_km"`
	CO2EmissionFactor float64 `json:"co2_emission_factor"`
}

type CatalogSeed struct {
	Airports []AirportSeed  `json:"airports"`
	Routes   []RouteSeed    `json:"routes"`
	Aircraft []AircraftSeed `json:"aircraft"`
}

// SeedFromJSON populates the catalog tables from a JSON seed file.
// Rows upsert on their natural keys, so re-seeding is idempotent.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	return SeedCatalog(db, seed)
}

// SeedCatalog writes an in-memory catalog snapshot into the database.
func SeedCatalog(db *sql.DB, seed CatalogSeed) error {
	for i, a := range seed.Airports {
		if domain.NormalizeCode(a.IATA) == "" {
			return fmt.Errorf("seed catalog: airport at index %d: iata cannot be empty", i)
		}
	}
	for i, r := range seed.Routes {
		if domain.NormalizeCode(r.Origin) == "" || domain.NormalizeCode(r.Destination) == "" {
			return fmt.Errorf("seed catalog: route at index %d: origin and destination required", i)
		}
		if r.DistanceKm < 0 {
			return fmt.Errorf("seed catalog: route at index %d: negative distance", i)
		}
	}
	for i, a := range seed.Aircraft {
		if strings.TrimSpace(a.Model) == "" {
			return fmt.Errorf("seed catalog: aircraft at index %d: model cannot be empty", i)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	airportStmt, err := tx.Prepare(`
	INSERT INTO airports (iata_code, icao_code, name, city, country, latitude, longitude, altitude_feet)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (iata_code) DO UPDATE SET
		icao_code = excluded.icao_code,
		name = excluded.name,
		city = excluded.city,
		country = excluded.country,
		latitude = excluded.latitude,
		longitude = excluded.longitude,
		altitude_feet = excluded.altitude_feet;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare airport insert: %w", err)
	}
	defer airportStmt.Close()

	for _, a := range seed.Airports {
		if _, err := airportStmt.Exec(
			domain.NormalizeCode(a.IATA), strings.ToUpper(strings.TrimSpace(a.ICAO)),
			a.Name, a.City, a.Country, a.Latitude, a.Longitude, a.AltitudeFeet,
		); err != nil {
			return fmt.Errorf("seed catalog: insert airport %s: %w", a.IATA, err)
		}
	}

	routeStmt, err := tx.Prepare(`
	INSERT INTO flight_routes (origin, destination, distance_km, avg_flight_time_minutes)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (origin, destination) DO UPDATE SET
		distance_km = excluded.distance_km,
		avg_flight_time_minutes = excluded.avg_flight_time_minutes;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range seed.Routes {
		if _, err := routeStmt.Exec(
			domain.NormalizeCode(r.Origin), domain.NormalizeCode(r.Destination),
			r.DistanceKm, r.AvgFlightTimeMinutes,
		); err != nil {
			return fmt.Errorf("seed catalog: insert route %s->%s: %w", r.Origin, r.Destination, err)
		}
	}

	aircraftStmt, err := tx.Prepare(`
	INSERT INTO aircraft (model, manufacturer, capacity, fuel_efficiency_kg_per_km, cruise_speed_kmh, max_range_km, co2_emission_factor)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (model) DO UPDATE SET
		manufacturer = excluded.manufacturer,
		capacity = excluded.capacity,
		fuel_efficiency_kg_per_km = excluded.fuel_efficiency_kg_per_km,
		cruise_speed_kmh = excluded.cruise_speed_kmh,
		max_range_km = excluded.max_range_km,
		co2_emission_factor = excluded.co2_emission_factor;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare aircraft insert: %w", err)
	}
	defer aircraftStmt.Close()

	for _, a := range seed.Aircraft {
		if _, err := aircraftStmt.Exec(
			a.Model, a.Manufacturer, a.Capacity, a.FuelEfficiency,
			a.CruiseSpeedKmh, a.MaxRangeKm, a.CO2EmissionFactor,
		); err != nil {
			return fmt.Errorf("seed catalog: insert aircraft %q: %w", a.Model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
