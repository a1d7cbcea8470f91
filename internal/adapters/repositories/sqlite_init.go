package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema initializes the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAirportsQuery := `
	CREATE TABLE IF NOT EXISTS airports (
		id INTEGER PRIMARY KEY,
		iata_code TEXT NOT NULL UNIQUE,
		icao_code TEXT,
		name TEXT NOT NULL,
		city TEXT,
		country TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		altitude_feet REAL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS flight_routes (
		id INTEGER PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km REAL NOT NULL,
		avg_flight_time_minutes REAL,
		UNIQUE (origin, destination)
	);
	`

	createAircraftQuery := `
	CREATE TABLE IF NOT EXISTS aircraft (
		id INTEGER PRIMARY KEY,
		model TEXT NOT NULL UNIQUE,
		manufacturer TEXT,
		capacity INTEGER,
		fuel_efficiency_kg_per_km REAL NOT NULL,
		cruise_speed_kmh REAL,
		max_range_km REAL,
		co2_emission_factor REAL
	);
	`

	createHistoryQuery := `
	CREATE TABLE IF NOT EXISTS optimized_paths (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin_iata TEXT NOT NULL,
		destination_iata TEXT NOT NULL,
		waypoints TEXT NOT NULL,
		total_distance_km REAL NOT NULL,
		estimated_fuel_kg REAL NOT NULL,
		estimated_co2_kg REAL NOT NULL,
		time_cost_minutes REAL NOT NULL,
		optimization_score REAL,
		algorithm_used TEXT,
		created_at TIMESTAMP NOT NULL
	);
	`

	createIndexesQuery := `
	CREATE INDEX IF NOT EXISTS idx_flight_routes_origin ON flight_routes(origin);
	CREATE INDEX IF NOT EXISTS idx_optimized_paths_created_at ON optimized_paths(created_at);
	`

	statements := []string{
		createAirportsQuery,
		createRoutesQuery,
		createAircraftQuery,
		createHistoryQuery,
		createIndexesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
