package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"

	"flight-route-service/internal/adapters/ingest"
	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/config"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/db"
)

// dbtool downloads the OpenFlights catalog and seeds the service database.
// Run it once before the first server start, and again to refresh the catalog.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")

	sqlite, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlite.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqlite); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	collector := ingest.NewCollector()

	log.Println("Fetching OpenFlights airports...")
	airports, err := collector.FetchAirports(ctx)
	if err != nil {
		log.Fatalf("fetch airports failed: %v", err)
	}
	log.Printf("Fetched airports count=%d", len(airports))

	log.Println("Fetching OpenFlights routes...")
	routes, err := collector.FetchRoutes(ctx, airports)
	if err != nil {
		log.Fatalf("fetch routes failed: %v", err)
	}
	log.Printf("Fetched routes count=%d", len(routes))

	if err := seedCatalog(sqlite, airports, routes); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func seedCatalog(sqlite *sql.DB, airports []*domain.Airport, routes []*domain.Route) error {
	seed := repositories.CatalogSeed{
		Airports: make([]repositories.AirportSeed, 0, len(airports)),
		Routes:   make([]repositories.RouteSeed, 0, len(routes)),
	}

	for _, a := range airports {
		seed.Airports = append(seed.Airports, repositories.AirportSeed{
			IATA:         a.IATA,
			ICAO:         a.ICAO,
			Name:         a.Name,
			City:         a.City,
			Country:      a.Country,
			Latitude:     a.Coordinates.Lat,
			Longitude:    a.Coordinates.Lon,
			AltitudeFeet: a.AltitudeFeet,
		})
	}

	for _, r := range routes {
		seed.Routes = append(seed.Routes, repositories.RouteSeed{
			Origin:               r.Origin,
			Destination:          r.Destination,
			DistanceKm:           r.DistanceKm,
			AvgFlightTimeMinutes: r.DistanceKm / domain.ReferenceCruiseSpeedKmh * 60,
		})
	}

	for _, a := range ingest.SampleAircraft() {
		seed.Aircraft = append(seed.Aircraft, repositories.AircraftSeed{
			Model:             a.Model,
			Manufacturer:      a.Manufacturer,
			Capacity:          a.Capacity,
			FuelEfficiency:    a.FuelEfficiencyKgPerKm,
			CruiseSpeedKmh:    a.CruiseSpeedKmh,
			MaxRangeKm:        a.MaxRangeKm,
			CO2EmissionFactor: a.CO2EmissionFactor,
		})
	}

	log.Println("Seeding database...")
	return repositories.SeedCatalog(sqlite, seed)
}
