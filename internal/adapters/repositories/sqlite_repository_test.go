package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"flight-route-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func seedTestCatalog(t *testing.T, db *sql.DB) {
	t.Helper()

	seed := CatalogSeed{
		Airports: []AirportSeed{
			{IATA: "JFK", ICAO: "KJFK", Name: "John F Kennedy International", City: "New York", Country: "United States", Latitude: 40.6398, Longitude: -73.7789},
			{IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles International", City: "Los Angeles", Country: "United States", Latitude: 33.9425, Longitude: -118.408},
			{IATA: "LHR", ICAO: "EGLL", Name: "Heathrow", City: "London", Country: "United Kingdom", Latitude: 51.4706, Longitude: -0.4619},
		},
		Routes: []RouteSeed{
			{Origin: "JFK", Destination: "LAX", DistanceKm: 3974},
			{Origin: "JFK", Destination: "LHR", DistanceKm: 5540},
		},
		Aircraft: []AircraftSeed{
			{Model: "Airbus A320neo", Manufacturer: "Airbus", Capacity: 180, FuelEfficiency: 2.8, CruiseSpeedKmh: 840, MaxRangeKm: 6300, CO2EmissionFactor: 3.16},
		},
	}

	if err := SeedCatalog(db, seed); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func TestSqliteCatalogRepository(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	repo := NewSqliteCatalogRepository(db)
	ctx := context.Background()

	t.Run("get airport by code", func(t *testing.T) {
		a, err := repo.GetAirport(ctx, "jfk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a == nil || a.IATA != "JFK" {
			t.Fatalf("got %+v, want JFK", a)
		}
		if a.Coordinates.Lat == 0 || a.Coordinates.Lon == 0 {
			t.Fatal("coordinates not populated")
		}
	})

	t.Run("unknown airport is nil not error", func(t *testing.T) {
		a, err := repo.GetAirport(ctx, "ZZZ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != nil {
			t.Fatalf("got %+v, want nil", a)
		}
	})

	t.Run("list with country filter", func(t *testing.T) {
		airports, err := repo.ListAirports(ctx, ports.AirportFilter{Country: "United Kingdom", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(airports) != 1 || airports[0].IATA != "LHR" {
			t.Fatalf("got %d airports, want only LHR", len(airports))
		}
	})

	t.Run("list with search filter", func(t *testing.T) {
		airports, err := repo.ListAirports(ctx, ports.AirportFilter{Search: "Angeles", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(airports) != 1 || airports[0].IATA != "LAX" {
			t.Fatalf("search = %v, want only LAX", airports)
		}
	})

	t.Run("routes filtered by origin", func(t *testing.T) {
		routes, err := repo.ListRoutes(ctx, ports.RouteFilter{Origin: "JFK", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(routes) != 2 {
			t.Fatalf("got %d routes, want 2", len(routes))
		}
	})

	t.Run("aircraft lookup", func(t *testing.T) {
		a, err := repo.GetAircraft(ctx, "Airbus A320neo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a == nil || a.FuelEfficiencyKgPerKm != 2.8 {
			t.Fatalf("got %+v, want A320neo profile", a)
		}

		missing, err := repo.GetAircraft(ctx, "Concorde")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if missing != nil {
			t.Fatalf("got %+v, want nil for unknown model", missing)
		}
	})
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	seedTestCatalog(t, db)

	repo := NewSqliteCatalogRepository(db)
	airports, err := repo.AllAirports(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(airports) != 3 {
		t.Fatalf("got %d airports after double seed, want 3", len(airports))
	}
}

func TestSqliteHistoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSqliteHistoryRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := []ports.OptimizationRecord{
		{
			Origin: "JFK", Destination: "LAX",
			Waypoints:       []string{"JFK", "ORD", "LAX"},
			TotalDistanceKm: 4325.7, EstimatedFuelKg: 13928.8, EstimatedCO2Kg: 44015.0,
			TimeCostMinutes: 305.4, Score: 10.09, Algorithm: "A*",
			CreatedAt: base,
		},
		{
			Origin: "JFK", Destination: "LHR",
			Waypoints:       []string{"JFK", "LHR"},
			TotalDistanceKm: 5540, EstimatedFuelKg: 17838.8, EstimatedCO2Kg: 56370.6,
			TimeCostMinutes: 391.1, Score: 1.0, Algorithm: "A*",
			CreatedAt: base.Add(time.Hour),
		},
	}
	for _, rec := range records {
		if err := repo.SaveOptimization(ctx, rec); err != nil {
			t.Fatalf("save optimization: %v", err)
		}
	}

	got, err := repo.RecentOptimizations(ctx, 10)
	if err != nil {
		t.Fatalf("recent optimizations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Destination != "LHR" {
		t.Fatalf("newest record destination = %s, want LHR (newest first)", got[0].Destination)
	}
	if len(got[1].Waypoints) != 3 || got[1].Waypoints[1] != "ORD" {
		t.Fatalf("waypoints round-trip failed: %v", got[1].Waypoints)
	}

	limited, err := repo.RecentOptimizations(ctx, 1)
	if err != nil {
		t.Fatalf("recent optimizations limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d records with limit 1, want 1", len(limited))
	}
}
