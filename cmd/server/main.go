package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"flight-route-service/internal/adapters/cache"
	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/api"
	"flight-route-service/internal/config"
	"flight-route-service/internal/platform/db"
	"flight-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/catalog.json")
	port := config.Get("PORT", "8080")
	defaultAircraft := config.Get("DEFAULT_AIRCRAFT", "Airbus A320neo")

	sqlite, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlite.Close()

	// Initialize schema and seed the catalog on startup for local runs.
	// A missing seed file is fine when dbtool already populated the catalog.
	if err := initAndSeed(sqlite, seedPath); err != nil {
		log.Fatal(err)
	}

	catalog := repositories.NewSqliteCatalogRepository(sqlite)
	history, closeHistory, err := buildHistory(sqlite)
	if err != nil {
		log.Fatal(err)
	}
	if closeHistory != nil {
		defer closeHistory()
	}

	deps := api.Deps{
		Airports:        catalog,
		Routes:          catalog,
		Aircraft:        catalog,
		History:         history,
		DefaultAircraft: defaultAircraft,
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		pathCache, err := buildPathCache(addr)
		if err != nil {
			// The cache is an optimization; the service still serves
			// every request without it.
			log.Printf("Redis path cache disabled: %v", err)
		} else {
			defer pathCache.Close()
			deps.Cache = pathCache
			log.Printf("Redis path cache enabled addr=%s", addr)
		}
	}

	router := api.NewRouter(deps)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(sqlite *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(sqlite); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("Seed file not found, skipping seed path=%s", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(sqlite, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// buildHistory prefers a shared Postgres history when DATABASE_URL is set
// and falls back to the embedded SQLite database otherwise.
func buildHistory(sqlite *sql.DB) (ports.HistoryRepository, func() error, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return repositories.NewSqliteHistoryRepository(sqlite), nil, nil
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("build history: %w", err)
	}
	if err := repositories.InitPostgresSchema(pg); err != nil {
		pg.Close()
		return nil, nil, fmt.Errorf("build history: %w", err)
	}

	log.Println("Optimization history backed by Postgres")
	return repositories.NewSQLHistoryRepository(pg), pg.Close, nil
}

func buildPathCache(addr string) (*cache.RedisPathCache, error) {
	ttl := 15 * time.Minute
	if raw := os.Getenv("CACHE_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 1 {
			return nil, fmt.Errorf("invalid CACHE_TTL_MINUTES %q", raw)
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	pathCache, err := cache.NewRedisPathCache(addr, ttl)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pathCache.Ping(ctx); err != nil {
		pathCache.Close()
		return nil, err
	}

	return pathCache, nil
}
