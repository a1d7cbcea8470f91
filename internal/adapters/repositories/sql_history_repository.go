package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
)

// SQLHistoryRepository is the Postgres implementation of the
// HistoryRepository port, used when the service runs against a shared
// catalog database instead of the embedded SQLite file.
type SQLHistoryRepository struct{ DB *sql.DB }

func NewSQLHistoryRepository(db *sql.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{DB: db}
}

// InitPostgresSchema creates the optimization history table.
// The catalog tables are owned by an external migration in this mode.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS optimized_paths (
		id SERIAL PRIMARY KEY,
		origin_iata TEXT NOT NULL,
		destination_iata TEXT NOT NULL,
		waypoints TEXT NOT NULL,
		total_distance_km DOUBLE PRECISION NOT NULL,
		estimated_fuel_kg DOUBLE PRECISION NOT NULL,
		estimated_co2_kg DOUBLE PRECISION NOT NULL,
		time_cost_minutes DOUBLE PRECISION NOT NULL,
		optimization_score DOUBLE PRECISION,
		algorithm_used TEXT,
		created_at TIMESTAMPTZ NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("init postgres schema: create optimized_paths: %w", err)
	}

	return nil
}

func (s *SQLHistoryRepository) SaveOptimization(ctx context.Context, rec ports.OptimizationRecord) (err error) {
	defer obs.Time(ctx, "history.SaveOptimization")(&err)

	if s.DB == nil {
		return errors.New("history repository: DB is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO optimized_paths (
		origin_iata, destination_iata, waypoints,
		total_distance_km, estimated_fuel_kg, estimated_co2_kg,
		time_cost_minutes, optimization_score, algorithm_used, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		rec.Origin, rec.Destination, strings.Join(rec.Waypoints, ","),
		rec.TotalDistanceKm, rec.EstimatedFuelKg, rec.EstimatedCO2Kg,
		rec.TimeCostMinutes, rec.Score, rec.Algorithm, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save optimization: insert optimized_paths: %w", err)
	}

	return nil
}

func (s *SQLHistoryRepository) RecentOptimizations(ctx context.Context, limit int) (_ []ports.OptimizationRecord, err error) {
	defer obs.Time(ctx, "history.RecentOptimizations")(&err)

	if s.DB == nil {
		return nil, errors.New("history repository: DB is nil")
	}
	if limit < 1 {
		return []ports.OptimizationRecord{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, origin_iata, destination_iata, waypoints,
	       total_distance_km, estimated_fuel_kg, estimated_co2_kg,
	       time_cost_minutes, optimization_score, algorithm_used, created_at
	FROM optimized_paths
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent optimizations: query optimized_paths: %w", err)
	}
	defer rows.Close()

	return scanOptimizationRows(rows)
}
