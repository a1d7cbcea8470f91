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

// SQLite-backed implementation of the HistoryRepository port.
type SqliteHistoryRepository struct{ DB *sql.DB }

func NewSqliteHistoryRepository(db *sql.DB) *SqliteHistoryRepository {
	return &SqliteHistoryRepository{DB: db}
}

func (s *SqliteHistoryRepository) SaveOptimization(ctx context.Context, rec ports.OptimizationRecord) (err error) {
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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
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

func (s *SqliteHistoryRepository) RecentOptimizations(ctx context.Context, limit int) (_ []ports.OptimizationRecord, err error) {
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
	LIMIT ?;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent optimizations: query optimized_paths: %w", err)
	}
	defer rows.Close()

	return scanOptimizationRows(rows)
}

func scanOptimizationRows(rows *sql.Rows) ([]ports.OptimizationRecord, error) {
	records := make([]ports.OptimizationRecord, 0, 16)
	for rows.Next() {
		var rec ports.OptimizationRecord
		var waypoints string
		var score sql.NullFloat64
		var algorithm sql.NullString

		err := rows.Scan(&rec.ID, &rec.Origin, &rec.Destination, &waypoints,
			&rec.TotalDistanceKm, &rec.EstimatedFuelKg, &rec.EstimatedCO2Kg,
			&rec.TimeCostMinutes, &score, &algorithm, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("recent optimizations: scan row: %w", err)
		}

		rec.Waypoints = strings.Split(waypoints, ",")
		rec.Score = score.Float64
		rec.Algorithm = algorithm.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent optimizations: row iteration: %w", err)
	}

	return records, nil
}
