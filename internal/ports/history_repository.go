package ports

import (
	"context"
	"time"

	"flight-route-service/internal/domain"
)

// A persisted record of one optimization query and its result.
type OptimizationRecord struct {
	ID              int
	Origin          string
	Destination     string
	Waypoints       []string
	TotalDistanceKm float64
	EstimatedFuelKg float64
	EstimatedCO2Kg  float64
	TimeCostMinutes float64
	Score           float64
	Algorithm       string
	CreatedAt       time.Time
}

// RecordFromPath builds a history record for a computed flight path.
func RecordFromPath(origin, destination, algorithm string, path domain.FlightPath, at time.Time) OptimizationRecord {
	return OptimizationRecord{
		Origin:          origin,
		Destination:     destination,
		Waypoints:       path.Waypoints,
		TotalDistanceKm: path.TotalDistanceKm,
		EstimatedFuelKg: path.EstimatedFuelKg,
		EstimatedCO2Kg:  path.EstimatedCO2Kg,
		TimeCostMinutes: path.FlightTimeHours * 60,
		Score:           path.Score,
		Algorithm:       algorithm,
		CreatedAt:       at,
	}
}

// Port: a boundary for persisting and querying past optimization results.
type HistoryRepository interface {
	// SaveOptimization appends one optimization record.
	SaveOptimization(ctx context.Context, rec OptimizationRecord) error
	// RecentOptimizations returns up to limit records, newest first.
	RecentOptimizations(ctx context.Context, limit int) ([]OptimizationRecord, error)
}
