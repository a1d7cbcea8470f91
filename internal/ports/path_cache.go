package ports

import (
	"context"

	"flight-route-service/internal/domain"
)

// Port: an optional cache for computed flight paths keyed by query shape.
// A miss is (zero value, false, nil); cache failures surface as errors so
// callers can decide whether to degrade to recomputation.
type PathCache interface {
	GetPath(ctx context.Context, key string) (domain.FlightPath, bool, error)
	PutPath(ctx context.Context, key string, path domain.FlightPath) error
}
