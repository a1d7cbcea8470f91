package ports

import (
	"context"

	"flight-route-service/internal/domain"
)

// Filters for airport catalog listings. Zero values mean "no filter".
type AirportFilter struct {
	Country string
	Search  string
	Skip    int
	Limit   int
}

// Port: a boundary for retrieving Airport entities from a data source.
type AirportRepository interface {
	// ListAirports returns airports matching the filter, ordered by IATA code.
	ListAirports(ctx context.Context, filter AirportFilter) ([]*domain.Airport, error)
	// GetAirport returns the airport with the given IATA code, or
	// domain-not-found via (nil, nil) when the code is unknown.
	GetAirport(ctx context.Context, iata string) (*domain.Airport, error)
	// AllAirports returns the full catalog snapshot used to build a
	// per-request route graph.
	AllAirports(ctx context.Context) ([]*domain.Airport, error)
}

// Filters for route listings. Zero values mean "no filter".
type RouteFilter struct {
	Origin      string
	Destination string
	Skip        int
	Limit       int
}

// Port: a boundary for retrieving scheduled routes from a data source.
type RouteRepository interface {
	// ListRoutes returns routes matching the filter.
	ListRoutes(ctx context.Context, filter RouteFilter) ([]*domain.Route, error)
	// AllRoutes returns the full route snapshot used to build a
	// per-request route graph.
	AllRoutes(ctx context.Context) ([]*domain.Route, error)
}

// Port: a boundary for retrieving aircraft performance profiles.
type AircraftRepository interface {
	// ListAircraft returns every known aircraft model.
	ListAircraft(ctx context.Context) ([]*domain.Aircraft, error)
	// GetAircraft returns the profile for a model name, or (nil, nil)
	// when the model is unknown.
	GetAircraft(ctx context.Context, model string) (*domain.Aircraft, error)
}
