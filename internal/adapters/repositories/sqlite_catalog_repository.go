package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
)

// SQLite-backed implementation of the airport, route and aircraft
// repository ports. One struct serves all three: the tables are written
// together at seed time and read together per optimization request.
type SqliteCatalogRepository struct{ DB *sql.DB }

func NewSqliteCatalogRepository(db *sql.DB) *SqliteCatalogRepository {
	return &SqliteCatalogRepository{DB: db}
}

const airportColumns = `id, iata_code, icao_code, name, city, country, latitude, longitude, altitude_feet`

func (s *SqliteCatalogRepository) ListAirports(
	ctx context.Context,
	filter ports.AirportFilter,
) (_ []*domain.Airport, err error) {
	defer obs.Time(ctx, "catalog.ListAirports")(&err)

	if s.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	query := `SELECT ` + airportColumns + ` FROM airports`
	conds := []string{}
	args := []any{}

	if filter.Country != "" {
		conds = append(conds, "country LIKE ?")
		args = append(args, "%"+filter.Country+"%")
	}
	if filter.Search != "" {
		conds = append(conds, "(iata_code LIKE ? OR name LIKE ? OR city LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY iata_code"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Skip)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list airports: query airports table: %w", err)
	}
	defer rows.Close()

	airports := make([]*domain.Airport, 0, 64)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, fmt.Errorf("list airports: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airports: row iteration: %w", err)
	}

	return airports, nil
}

func (s *SqliteCatalogRepository) GetAirport(ctx context.Context, iata string) (*domain.Airport, error) {
	if s.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx,
		`SELECT `+airportColumns+` FROM airports WHERE iata_code = ?;`,
		domain.NormalizeCode(iata),
	)

	a, err := scanAirport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get airport %q: %w", iata, err)
	}
	return a, nil
}

func (s *SqliteCatalogRepository) AllAirports(ctx context.Context) (_ []*domain.Airport, err error) {
	defer obs.Time(ctx, "catalog.AllAirports")(&err)
	return s.ListAirports(ctx, ports.AirportFilter{})
}

func (s *SqliteCatalogRepository) ListRoutes(
	ctx context.Context,
	filter ports.RouteFilter,
) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "catalog.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	query := `SELECT id, origin, destination, distance_km, avg_flight_time_minutes FROM flight_routes`
	conds := []string{}
	args := []any{}

	if filter.Origin != "" {
		conds = append(conds, "origin = ?")
		args = append(args, filter.Origin)
	}
	if filter.Destination != "" {
		conds = append(conds, "destination = ?")
		args = append(args, filter.Destination)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY origin, destination"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Skip)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: query flight_routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0, 128)
	for rows.Next() {
		var r domain.Route
		var avgTime sql.NullFloat64
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.DistanceKm, &avgTime); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		r.AvgFlightTimeMinutes = avgTime.Float64
		routes = append(routes, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func (s *SqliteCatalogRepository) AllRoutes(ctx context.Context) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "catalog.AllRoutes")(&err)
	return s.ListRoutes(ctx, ports.RouteFilter{})
}

func (s *SqliteCatalogRepository) ListAircraft(ctx context.Context) (_ []*domain.Aircraft, err error) {
	defer obs.Time(ctx, "catalog.ListAircraft")(&err)

	if s.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, model, manufacturer, capacity, fuel_efficiency_kg_per_km,
	       cruise_speed_kmh, max_range_km, co2_emission_factor
	FROM aircraft
	ORDER BY model;
	`)
	if err != nil {
		return nil, fmt.Errorf("list aircraft: query aircraft table: %w", err)
	}
	defer rows.Close()

	aircraft := make([]*domain.Aircraft, 0, 8)
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, fmt.Errorf("list aircraft: %w", err)
		}
		aircraft = append(aircraft, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list aircraft: row iteration: %w", err)
	}

	return aircraft, nil
}

func (s *SqliteCatalogRepository) GetAircraft(ctx context.Context, model string) (*domain.Aircraft, error) {
	if s.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	SELECT id, model, manufacturer, capacity, fuel_efficiency_kg_per_km,
	       cruise_speed_kmh, max_range_km, co2_emission_factor
	FROM aircraft
	WHERE model = ?;
	`, strings.TrimSpace(model))

	a, err := scanAircraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get aircraft %q: %w", model, err)
	}
	return a, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanAirport(row rowScanner) (*domain.Airport, error) {
	var a domain.Airport
	var icao, city, country sql.NullString
	var altitude sql.NullFloat64

	err := row.Scan(&a.ID, &a.IATA, &icao, &a.Name, &city, &country,
		&a.Coordinates.Lat, &a.Coordinates.Lon, &altitude)
	if err != nil {
		return nil, err
	}

	a.ICAO = icao.String
	a.City = city.String
	a.Country = country.String
	a.AltitudeFeet = altitude.Float64
	return &a, nil
}

func scanAircraft(row rowScanner) (*domain.Aircraft, error) {
	var a domain.Aircraft
	var manufacturer sql.NullString
	var capacity sql.NullInt64
	var cruise, maxRange, co2Factor sql.NullFloat64

	err := row.Scan(&a.ID, &a.Model, &manufacturer, &capacity,
		&a.FuelEfficiencyKgPerKm, &cruise, &maxRange, &co2Factor)
	if err != nil {
		return nil, err
	}

	a.Manufacturer = manufacturer.String
	a.Capacity = int(capacity.Int64)
	a.CruiseSpeedKmh = cruise.Float64
	a.MaxRangeKm = maxRange.Float64
	a.CO2EmissionFactor = co2Factor.Float64
	return &a, nil
}
