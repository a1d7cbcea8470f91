package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

// OpenFlights publishes its catalog as headerless CSV with \N for nulls.
const (
	DefaultAirportsURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat"
	DefaultRoutesURL   = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/routes.dat"

	nullField = `\N`
)

// Collector downloads and normalizes the OpenFlights airport and route
// catalog. It keeps only IATA-coded airports and zero-stop routes, and
// enriches each route with its great-circle distance so the optimizer
// never needs to re-derive edge weights.
type Collector struct {
	client      *http.Client
	airportsURL string
	routesURL   string
}

func NewCollector() *Collector {
	return &Collector{
		client:      &http.Client{Timeout: 60 * time.Second},
		airportsURL: DefaultAirportsURL,
		routesURL:   DefaultRoutesURL,
	}
}

// NewCollectorWithURLs overrides the source URLs, mainly for tests and mirrors.
func NewCollectorWithURLs(airportsURL, routesURL string) *Collector {
	c := NewCollector()
	c.airportsURL = airportsURL
	c.routesURL = routesURL
	return c
}

// FetchAirports downloads and parses the airport catalog.
func (c *Collector) FetchAirports(ctx context.Context) (_ []*domain.Airport, err error) {
	defer obs.Time(ctx, "ingest.FetchAirports")(&err)

	body, err := c.fetch(ctx, c.airportsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch airports: %w", err)
	}
	defer body.Close()

	airports, err := ParseAirports(body)
	if err != nil {
		return nil, fmt.Errorf("fetch airports: %w", err)
	}
	return airports, nil
}

// FetchRoutes downloads and parses the route catalog, resolving distances
// against the supplied airport snapshot. Routes touching airports outside
// the snapshot are dropped.
func (c *Collector) FetchRoutes(ctx context.Context, airports []*domain.Airport) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "ingest.FetchRoutes")(&err)

	body, err := c.fetch(ctx, c.routesURL)
	if err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}
	defer body.Close()

	routes, err := ParseRoutes(body, airports)
	if err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}
	return routes, nil
}

func (c *Collector) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", url, err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %q: %w", url, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("GET %q: unexpected status %d", url, res.StatusCode)
	}

	return res.Body, nil
}

// ParseAirports reads the OpenFlights airports.dat format.
// Record layout: id, name, city, country, iata, icao, lat, lon, altitude,
// tz offset, dst, tz, type, source.
func ParseAirports(r io.Reader) ([]*domain.Airport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	airports := make([]*domain.Airport, 0, 4096)
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse airports: line %d: %w", line+1, err)
		}
		line++

		if len(record) < 13 {
			continue
		}
		// Only rows tagged as airports; the feed also lists stations
		// and ferry ports.
		if len(record) >= 13 && record[12] != "airport" {
			continue
		}

		iata := domain.NormalizeCode(field(record[4]))
		if len(iata) != 3 {
			continue
		}

		lat, latErr := strconv.ParseFloat(field(record[6]), 64)
		lon, lonErr := strconv.ParseFloat(field(record[7]), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		altitude, _ := strconv.ParseFloat(field(record[8]), 64)

		airports = append(airports, &domain.Airport{
			IATA:         iata,
			ICAO:         domain.NormalizeCode(field(record[5])),
			Name:         field(record[1]),
			City:         field(record[2]),
			Country:      field(record[3]),
			Coordinates:  domain.Coordinates{Lat: lat, Lon: lon},
			AltitudeFeet: altitude,
		})
	}

	return airports, nil
}

// ParseRoutes reads the OpenFlights routes.dat format and enriches each
// usable route with its great-circle distance.
// Record layout: airline, airline id, source, source id, destination,
// destination id, codeshare, stops, equipment.
func ParseRoutes(r io.Reader, airports []*domain.Airport) ([]*domain.Route, error) {
	lookup := make(map[string]domain.Coordinates, len(airports))
	for _, a := range airports {
		lookup[a.IATA] = a.Coordinates
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	routes := make([]*domain.Route, 0, 8192)
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse routes: line %d: %w", line+1, err)
		}
		line++

		if len(record) < 8 {
			continue
		}
		// Multi-stop listings are itineraries, not edges.
		if field(record[7]) != "0" {
			continue
		}

		origin := domain.NormalizeCode(field(record[2]))
		destination := domain.NormalizeCode(field(record[4]))
		if len(origin) != 3 || len(destination) != 3 || origin == destination {
			continue
		}

		from, okFrom := lookup[origin]
		to, okTo := lookup[destination]
		if !okFrom || !okTo {
			continue
		}

		routes = append(routes, &domain.Route{
			Origin:      origin,
			Destination: destination,
			DistanceKm:  from.GreatCircleKm(to),
		})
	}

	return routes, nil
}

func field(v string) string {
	if v == nullField {
		return ""
	}
	return v
}

// SampleAircraft returns the built-in fleet profiles used to seed a fresh
// database. Efficiency figures are public fleet-average approximations.
func SampleAircraft() []*domain.Aircraft {
	return []*domain.Aircraft{
		{
			Model:                 "Boeing 737-800",
			Manufacturer:          "Boeing",
			Capacity:              189,
			FuelEfficiencyKgPerKm: 3.5,
			CruiseSpeedKmh:        842,
			MaxRangeKm:            5765,
			CO2EmissionFactor:     domain.DefaultCO2Factor,
		},
		{
			Model:                 "Airbus A320neo",
			Manufacturer:          "Airbus",
			Capacity:              180,
			FuelEfficiencyKgPerKm: 2.8,
			CruiseSpeedKmh:        840,
			MaxRangeKm:            6300,
			CO2EmissionFactor:     domain.DefaultCO2Factor,
		},
		{
			Model:                 "Boeing 787-9",
			Manufacturer:          "Boeing",
			Capacity:              296,
			FuelEfficiencyKgPerKm: 2.3,
			CruiseSpeedKmh:        903,
			MaxRangeKm:            14140,
			CO2EmissionFactor:     domain.DefaultCO2Factor,
		},
	}
}
