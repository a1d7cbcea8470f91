package services

import (
	"errors"
	"fmt"

	"flight-route-service/internal/domain"
)

// ErrUnknownAirport signals that an airport code is absent from the catalog
// snapshot the optimizer was built from. Callers are expected to validate
// codes up front; the engine surfaces the miss explicitly instead of letting
// a sentinel distance leak into cost comparisons.
var ErrUnknownAirport = errors.New("unknown airport")

// RouteEdge is one outgoing leg in the route network.
type RouteEdge struct {
	To         string
	DistanceKm float64
}

// RouteGraph is an in-memory directed route network built once per
// optimization request from catalog snapshots. It is immutable after
// construction and holds no shared state across requests.
//
// Nodes are the airports of the snapshot. Edges referencing an airport that
// is not in the snapshot are dropped at build time, so every stored edge has
// resolvable endpoint coordinates. A duplicate (origin, destination) pair
// overwrites the earlier edge: last write wins.
type RouteGraph struct {
	airports  map[string]*domain.Airport
	adjacency map[string][]RouteEdge
	edgeIndex map[string]map[string]int
	connected map[string]struct{}
}

// NewRouteGraph builds the route network from airport and route snapshots.
func NewRouteGraph(airports []*domain.Airport, routes []*domain.Route) *RouteGraph {
	g := &RouteGraph{
		airports:  make(map[string]*domain.Airport, len(airports)),
		adjacency: make(map[string][]RouteEdge, len(airports)),
		edgeIndex: make(map[string]map[string]int, len(airports)),
		connected: make(map[string]struct{}, len(airports)),
	}

	for _, a := range airports {
		code := domain.NormalizeCode(a.IATA)
		if code == "" {
			continue
		}
		g.airports[code] = a
	}

	for _, r := range routes {
		g.addEdge(domain.NormalizeCode(r.Origin), domain.NormalizeCode(r.Destination), r.DistanceKm)
	}

	return g
}

func (g *RouteGraph) addEdge(from, to string, distanceKm float64) {
	if _, ok := g.airports[from]; !ok {
		return
	}
	if _, ok := g.airports[to]; !ok {
		return
	}

	if idx, ok := g.edgeIndex[from][to]; ok {
		g.adjacency[from][idx].DistanceKm = distanceKm
		return
	}

	if g.edgeIndex[from] == nil {
		g.edgeIndex[from] = make(map[string]int)
	}
	g.edgeIndex[from][to] = len(g.adjacency[from])
	g.adjacency[from] = append(g.adjacency[from], RouteEdge{To: to, DistanceKm: distanceKm})

	g.connected[from] = struct{}{}
	g.connected[to] = struct{}{}
}

// HasNode reports whether the airport code exists in the snapshot.
func (g *RouteGraph) HasNode(code string) bool {
	_, ok := g.airports[code]
	return ok
}

// InNetwork reports whether the airport participates in at least one route.
// An airport that exists in the catalog but has no routes is unreachable by
// search and is served by the direct-path fallback instead.
func (g *RouteGraph) InNetwork(code string) bool {
	_, ok := g.connected[code]
	return ok
}

// Neighbors returns the outgoing edges of a node in insertion order.
// An unknown code yields an empty slice, never an error.
func (g *RouteGraph) Neighbors(code string) []RouteEdge {
	return g.adjacency[code]
}

// Coordinates resolves an airport code to its snapshot coordinates.
func (g *RouteGraph) Coordinates(code string) (domain.Coordinates, error) {
	a, ok := g.airports[code]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	return a.Coordinates, nil
}

// EdgeCount returns the number of stored edges.
func (g *RouteGraph) EdgeCount() int {
	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}
	return n
}

// NodeCount returns the number of snapshot airports.
func (g *RouteGraph) NodeCount() int { return len(g.airports) }
