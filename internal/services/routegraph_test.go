package services

import (
	"testing"

	"flight-route-service/internal/domain"
)

func testAirports() []*domain.Airport {
	return []*domain.Airport{
		{IATA: "AAA", Name: "Alpha", Coordinates: domain.Coordinates{Lat: 0, Lon: 0}},
		{IATA: "BBB", Name: "Bravo", Coordinates: domain.Coordinates{Lat: 0, Lon: 10}},
		{IATA: "CCC", Name: "Charlie", Coordinates: domain.Coordinates{Lat: 0, Lon: 20}},
	}
}

func TestRouteGraphNeighborsOfAbsentCode(t *testing.T) {
	g := NewRouteGraph(testAirports(), nil)

	if got := g.Neighbors("ZZZ"); len(got) != 0 {
		t.Fatalf("neighbors of absent code = %v, want empty", got)
	}
	if g.HasNode("ZZZ") {
		t.Fatal("HasNode(ZZZ) = true, want false")
	}
}

func TestRouteGraphDuplicateEdgeOverwrites(t *testing.T) {
	routes := []*domain.Route{
		{Origin: "AAA", Destination: "BBB", DistanceKm: 1000},
		{Origin: "AAA", Destination: "BBB", DistanceKm: 1200},
	}
	g := NewRouteGraph(testAirports(), routes)

	neighbors := g.Neighbors("AAA")
	if len(neighbors) != 1 {
		t.Fatalf("expected 1 edge after overwrite, got %d", len(neighbors))
	}
	if neighbors[0].DistanceKm != 1200 {
		t.Fatalf("edge distance = %v, want last-written 1200", neighbors[0].DistanceKm)
	}
}

func TestRouteGraphDropsEdgesWithUnknownEndpoints(t *testing.T) {
	routes := []*domain.Route{
		{Origin: "AAA", Destination: "XXX", DistanceKm: 500},
		{Origin: "YYY", Destination: "BBB", DistanceKm: 500},
		{Origin: "AAA", Destination: "BBB", DistanceKm: 1000},
	}
	g := NewRouteGraph(testAirports(), routes)

	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("edge count = %d, want 1 (unknown endpoints dropped)", got)
	}
}

func TestRouteGraphInNetwork(t *testing.T) {
	routes := []*domain.Route{{Origin: "AAA", Destination: "BBB", DistanceKm: 1000}}
	g := NewRouteGraph(testAirports(), routes)

	if !g.InNetwork("AAA") || !g.InNetwork("BBB") {
		t.Fatal("edge endpoints should be in the network")
	}
	// CCC exists in the catalog but has no routes.
	if !g.HasNode("CCC") {
		t.Fatal("HasNode(CCC) = false, want true")
	}
	if g.InNetwork("CCC") {
		t.Fatal("InNetwork(CCC) = true, want false")
	}
}

func TestRouteGraphCoordinatesUnknownAirport(t *testing.T) {
	g := NewRouteGraph(testAirports(), nil)

	if _, err := g.Coordinates("AAA"); err != nil {
		t.Fatalf("unexpected error for known code: %v", err)
	}

	_, err := g.Coordinates("ZZZ")
	if err == nil {
		t.Fatal("expected error for unknown code")
	}
}

func TestRouteGraphNormalizesCodes(t *testing.T) {
	airports := []*domain.Airport{
		{IATA: "aaa", Coordinates: domain.Coordinates{Lat: 0, Lon: 0}},
		{IATA: " bbb ", Coordinates: domain.Coordinates{Lat: 0, Lon: 10}},
	}
	routes := []*domain.Route{{Origin: "AAA", Destination: "BBB", DistanceKm: 1000}}
	g := NewRouteGraph(airports, routes)

	if !g.HasNode("AAA") || !g.HasNode("BBB") {
		t.Fatal("codes should be canonicalized to uppercase")
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("edge count = %d, want 1", g.EdgeCount())
	}
}
