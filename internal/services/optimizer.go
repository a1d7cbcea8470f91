package services

import (
	"fmt"

	"flight-route-service/internal/domain"
)

// The direct two-waypoint flight is the comparison baseline for every
// optimization, so its score is a fixed reference constant rather than a
// value of the searched-path score formula.
const directPathScore = 1.0

// Optimizer finds cost-efficient flight paths over a route-network snapshot.
//
// An Optimizer is built per request from immutable airport, route and
// aircraft snapshots and discarded afterwards. It is a pure in-memory
// computation: no I/O, no internal concurrency, no state shared across
// requests, and identical inputs produce bit-identical results. A host that
// needs deadlines or logging wraps the optimizer; the engine itself does
// neither.
type Optimizer struct {
	graph *RouteGraph
	cost  CostModel
}

// NewOptimizer builds the request-scoped route graph and cost model.
func NewOptimizer(airports []*domain.Airport, routes []*domain.Route, aircraft domain.Aircraft) *Optimizer {
	return &Optimizer{
		graph: NewRouteGraph(airports, routes),
		cost:  NewCostModel(aircraft),
	}
}

// Graph exposes the request-scoped route network, mainly for callers that
// want to report on connectivity.
func (o *Optimizer) Graph() *RouteGraph { return o.graph }

// OptimizeRoute returns the minimum-cost path between two airports under the
// given preference profile.
//
// Search never fails outward on missing connectivity: an origin or
// destination outside the route network, or an exhausted frontier, degrades
// to the direct great-circle path. Only a code absent from the airport
// snapshot is an error (ErrUnknownAirport), since its coordinates are
// undefined.
func (o *Optimizer) OptimizeRoute(origin, destination string, pref domain.Preference) (domain.FlightPath, error) {
	origin = domain.NormalizeCode(origin)
	destination = domain.NormalizeCode(destination)

	if !o.graph.HasNode(origin) {
		return domain.FlightPath{}, fmt.Errorf("optimize route: %w: %s", ErrUnknownAirport, origin)
	}
	if !o.graph.HasNode(destination) {
		return domain.FlightPath{}, fmt.Errorf("optimize route: %w: %s", ErrUnknownAirport, destination)
	}

	// Zero-length query and network-less endpoints share the fallback.
	if origin == destination || !o.graph.InNetwork(origin) || !o.graph.InNetwork(destination) {
		return o.directPath(origin, destination)
	}

	waypoints, ok := searchAStar(o.graph, o.cost, origin, destination, pref)
	if !ok {
		return o.directPath(origin, destination)
	}

	return o.pathFromWaypoints(waypoints)
}

// DirectPath returns the two-waypoint great-circle baseline path.
func (o *Optimizer) DirectPath(origin, destination string) (domain.FlightPath, error) {
	origin = domain.NormalizeCode(origin)
	destination = domain.NormalizeCode(destination)
	return o.directPath(origin, destination)
}

func (o *Optimizer) directPath(origin, destination string) (domain.FlightPath, error) {
	from, err := o.graph.Coordinates(origin)
	if err != nil {
		return domain.FlightPath{}, fmt.Errorf("direct path: %w", err)
	}
	to, err := o.graph.Coordinates(destination)
	if err != nil {
		return domain.FlightPath{}, fmt.Errorf("direct path: %w", err)
	}

	distance := from.GreatCircleKm(to)
	fuel, co2 := o.cost.FuelAndCO2(distance)

	return domain.FlightPath{
		Waypoints:       []string{origin, destination},
		TotalDistanceKm: distance,
		EstimatedFuelKg: fuel,
		EstimatedCO2Kg:  co2,
		FlightTimeHours: o.cost.FlightTimeHours(distance),
		Score:           directPathScore,
	}, nil
}

// pathFromWaypoints aggregates a searched waypoint sequence into a
// FlightPath, summing the stored edge weights along the sequence.
func (o *Optimizer) pathFromWaypoints(waypoints []string) (domain.FlightPath, error) {
	total := 0.0
	for i := 0; i < len(waypoints)-1; i++ {
		d, ok := o.edgeDistance(waypoints[i], waypoints[i+1])
		if !ok {
			return domain.FlightPath{}, fmt.Errorf("flight path: no edge %s->%s", waypoints[i], waypoints[i+1])
		}
		total += d
	}

	fuel, co2 := o.cost.FuelAndCO2(total)

	return domain.FlightPath{
		Waypoints:       waypoints,
		TotalDistanceKm: total,
		EstimatedFuelKg: fuel,
		EstimatedCO2Kg:  co2,
		FlightTimeHours: o.cost.FlightTimeHours(total),
		Score:           o.cost.Score(fuel, total),
	}, nil
}

func (o *Optimizer) edgeDistance(from, to string) (float64, bool) {
	for _, edge := range o.graph.Neighbors(from) {
		if edge.To == to {
			return edge.DistanceKm, true
		}
	}
	return 0, false
}
