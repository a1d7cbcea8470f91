package services

import (
	"container/heap"

	"flight-route-service/internal/domain"
)

// A* over the route network.
//
// The frontier is ordered by g + h, where g is the accumulated
// preference-weighted cost from the origin and h is the raw great-circle
// distance to the destination. Because edge cost is a convex combination of
// distance and distance-derived fuel with the efficiency surcharge, the true
// cost of a leg is never below its raw distance, so the unscaled
// straight-line heuristic never overestimates and optimality holds. The
// heuristic must stay in raw kilometers; rescaling it breaks admissibility.

type frontierItem struct {
	code   string
	fScore float64
	seq    int
}

// frontier is a min-heap keyed by fScore; ties fall back to insertion order
// so equal-cost expansions stay deterministic.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].fScore != f[j].fScore {
		return f[i].fScore < f[j].fScore
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// searchAStar finds the minimum preference-weighted-cost waypoint sequence
// between two network airports. The boolean is false when the frontier
// empties without reaching the destination; the caller degrades to the
// direct-path fallback in that case.
func searchAStar(graph *RouteGraph, cost CostModel, origin, destination string, pref domain.Preference) ([]string, bool) {
	goal, err := graph.Coordinates(destination)
	if err != nil {
		return nil, false
	}

	heuristic := func(code string) float64 {
		from, err := graph.Coordinates(code)
		if err != nil {
			return 0
		}
		return from.GreatCircleKm(goal)
	}

	gScore := map[string]float64{origin: 0}
	cameFrom := make(map[string]string)
	explored := make(map[string]struct{})

	pq := &frontier{}
	heap.Init(pq)

	seq := 0
	heap.Push(pq, &frontierItem{code: origin, fScore: heuristic(origin), seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*frontierItem).code

		if current == destination {
			return reconstructPath(cameFrom, origin, destination), true
		}

		// Lazy decrease-key: stale heap entries are skipped here.
		if _, done := explored[current]; done {
			continue
		}
		explored[current] = struct{}{}

		for _, edge := range graph.Neighbors(current) {
			if _, done := explored[edge.To]; done {
				continue
			}

			tentative := gScore[current] + cost.EdgeCost(edge.DistanceKm, pref)

			if best, seen := gScore[edge.To]; !seen || tentative < best {
				gScore[edge.To] = tentative
				cameFrom[edge.To] = current

				seq++
				heap.Push(pq, &frontierItem{
					code:   edge.To,
					fScore: tentative + heuristic(edge.To),
					seq:    seq,
				})
			}
		}
	}

	return nil, false
}

func reconstructPath(cameFrom map[string]string, origin, destination string) []string {
	waypoints := []string{destination}
	for current := destination; current != origin; {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		waypoints = append(waypoints, prev)
		current = prev
	}

	for i, j := 0, len(waypoints)-1; i < j; i, j = i+1, j-1 {
		waypoints[i], waypoints[j] = waypoints[j], waypoints[i]
	}
	return waypoints
}
