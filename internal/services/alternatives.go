package services

import (
	"fmt"
	"sort"

	"flight-route-service/internal/domain"
)

// FindAlternatives returns up to maxCount materially distinct paths between
// two airports, ranked ascending by score.
//
// It runs one search per fixed preference profile (eco, balanced, fast),
// then deduplicates by exact waypoint sequence, keeping the lowest-score
// occurrence. Fewer unique paths than requested is normal: a pair connected
// by a single viable route yields exactly one option, never padded copies.
func (o *Optimizer) FindAlternatives(origin, destination string, maxCount int) ([]domain.FlightPath, error) {
	if maxCount < 1 {
		return []domain.FlightPath{}, nil
	}

	candidates := make([]domain.FlightPath, 0, len(domain.Preferences))
	for _, pref := range domain.Preferences {
		path, err := o.OptimizeRoute(origin, destination, pref)
		if err != nil {
			return nil, fmt.Errorf("find alternatives: %s search: %w", pref, err)
		}
		candidates = append(candidates, path)
	}

	// Stable sort keeps the eco/balanced/fast evaluation order on score
	// ties, which keeps output deterministic for identical snapshots.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]domain.FlightPath, 0, maxCount)
	for _, path := range candidates {
		key := path.WaypointKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		unique = append(unique, path)
		if len(unique) == maxCount {
			break
		}
	}

	return unique, nil
}
