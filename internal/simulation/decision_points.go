package simulation

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-simulator/internal/types"
)

// DecisionPoints merges the key decision points across all three scenarios of
// the named path, deduplicated by year (a later scenario's entry for a year
// wins), sorted ascending by year. This is a read-side helper for the query
// layer, not part of the simulation algorithm.
func DecisionPoints(sim *types.Simulation, pathID string) ([]types.DecisionPoint, error) {
	var path *types.Path
	for i := range sim.Paths {
		if sim.Paths[i].PathID == pathID {
			path = &sim.Paths[i]
			break
		}
	}
	if path == nil {
		return nil, fmt.Errorf("path not found: %s", pathID)
	}

	byYear := make(map[int]types.DecisionPoint)
	for _, scenario := range []types.ScenarioOutcome{
		path.Scenarios.Optimistic,
		path.Scenarios.Realistic,
		path.Scenarios.Pessimistic,
	} {
		for _, point := range scenario.KeyDecisionPoints {
			byYear[point.Year] = point
		}
	}

	merged := make([]types.DecisionPoint, 0, len(byYear))
	for _, point := range byYear {
		merged = append(merged, point)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Year < merged[j].Year })
	return merged, nil
}
