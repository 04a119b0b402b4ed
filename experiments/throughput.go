package experiments

import (
	"amazons/experiments/metrics"
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Depth: 2, Evaluation: "mobility"},
	{ID: 2, Goroutines: 2, Depth: 2, Evaluation: "mobility"},
	{ID: 3, Goroutines: 4, Depth: 2, Evaluation: "mobility"},
	{ID: 4, Goroutines: 8, Depth: 2, Evaluation: "mobility"},
	{ID: 5, Goroutines: 16, Depth: 2, Evaluation: "mobility"},
}

// RunParallelismExperiment measures search throughput as the root split
// widens. Each matchup uses the same config for both players so games
// have similar length; compare nodes and durations in move_records.csv.
// Games start after OpeningPlies random plies to keep two-ply searches
// affordable.
func RunParallelismExperiment(root string, numGames int) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return runExperiment("parallelism", root, numGames, OpeningPlies, parallelConfigs, matchUps)
}
