package experiments

import (
	"fmt"
	"slices"
	"time"

	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/rs/zerolog/log"
)

type experiment func(root string, numGames int) (string, error)

var registry = map[string]experiment{
	"depth":       RunDepthExperiment,
	"evaluation":  RunEvaluationExperiment,
	"parallelism": RunParallelismExperiment,
	"baseline":    RunBaselineExperiment,
}

// Names lists the experiments Run accepts.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run runs the named experiment, writing results under root, and returns
// the directory holding them.
func Run(name, root string, numGames int) (string, error) {
	run, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("unknown experiment %q, want one of %v", name, Names())
	}
	return run(root, numGames)
}

var randomConfig = metrics.AgentConfig{ID: 0, Random: true, Seed: 1}

// OpeningPlies is the number of random plies played before a two-ply
// search experiment hands over to its agents. From the initial layout a
// two-ply mobility search yields about 2176^2 leaves, each enumerating
// both sides' moves, so a single searched move costs on the order of 10^10
// move yields. After this many plies the move lists are a few hundred long.
const OpeningPlies = 50

// RunBaselineExperiment pairs the default searcher against random play.
func RunBaselineExperiment(root string, numGames int) (string, error) {
	searching := metrics.AgentConfig{ID: 1, Goroutines: 1, Depth: 1, Evaluation: "mobility"}
	matchUps := [][]metrics.AgentConfig{
		{searching, randomConfig},
		{randomConfig, searching},
	}
	return runExperiment("baseline", root, numGames, 0, []metrics.AgentConfig{randomConfig, searching}, matchUps)
}

// RunDepthExperiment pairs a one-ply searcher against a two-ply searcher
// with each taking both colors. Games start after OpeningPlies random
// plies; expect seconds per two-ply move even so.
func RunDepthExperiment(root string, numGames int) (string, error) {
	shallow := metrics.AgentConfig{ID: 1, Goroutines: 1, Depth: 1, Evaluation: "mobility"}
	deep := metrics.AgentConfig{ID: 2, Goroutines: 8, Depth: 2, Evaluation: "mobility"}
	matchUps := [][]metrics.AgentConfig{
		{shallow, deep},
		{deep, shallow},
	}
	return runExperiment("depth", root, numGames, OpeningPlies, []metrics.AgentConfig{shallow, deep}, matchUps)
}

// RunEvaluationExperiment pairs the mobility evaluation against the
// territory evaluation at equal depth.
func RunEvaluationExperiment(root string, numGames int) (string, error) {
	mobility := metrics.AgentConfig{ID: 1, Goroutines: 1, Depth: 1, Evaluation: "mobility"}
	territory := metrics.AgentConfig{ID: 2, Goroutines: 1, Depth: 1, Evaluation: "territory"}
	matchUps := [][]metrics.AgentConfig{
		{mobility, territory},
		{territory, mobility},
	}
	return runExperiment("evaluation", root, numGames, 0, []metrics.AgentConfig{mobility, territory}, matchUps)
}

// runExperiment plays numGames per matchup. Game i of every matchup starts
// from the same opening of openingPlies random plies.
func runExperiment(name, root string, numGames, openingPlies int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	setup := metrics.Setup{
		Name:         name,
		Matchups:     matchUps,
		NumGames:     numGames,
		OpeningPlies: openingPlies,
		StartTime:    time.Now(),
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		white, black := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(matchUps), white, black)

		for i := 0; i < numGames; i++ {
			count++
			start := Opening(uint64(i+1), openingPlies)
			winner, gameMetric, moveMetrics := runGame(white, black, count, start)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, numGames, winner.Name())
		}
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msgf("completed %s experiment in %s", name, setup.Duration)

	return store(name, root, setup, configs, gameRecords, moveRecords)
}

func store(name, root string, setup metrics.Setup, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSetup(setup); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return writer.Dir(), nil
}

// runGame plays a single game from start and returns the winner. gameID
// varies the seeds of random agents from game to game.
func runGame(white, black metrics.AgentConfig, gameID int, start *game.Board) (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		CreateAgent(white, uint64(gameID)),
		CreateAgent(black, uint64(gameID)),
	}
	return engine.LocalEngine(agents, engine.WithStartingPosition(start)).Run()
}

// Opening returns the initial layout after up to plies random moves. It
// stops early if the side to move is stuck.
func Opening(seed uint64, plies int) *game.Board {
	board := game.NewBoard()
	random := agent.NewRandomAgent(seed)
	for range plies {
		if board.Winner() != game.Empty {
			break
		}
		move, _ := random.FindMove(board)
		board.MakeMove(move)
	}
	return board
}

// CreateAgent builds the agent described by config. offset is added to the
// seed of a random agent.
func CreateAgent(config metrics.AgentConfig, offset uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed + offset)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if evaluate := EvaluationFn(config.Evaluation); evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	return agent.NewEvaluationAgent(searcher.NewAlphaBeta(options...))
}

// EvaluationFn returns the evaluation function called name, or nil if
// there is none.
func EvaluationFn(name string) game.Evaluate {
	switch name {
	case "mobility":
		return game.EvaluateMobility
	case "territory":
		return game.EvaluateTerritory
	}
	return nil
}
