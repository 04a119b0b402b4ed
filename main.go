package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"amazons/engine"
	"amazons/experiments"
	"amazons/experiments/metrics"
	"amazons/meta"
	"amazons/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	whiteDepth := flag.Int("white-depth", meta.DEPTH, "Search depth in plies for White")
	blackDepth := flag.Int("black-depth", meta.DEPTH, "Search depth in plies for Black")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines splitting the root of each search")
	evaluation := flag.String("eval", "mobility", "Evaluation function: mobility or territory")
	random := flag.String("random", "", "Side played by a random agent: white, black or both")
	seed := flag.Uint64("seed", 1, "Seed for random agents")
	experiment := flag.String("experiment", "", fmt.Sprintf("Run an experiment instead of a single game: one of %v", experiments.Names()))
	numGames := flag.Int("games", meta.NUM_GAMES, "Number of games per experiment matchup")
	out := flag.String("out", "results", "Directory for experiment results")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		dir, err := experiments.Run(*experiment, *out, *numGames)
		if err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		fmt.Println(dir)
		return
	}

	if experiments.EvaluationFn(*evaluation) == nil {
		log.Fatal().Msgf("unknown evaluation function %q", *evaluation)
	}
	configs := []metrics.AgentConfig{
		{ID: 1, Goroutines: *goroutines, Depth: *whiteDepth, Evaluation: *evaluation},
		{ID: 2, Goroutines: *goroutines, Depth: *blackDepth, Evaluation: *evaluation},
	}
	switch *random {
	case "":
	case "white":
		configs[0].Random = true
	case "black":
		configs[1].Random = true
	case "both":
		configs[0].Random, configs[1].Random = true, true
	default:
		log.Fatal().Msgf("unknown side %q for -random", *random)
	}

	agents := []agent.Agent{
		experiments.CreateAgent(configs[0], *seed),
		experiments.CreateAgent(configs[1], *seed+1),
	}
	updates := make(chan engine.Update, meta.MAX_TURNS)
	winner, gameMetric, _ := engine.LocalEngine(agents, engine.WithUpdates(updates)).Run()
	close(updates)

	var last engine.Update
	for u := range updates {
		last = u
	}
	if last.Board != nil {
		fmt.Print(last.Board)
	}
	fmt.Printf("%s wins after %d moves in %s\n", winner.Name(), gameMetric.TotalMoves, gameMetric.Duration)
}
