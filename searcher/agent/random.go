package agent

import (
	"slices"

	"amazons/experiments/metrics"
	"amazons/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
// Agents with the same seed play the same moves on the same boards.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	moves := slices.Collect(board.TurnMoves())
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Goroutines: 1}
}
