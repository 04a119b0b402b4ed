package agent

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

type Agent interface {
	// FindMove returns a move for the side to move on board and performance metrics (if collected)
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric)
}
