package agent

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
)

type evaluationAgent struct {
	searcher *searcher.AlphaBeta
}

// NewEvaluationAgent returns an agent that plays the best move found by s.
func NewEvaluationAgent(s *searcher.AlphaBeta) Agent {
	return evaluationAgent{searcher: s}
}

// FindMove returns the zero Move when the side to move has none.
func (a evaluationAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	result, metric := a.searcher.FindBestMove(board, board.Turn())
	return result.Move, metric
}
