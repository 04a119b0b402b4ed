package searcher

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
)

type Option func(s *AlphaBeta)

// AlphaBeta chooses moves by depth-bounded minimax with alpha-beta pruning.
// It runs one search at a time.
type AlphaBeta struct {
	goroutines int
	depth      int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

// Result is the outcome of a search. Found is false when the searching
// side had no move, in which case Value is the static score.
type Result struct {
	Move  game.Move
	Found bool
	Value int
}

func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines splits the root moves across goroutines, each searching
// its own copy of the board.
func WithGoroutines(goroutines int) Option {
	return func(s *AlphaBeta) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		goroutines: meta.GO_ROUTINES,
		depth:      meta.DEPTH,
		evaluate:   game.EvaluateMobility,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *AlphaBeta) Depth() int { return s.depth }

func (s *AlphaBeta) Goroutines() int { return s.goroutines }

// FindBestMove returns the move for side with the best value from side's
// point of view, searching as if side were to move on board. The search
// runs on a private copy of board, which is left untouched.
func (s *AlphaBeta) FindBestMove(board *game.Board, side game.Piece) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.goroutines, s.depth)

	var result Result
	if s.goroutines > 1 {
		result = s.findMoveParallel(board.CopyFor(side), side)
	} else {
		sr := s.newSearch(board.CopyFor(side))
		result.Value = sr.findMove(s.depth, true, senseOf(side), -Infty, Infty)
		result.Move, result.Found = sr.best, sr.found
	}

	return result, s.metrics.Complete(result.Value)
}

// search walks the tree by making and undoing moves on a single board.
type search struct {
	board    *game.Board
	evaluate game.Evaluate
	metrics  metrics.Collector
	best     game.Move // Move found by the top-level call
	found    bool
}

func (s *AlphaBeta) newSearch(board *game.Board) *search {
	return &search{
		board:    board,
		evaluate: s.evaluate,
		metrics:  s.metrics,
	}
}

// findMove returns the value of the board searched depth plies deep, with
// White maximizing (sense 1) and Black minimizing (sense -1). The move
// achieving it is recorded iff saveMove. Values outside (alpha, beta) are
// bounds rather than exact.
func (s *search) findMove(depth int, saveMove bool, sense int, alpha, beta int) int {
	if depth == 0 || s.board.Winner() != game.Empty {
		s.metrics.AddLeaf()
		return s.evaluate(s.board)
	}
	s.metrics.AddNode()

	var best game.Move
	found := false
	if sense == 1 {
		bestVal := -Infty
		for move := range s.board.LegalMoves(game.White) {
			value := s.child(move, depth, -1, alpha, beta)
			// Ties go to the later move
			if value >= bestVal {
				best, bestVal, found = move, value, true
			}
			alpha = max(alpha, value)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		if saveMove {
			s.best, s.found = best, found
		}
		return bestVal
	}

	bestVal := Infty
	for move := range s.board.LegalMoves(game.Black) {
		value := s.child(move, depth, 1, alpha, beta)
		// Ties also go to the later move. Recorded before the cutoff check.
		if value <= bestVal {
			best, bestVal, found = move, value, true
		}
		beta = min(beta, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	if saveMove {
		s.best, s.found = best, found
	}
	return bestVal
}

// child plays move, searches the resulting position and takes the move
// back.
func (s *search) child(move game.Move, depth, sense, alpha, beta int) int {
	s.board.MakeMove(move)
	value := s.findMove(depth-1, false, sense, alpha, beta)
	if err := s.board.Undo(); err != nil {
		panic(err) // make/undo are paired, so the history cannot be empty
	}
	return value
}
