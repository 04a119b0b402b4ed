package searcher

import (
	"slices"

	"amazons/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// findMoveParallel searches the root moves on s.goroutines workers. Each
// worker owns a copy of board and searches every child with the full
// window, so the root value matches the sequential search.
func (s *AlphaBeta) findMoveParallel(board *game.Board, side game.Piece) Result {
	if board.Winner() != game.Empty {
		s.metrics.AddLeaf()
		return Result{Value: s.evaluate(board)}
	}
	s.metrics.AddNode()

	sense := senseOf(side)
	moves := slices.Collect(board.LegalMoves(side))
	values := make([]int, len(moves))

	tasks := make(chan int, len(moves))
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	var g errgroup.Group
	for w := 0; w < s.goroutines; w++ {
		sr := s.newSearch(board.Copy())
		g.Go(func() error {
			for i := range tasks {
				sr.board.MakeMove(moves[i])
				values[i] = sr.findMove(s.depth-1, false, -sense, -Infty, Infty)
				if err := sr.board.Undo(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("parallel search failed")
		panic(err)
	}

	// Merge in enumeration order with the sequential tie-break rules
	result := Result{Value: -sense * Infty}
	for i, value := range values {
		if (sense == 1 && value >= result.Value) || (sense == -1 && value <= result.Value) {
			result = Result{Move: moves[i], Found: true, Value: value}
		}
	}
	return result
}
