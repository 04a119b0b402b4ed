package engine

import (
	"testing"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/stretchr/testify/require"
)

// illegalAgent always plays a move that is never legal.
type illegalAgent struct {
	calls int
}

func (a *illegalAgent) FindMove(*game.Board) (game.Move, metrics.SearchMetric) {
	a.calls++
	return game.Mv(game.NoSquare, game.NoSquare, game.NoSquare), metrics.SearchMetric{}
}

func TestLocalEngine(t *testing.T) {
	t.Run("requires two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([]agent.Agent{agent.NewRandomAgent(1)}) })
	})

	t.Run("random game runs to a winner", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)})

		winner, gameMetric, moveMetrics := e.Run()

		require.Contains(t, []game.Piece{game.White, game.Black}, winner)
		require.Equal(t, winner.Name(), gameMetric.Winner)
		require.Equal(t, "white", gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, 92)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i%2 == 0 {
				require.Equal(t, "white", mm.Player)
			} else {
				require.Equal(t, "black", mm.Player)
			}
		}
		// The side that made the last move wins
		require.Equal(t, moveMetrics[len(moveMetrics)-1].Player, winner.Name())
	})

	t.Run("replays the game through updates", func(t *testing.T) {
		updates := make(chan Update, 100)
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(3), agent.NewRandomAgent(4)}, WithUpdates(updates))

		_, gameMetric, moveMetrics := e.Run()
		close(updates)

		replay := game.NewBoard()
		count := 0
		for u := range updates {
			require.Equal(t, replay.Turn(), u.Side)
			require.True(t, replay.IsLegal(u.Move))
			require.Equal(t, moveMetrics[count].Move, u.Move.String())
			replay.MakeMove(u.Move)
			require.Equal(t, replay.Hash(), u.Hash)
			require.Equal(t, replay.String(), u.Board.String())
			count++
		}
		require.Equal(t, gameMetric.TotalMoves, count)
	})

	t.Run("full channel does not block", func(t *testing.T) {
		updates := make(chan Update)
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(5), agent.NewRandomAgent(6)},
			WithUpdates(updates), WithMaxTurns(4))

		winner, gameMetric, _ := e.Run()

		require.Equal(t, game.Empty, winner)
		require.Equal(t, 4, gameMetric.TotalMoves)
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(7), agent.NewRandomAgent(8)}, WithMaxTurns(10))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Empty, winner)
		require.Equal(t, "empty", gameMetric.Winner)
		require.Len(t, moveMetrics, 10)
	})

	t.Run("illegal moves fall back to the first legal move", func(t *testing.T) {
		illegal := &illegalAgent{}
		updates := make(chan Update, 1)
		e := LocalEngine([]agent.Agent{illegal, agent.NewRandomAgent(9)}, WithUpdates(updates), WithMaxTurns(1))

		_, _, moveMetrics := e.Run()

		var first game.Move
		for move := range game.NewBoard().LegalMoves(game.White) {
			first = move
			break
		}
		require.Equal(t, 1, illegal.calls)
		require.Equal(t, first.String(), moveMetrics[0].Move)
		require.Equal(t, first, (<-updates).Move)
	})

	t.Run("starts from a given position", func(t *testing.T) {
		start := game.NewBoard()
		for move := range start.LegalMoves(game.White) {
			start.MakeMove(move)
			break
		}
		layout := start.String()
		updates := make(chan Update, 1)
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(10), agent.NewRandomAgent(11)},
			WithStartingPosition(start), WithUpdates(updates), WithMaxTurns(1))

		_, gameMetric, moveMetrics := e.Run()

		require.Equal(t, "black", gameMetric.StartingPlayer)
		require.Equal(t, "black", moveMetrics[0].Player)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, layout, start.String(), "engine plays on its own copy")

		u := <-updates
		require.True(t, start.IsLegal(u.Move))
		start.MakeMove(u.Move)
		require.Equal(t, start.Hash(), u.Hash)
	})

	t.Run("searching agents", func(t *testing.T) {
		white := agent.NewEvaluationAgent(searcher.NewAlphaBeta(searcher.WithMetrics()))
		black := agent.NewEvaluationAgent(searcher.NewAlphaBeta(searcher.WithGoroutines(2), searcher.WithMetrics()))
		e := LocalEngine([]agent.Agent{white, black}, WithMaxTurns(4))

		_, _, moveMetrics := e.Run()

		require.Len(t, moveMetrics, 4)
		require.Equal(t, 1, moveMetrics[0].Goroutines)
		require.Equal(t, 2, moveMetrics[1].Goroutines)
		for _, mm := range moveMetrics {
			require.Equal(t, 1, mm.Depth)
			require.Positive(t, mm.Leaves)
		}
	})
}
