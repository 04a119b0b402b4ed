package agent

import (
	"testing"

	"amazons/game"
	"amazons/searcher"

	"github.com/stretchr/testify/require"
)

const stuckLayout = `
B S - - - - - - - -
S S - - - - - - - -
- - - - - - - - - -
- - - - - - - - - -
- - - - W - - - - -
- - - - - - - - - -
- - - - - - - - - -
- - - - - - - - - -
- - - - - - - - - -
- - - - - - - - - -
`

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays for the side to move", func(t *testing.T) {
		for _, turn := range []game.Piece{game.White, game.Black} {
			b, err := game.ParseBoard(game.NewBoard().String(), turn)
			require.NoError(t, err)

			a := NewEvaluationAgent(searcher.NewAlphaBeta(searcher.WithMetrics()))
			move, metric := a.FindMove(b)

			require.True(t, b.IsLegal(move))
			require.Equal(t, turn, b.Get(move.From))
			require.Equal(t, int64(1), metric.Nodes)
			require.Equal(t, int64(2176), metric.Leaves)
		}
	})

	t.Run("matches the searcher", func(t *testing.T) {
		b := game.NewBoard()
		s := searcher.NewAlphaBeta(searcher.WithEvaluationFn(game.EvaluateTerritory))
		want, _ := s.FindBestMove(b, game.White)

		move, _ := NewEvaluationAgent(s).FindMove(b)

		require.Equal(t, want.Move, move)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		b := game.NewBoard()
		a := NewRandomAgent(7)
		for range 20 {
			move, _ := a.FindMove(b)
			require.True(t, b.IsLegal(move), move.String())
			b.MakeMove(move)
		}
	})

	t.Run("same seed same game", func(t *testing.T) {
		first, second := NewRandomAgent(42), NewRandomAgent(42)
		b1, b2 := game.NewBoard(), game.NewBoard()
		for range 10 {
			m1, _ := first.FindMove(b1)
			m2, _ := second.FindMove(b2)
			require.Equal(t, m1, m2)
			b1.MakeMove(m1)
			b2.MakeMove(m2)
		}
	})

	t.Run("no move available", func(t *testing.T) {
		b, err := game.ParseBoard(stuckLayout, game.Black)
		require.NoError(t, err)

		move, _ := NewRandomAgent(1).FindMove(b)

		require.False(t, b.IsLegal(move))
	})
}
