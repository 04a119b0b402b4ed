package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("parsing standard notation", func(t *testing.T) {
		m, err := ParseMove("e3-e5(e9)")
		require.NoError(t, err)
		require.Equal(t, Mv(MustSq(4, 2), MustSq(4, 4), MustSq(4, 8)), m)
		require.Equal(t, "e3-e5(e9)", m.String())
	})

	t.Run("two-digit rows", func(t *testing.T) {
		m, err := ParseMove("d10-d7(j10)")
		require.NoError(t, err)
		require.Equal(t, "d10-d7(j10)", m.String())
	})

	t.Run("malformed notation", func(t *testing.T) {
		for _, n := range []string{"", "e3e5(e9)", "e3-e5", "e3-e5(e9", "e3-z5(e9)", "e3(e9)-e5"} {
			_, err := ParseMove(n)
			require.ErrorIs(t, err, ErrInvalidNotation, n)
		}
	})

	t.Run("moves deduplicate as map keys", func(t *testing.T) {
		seen := map[Move]bool{}
		seen[Mv(1, 2, 3)] = true
		seen[Mv(1, 2, 3)] = true
		seen[Mv(1, 2, 4)] = true
		require.Len(t, seen, 2)
	})
}
