package game

import "golang.org/x/exp/rand"

type StateHash uint64

// zobristSeed fixes the keys so hashes are stable across runs.
const zobristSeed = 0x9e3779b97f4a7c15

var (
	zobristPieces [NumSquares][Spear + 1]uint64
	zobristBlack  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for s := range zobristPieces {
		// Empty squares contribute nothing
		for p := White; p <= Spear; p++ {
			zobristPieces[s][p] = rng.Uint64()
		}
	}
	zobristBlack = rng.Uint64()
}

func (b *Board) computeHash() StateHash {
	var h uint64
	for s, p := range b.cells {
		h ^= zobristPieces[s][p]
	}
	if b.turn == Black {
		h ^= zobristBlack
	}
	return StateHash(h)
}
