package game

// EvaluateMobility scores b as White's legal move count minus Black's,
// or +/-WinningValue once the side to move is stuck.
func EvaluateMobility(b *Board) int {
	if score, decided := decidedScore(b); decided {
		return score
	}
	return b.CountMoves(White) - b.CountMoves(Black)
}

// EvaluateTerritory scores b by queen distance: each empty square counts
// for the side that reaches it in strictly fewer queen moves. Decided
// positions score +/-WinningValue.
func EvaluateTerritory(b *Board) int {
	if score, decided := decidedScore(b); decided {
		return score
	}
	white := b.queenDistances(White)
	black := b.queenDistances(Black)

	score := 0
	for s, p := range b.cells {
		if p != Empty {
			continue
		}
		switch {
		case white[s] < black[s]:
			score++
		case black[s] < white[s]:
			score--
		}
	}
	return score
}

func decidedScore(b *Board) (int, bool) {
	switch b.Winner() {
	case White:
		return WinningValue, true
	case Black:
		return -WinningValue, true
	}
	return 0, false
}

// unreached is the queen distance of a square no piece can reach.
const unreached = NumSquares

// queenDistances returns, per square, the fewest queen moves any piece of
// side needs to get there over empty squares.
func (b *Board) queenDistances(side Piece) [NumSquares]int {
	var dist [NumSquares]int
	frontier := make([]Square, 0, NumSquares)
	for s, p := range b.cells {
		if p == side {
			frontier = append(frontier, Square(s))
		} else {
			dist[s] = unreached
		}
	}

	// Breadth-first over queen moves
	for d := 1; len(frontier) > 0; d++ {
		var next []Square
		for _, from := range frontier {
			for to := range b.ReachableFrom(from, NoSquare) {
				if dist[to] == unreached {
					dist[to] = d
					next = append(next, to)
				}
			}
		}
		frontier = next
	}
	return dist
}
