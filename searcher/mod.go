package searcher

import "amazons/game"

// Infty is larger than the magnitude of any evaluation, including
// game.WinningValue.
const Infty = game.WinningValue + 1

// senseOf returns 1 for White, which maximizes, and -1 for Black.
func senseOf(side game.Piece) int {
	if side == game.Black {
		return -1
	}
	return 1
}

func sideOf(sense int) game.Piece {
	if sense < 0 {
		return game.Black
	}
	return game.White
}
