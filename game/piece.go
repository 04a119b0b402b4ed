package game

// Piece is the content of a square.
type Piece int8

const (
	Empty Piece = iota
	White
	Black
	Spear
)

// Opponent returns the other side for White or Black, and Empty otherwise.
func (p Piece) Opponent() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

// String returns the one-letter board symbol.
func (p Piece) String() string {
	switch p {
	case White:
		return "W"
	case Black:
		return "B"
	case Spear:
		return "S"
	}
	return "-"
}

// Name returns a lowercase name for logs and records.
func (p Piece) Name() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	case Spear:
		return "spear"
	}
	return "empty"
}

func parsePiece(c byte) (Piece, bool) {
	switch c {
	case 'W':
		return White, true
	case 'B':
		return Black, true
	case 'S':
		return Spear, true
	case '-':
		return Empty, true
	}
	return Empty, false
}
