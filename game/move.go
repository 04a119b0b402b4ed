package game

import (
	"fmt"
	"strings"
)

// Move represents a queen move from From to To followed by a spear thrown
// to Spear. Moves are comparable and may be used as map keys.
type Move struct {
	From  Square
	To    Square
	Spear Square
}

// Mv returns the move from-to(spear).
func Mv(from, to, spear Square) Move {
	return Move{From: from, To: to, Spear: spear}
}

// String returns the move in "from-to(spear)" notation, e.g. "e3-e5(e9)".
func (m Move) String() string {
	return fmt.Sprintf("%s-%s(%s)", m.From, m.To, m.Spear)
}

// ParseMove parses "from-to(spear)" notation.
func ParseMove(notation string) (Move, error) {
	dash := strings.IndexByte(notation, '-')
	open := strings.IndexByte(notation, '(')
	if dash < 0 || open < dash || !strings.HasSuffix(notation, ")") {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, notation)
	}
	from, err := ParseSquare(notation[:dash])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(notation[dash+1 : open])
	if err != nil {
		return Move{}, err
	}
	spear, err := ParseSquare(notation[open+1 : len(notation)-1])
	if err != nil {
		return Move{}, err
	}
	return Mv(from, to, spear), nil
}
