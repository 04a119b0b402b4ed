package game

import (
	"fmt"
	"strconv"
)

// Square identifies one of the 100 cells of the board by its index
// row*Size+col. Index 0 is a1 (lower-left), 99 is j10 (upper-right).
type Square int

// NoSquare marks the absence of a square, e.g. a step off the board or an
// unused asEmpty argument.
const NoSquare Square = -1

// Direction of a queen move: 0 is north, increasing clockwise up to 7 for
// northwest.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of queen-move directions.
const NumDirections = 8

// deltas[d] = (dcol, drow) for one step in direction d.
var deltas = [NumDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Exists reports whether (col, row) lies on the board.
func Exists(col, row int) bool {
	return col >= 0 && row >= 0 && col < Size && row < Size
}

// Sq returns the square at (col, row).
func Sq(col, row int) (Square, error) {
	if !Exists(col, row) {
		return NoSquare, fmt.Errorf("%w: col %d row %d", ErrInvalidCoordinate, col, row)
	}
	return Square(row*Size + col), nil
}

// MustSq is like Sq but panics on an out-of-range coordinate.
func MustSq(col, row int) Square {
	s, err := Sq(col, row)
	if err != nil {
		panic(err)
	}
	return s
}

// SqIndex returns the square with the given index.
func SqIndex(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return NoSquare, fmt.Errorf("%w: index %d", ErrInvalidCoordinate, index)
	}
	return Square(index), nil
}

func (s Square) Col() int   { return int(s) % Size }
func (s Square) Row() int   { return int(s) / Size }
func (s Square) Index() int { return int(s) }

// IsQueenMove reports whether s-to lies along a rank, file or diagonal.
// A square is never a queen move away from itself.
func (s Square) IsQueenMove(to Square) bool {
	if s == to || s == NoSquare || to == NoSquare {
		return false
	}
	dc := abs(to.Col() - s.Col())
	dr := abs(to.Row() - s.Row())
	return dc == 0 || dr == 0 || dc == dr
}

// Direction returns the direction of the queen move s-to. The result is
// meaningless unless s.IsQueenMove(to).
func (s Square) Direction(to Square) Direction {
	dc := sign(to.Col() - s.Col())
	dr := sign(to.Row() - s.Row())
	for d, delta := range deltas {
		if delta[0] == dc && delta[1] == dr {
			return Direction(d)
		}
	}
	return North
}

// QueenMove returns the square steps squares away in direction dir, or
// NoSquare if that leaves the board.
func (s Square) QueenMove(dir Direction, steps int) Square {
	if dir < 0 || dir >= NumDirections || s == NoSquare {
		return NoSquare
	}
	col := s.Col() + deltas[dir][0]*steps
	row := s.Row() + deltas[dir][1]*steps
	if !Exists(col, row) {
		return NoSquare
	}
	return Square(row*Size + col)
}

// String returns the standard designation, e.g. "a1" or "j10".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string(rune('a'+s.Col())) + strconv.Itoa(s.Row()+1)
}

// ParseSquare parses a designation such as "e3" or "j10".
func ParseSquare(posn string) (Square, error) {
	if len(posn) < 2 || len(posn) > 3 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidNotation, posn)
	}
	col := int(posn[0] - 'a')
	row, err := strconv.Atoi(posn[1:])
	if err != nil || posn[1] == '0' || posn[1] == '+' || posn[1] == '-' {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidNotation, posn)
	}
	s, err := Sq(col, row-1)
	if err != nil {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidNotation, posn)
	}
	return s, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
