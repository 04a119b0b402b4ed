package game

import (
	"fmt"
	"iter"
	"strings"
)

// Initial queens, by square index.
var (
	whiteStart = [4]Square{3, 6, 30, 39}
	blackStart = [4]Square{60, 69, 93, 96}
)

// Board is a mutable Amazons position. It changes only through Put,
// MakeMove and Undo, and keeps a stack of applied moves so that every
// MakeMove can be reversed exactly.
//
// A Board is not safe for concurrent use. Callers that search in parallel
// give each worker its own Copy.
type Board struct {
	cells  [NumSquares]Piece
	turn   Piece
	moves  int    // Applied moves not yet undone, always len(stack)
	stack  []Move // Applied moves, most recent last
	winner Piece  // Cached result of Winner, valid iff solved
	solved bool
	hash   StateHash
}

// NewBoard returns a board in the initial position with White to move.
func NewBoard() *Board {
	b := &Board{turn: White}
	for _, s := range whiteStart {
		b.cells[s] = White
	}
	for _, s := range blackStart {
		b.cells[s] = Black
	}
	b.hash = b.computeHash()
	return b
}

// Copy returns a copy of the grid, turn and cached winner. The copy starts
// with an empty move history.
func (b *Board) Copy() *Board {
	return &Board{
		cells:  b.cells,
		turn:   b.turn,
		winner: b.winner,
		solved: b.solved,
		hash:   b.hash,
	}
}

// CopyFor returns a Copy with turn as the side to move.
func (b *Board) CopyFor(turn Piece) *Board {
	c := b.Copy()
	if c.turn != turn {
		c.flipTurn()
	}
	return c
}

// ParseBoard builds a board from the layout rendered by String: ten rows
// from row 10 down to row 1, each holding ten of W, B, S or -.
func ParseBoard(layout string, turn Piece) (*Board, error) {
	if turn != White && turn != Black {
		return nil, fmt.Errorf("%w: turn %s", ErrInvalidNotation, turn.Name())
	}
	var rows [][]string
	for _, line := range strings.Split(layout, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidNotation, Size, len(rows))
	}

	b := &Board{turn: turn}
	for i, fields := range rows {
		if len(fields) != Size {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrInvalidNotation, Size-i, len(fields))
		}
		for col, field := range fields {
			p, ok := parsePiece(field[0])
			if !ok || len(field) != 1 {
				return nil, fmt.Errorf("%w: symbol %q", ErrInvalidNotation, field)
			}
			b.cells[MustSq(col, Size-1-i)] = p
		}
	}
	b.hash = b.computeHash()
	return b, nil
}

// Turn returns the side to move.
func (b *Board) Turn() Piece { return b.turn }

// NumMoves returns the number of moves made and not undone.
func (b *Board) NumMoves() int { return b.moves }

// Hash returns the Zobrist hash of the grid and side to move.
func (b *Board) Hash() StateHash { return b.hash }

// LastMove returns the most recent move not undone.
func (b *Board) LastMove() (Move, bool) {
	if len(b.stack) == 0 {
		return Move{}, false
	}
	return b.stack[len(b.stack)-1], true
}

// Get returns the contents of s.
func (b *Board) Get(s Square) Piece {
	return b.cells[s]
}

// Put sets s to p.
func (b *Board) Put(p Piece, s Square) {
	b.hash ^= StateHash(zobristPieces[s][b.cells[s]] ^ zobristPieces[s][p])
	b.cells[s] = p
	b.solved = false
}

// IsUnblockedMove reports whether from-to is a queen move whose
// destination and intermediate squares are empty, treating asEmpty as
// empty. Pass NoSquare for asEmpty to disable it.
func (b *Board) IsUnblockedMove(from, to, asEmpty Square) (bool, error) {
	if !from.IsQueenMove(to) {
		return false, fmt.Errorf("%w: %s-%s", ErrIllegalGeometry, from, to)
	}
	return b.unblocked(from, to, asEmpty), nil
}

// unblocked assumes from.IsQueenMove(to).
func (b *Board) unblocked(from, to, asEmpty Square) bool {
	if b.cells[to] != Empty && to != asEmpty {
		return false
	}
	dir := from.Direction(to)
	for next := from.QueenMove(dir, 1); next != to; next = next.QueenMove(dir, 1) {
		if b.cells[next] != Empty && next != asEmpty {
			return false
		}
	}
	return true
}

// IsLegal reports whether m is a legal move for the side to move.
func (b *Board) IsLegal(m Move) bool {
	if !m.From.valid() || !m.To.valid() || !m.Spear.valid() {
		return false
	}
	if b.cells[m.From] != b.turn {
		return false
	}
	if !m.From.IsQueenMove(m.To) || !b.unblocked(m.From, m.To, NoSquare) {
		return false
	}
	return m.To.IsQueenMove(m.Spear) && b.unblocked(m.To, m.Spear, m.From)
}

func (s Square) valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// ReachableFrom yields the squares reachable from from by an unblocked
// queen move, treating asEmpty as empty. Directions are scanned North
// through NorthWest, each outward from distance 1. The contents of from
// itself are ignored.
//
// The board must not change between yields; a consumer that makes a move
// inside the loop must undo it before continuing.
func (b *Board) ReachableFrom(from, asEmpty Square) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for dir := North; dir < NumDirections; dir++ {
			for steps := 1; ; steps++ {
				s := from.QueenMove(dir, steps)
				if s == NoSquare || (b.cells[s] != Empty && s != asEmpty) {
					break
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

// LegalMoves yields every legal move for side, regardless of whose turn it
// is: pieces by increasing square index, then destinations, then spear
// squares, both in ReachableFrom order. The same mutation rule as
// ReachableFrom applies.
func (b *Board) LegalMoves(side Piece) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i := range NumSquares {
			from := Square(i)
			if b.cells[from] != side {
				continue
			}
			for to := range b.ReachableFrom(from, NoSquare) {
				for spear := range b.ReachableFrom(to, from) {
					if !yield(Mv(from, to, spear)) {
						return
					}
				}
			}
		}
	}
}

// TurnMoves yields the legal moves of the side to move.
func (b *Board) TurnMoves() iter.Seq[Move] {
	return b.LegalMoves(b.turn)
}

// CountMoves returns the number of legal moves for side.
func (b *Board) CountMoves(side Piece) int {
	n := 0
	for range b.LegalMoves(side) {
		n++
	}
	return n
}

func (b *Board) hasMove(side Piece) bool {
	for range b.LegalMoves(side) {
		return true
	}
	return false
}

// Winner returns the opponent of the side to move if that side has no
// legal move, and Empty while the game goes on.
func (b *Board) Winner() Piece {
	if !b.solved {
		b.winner = Empty
		if !b.hasMove(b.turn) {
			b.winner = b.turn.Opponent()
		}
		b.solved = true
	}
	return b.winner
}

// MakeMove plays m for the side to move. It does not check legality.
func (b *Board) MakeMove(m Move) {
	piece := b.cells[m.From]
	b.Put(Empty, m.From)
	b.Put(piece, m.To)
	b.Put(Spear, m.Spear)
	b.moves++
	b.flipTurn()
	b.stack = append(b.stack, m)
}

// Undo reverses the most recent MakeMove.
func (b *Board) Undo() error {
	if len(b.stack) == 0 {
		return ErrEmptyHistory
	}
	m := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.Put(Empty, m.Spear)
	b.Put(b.cells[m.To], m.From)
	b.Put(Empty, m.To)
	b.moves--
	b.flipTurn()
	return nil
}

func (b *Board) flipTurn() {
	b.turn = b.turn.Opponent()
	b.hash ^= StateHash(zobristBlack)
	b.solved = false
}

// String renders the grid from row 10 down to row 1.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		sb.WriteString("  ")
		for col := range Size {
			sb.WriteByte(' ')
			sb.WriteString(b.cells[MustSq(col, row)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
