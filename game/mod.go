package game

// Size is the number of squares on a side of the board.
const Size = 10

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// WinningValue is the magnitude of a decided position: positive when White
// has won, negative when Black has.
const WinningValue = 1<<31 - 2

// Evaluate scores a board from White's perspective: positive values favor
// White, negative favor Black, and +/-WinningValue marks a decided game.
type Evaluate func(*Board) int
