// meta/meta.go
package meta

// DEPTH defines the default search depth in plies.
const DEPTH = 1

// GO_ROUTINES defines the default number of goroutines for a search.
const GO_ROUTINES = 1

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// MAX_TURNS bounds a game. Every move places a spear, so a game on a
// 10x10 board with 8 queens ends within 92 moves.
const MAX_TURNS = 92
