package engine

import (
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// Update reports a move applied to the canonical board.
type Update struct {
	Move  game.Move
	Side  game.Piece // Side that played Move
	Hash  game.StateHash
	Board *game.Board // Position after Move, owned by the receiver
}

type localEngine struct {
	board    *game.Board
	agents   [2]agent.Agent // White, Black
	updates  chan<- Update
	maxTurns int
}

// WithUpdates sends an Update after every move. Updates are dropped
// while the channel is full so observers never stall a game.
func WithUpdates(updates chan<- Update) Option {
	return func(e *localEngine) {
		e.updates = updates
	}
}

// WithStartingPosition starts the game from a copy of board instead of
// the initial layout.
func WithStartingPosition(board *game.Board) Option {
	return func(e *localEngine) {
		if board != nil {
			e.board = board.Copy()
		}
	}
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *localEngine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

// LocalEngine returns an engine playing agents[0] as White against
// agents[1] as Black, by default from the initial layout.
func LocalEngine(agents []agent.Agent, options ...Option) Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &localEngine{
		board:    game.NewBoard(),
		agents:   [2]agent.Agent{agents[0], agents[1]},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a side cannot move. The winner is
// game.Empty if the turn limit was hit first.
func (e *localEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.board.Turn().Name(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.board.Turn().Name())

	for turn := 1; e.board.Winner() == game.Empty && turn <= e.maxTurns; turn++ {
		side := e.board.Turn()

		move, searchMetric := e.agentFor(side).FindMove(e.board.Copy())
		move = e.validate(move, side)

		e.board.MakeMove(move)
		log.Debug().Int("turn", turn).Str("side", side.Name()).Stringer("move", move).Msg("applied move")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.Name(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.publish(Update{
			Move:  move,
			Side:  side,
			Hash:  e.board.Hash(),
			Board: e.board.Copy(),
		})
	}

	winner := e.board.Winner()
	if winner != game.Empty {
		log.Info().Msgf("game ended after %d moves with winner: %s", e.board.NumMoves(), winner.Name())
	} else {
		log.Info().Msgf("stopped after %d turns with no winner", e.maxTurns)
	}

	gameMetric.Winner = winner.Name()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.board.NumMoves()
	return winner, gameMetric, moveMetrics
}

func (e *localEngine) agentFor(side game.Piece) agent.Agent {
	if side == game.Black {
		return e.agents[1]
	}
	return e.agents[0]
}

// validate replaces an illegal move with the first legal one. The loop
// only asks for a move while side has one.
func (e *localEngine) validate(move game.Move, side game.Piece) game.Move {
	if e.board.IsLegal(move) {
		return move
	}
	for fallback := range e.board.LegalMoves(side) {
		log.Warn().Str("side", side.Name()).Stringer("move", move).Stringer("fallback", fallback).
			Msg("agent returned an illegal move")
		return fallback
	}
	panic("no legal moves at all")
}

func (e *localEngine) publish(u Update) {
	if e.updates == nil {
		return
	}
	select {
	case e.updates <- u:
	default:
		log.Debug().Uint64("hash", uint64(u.Hash)).Msg("dropped update")
	}
}
