// Package game keeps the bookkeeping of a game in progress: the move
// history, the repetition and fifty-move counters and the end-of-game
// decision.
package game

import (
	"fmt"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/hashing"
	"github.com/bhataktaBhai/ShallowRed/internal/notation"
)

// FiftyMovePlies is the number of plies without a pawn move or capture
// that draws the game.
const FiftyMovePlies = 100

// Record is one played move.
type Record struct {
	Ply      int // 1-based
	Side     chess.Side
	Move     chess.Move
	Piece    chess.PieceKind // kind that moved, before any promotion
	SAN      string
	Captured chess.Piece // Kind is NoKind when nothing was taken
	Comment  string
}

// Game is a game in progress from some start position.
type Game struct {
	start       *engine.Position
	startClocks engine.Clocks
	pos         *engine.Position
	history     []Record
	repetitions *hashing.RepetitionTable
	halfmoves   int
	maxPlies    int
	status      Status
}

// Option configures a Game.
type Option func(*Game)

// WithMaxPlies ends the game once n plies have been played. Zero means
// no limit.
func WithMaxPlies(n int) Option {
	return func(g *Game) {
		if n >= 0 {
			g.maxPlies = n
		}
	}
}

// WithClocks carries over the move counters of a FEN start position.
func WithClocks(c engine.Clocks) Option {
	return func(g *Game) {
		if c.HalfmoveClock >= 0 {
			g.halfmoves = c.HalfmoveClock
		}
		if c.FullmoveNumber >= 1 {
			g.startClocks = c
		}
	}
}

// New starts a game from pos.
func New(pos *engine.Position, opts ...Option) *Game {
	g := &Game{
		start:       pos,
		startClocks: engine.Clocks{FullmoveNumber: 1},
		pos:         pos,
		repetitions: hashing.NewRepetitionTable(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.startClocks.HalfmoveClock = g.halfmoves
	g.repetitions.Add(pos)
	g.status = g.decide()
	return g
}

// Position returns the current position.
func (g *Game) Position() *engine.Position {
	return g.pos
}

// Start returns the position the game began from.
func (g *Game) Start() *engine.Position {
	return g.start
}

// StartClocks returns the move counters of the start position.
func (g *Game) StartClocks() engine.Clocks {
	return g.startClocks
}

// History returns the moves played so far.
func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

// Ply returns the number of plies played.
func (g *Game) Ply() int {
	return len(g.history)
}

// HalfmoveClock returns the plies since the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmoves
}

// Clocks returns the current FEN move counters.
func (g *Game) Clocks() engine.Clocks {
	full := g.startClocks.FullmoveNumber
	plies := len(g.history)
	if g.start.Turn() == chess.Black {
		plies++
	}
	return engine.Clocks{HalfmoveClock: g.halfmoves, FullmoveNumber: full + plies/2}
}

// FEN returns the current position with its move counters.
func (g *Game) FEN() string {
	return g.pos.FENWithClocks(g.Clocks())
}

// Repetitions returns how often the current position has occurred since
// the last irreversible move.
func (g *Game) Repetitions() int {
	return g.repetitions.Count(g.pos)
}

// Status returns the state of the game.
func (g *Game) Status() Status {
	return g.status
}

// Result returns the PGN result string.
func (g *Game) Result() string {
	return result(g.status, g.pos.Turn())
}

// Play makes m for the side to move.
func (g *Game) Play(m chess.Move) error {
	ply := len(g.history) + 1
	side := g.pos.Turn()
	if g.status.Over() {
		return &errors.MoveError{Err: errors.ErrGameOver, Ply: ply, MoveText: m.String(),
			Side: side.String(), Detail: g.status.String()}
	}

	next, err := g.pos.Move(m)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: ply, MoveText: m.String(), Side: side.String()}
	}

	mover, _ := g.pos.At(m.From)
	captured, _ := g.pos.Captured(m)
	g.history = append(g.history, Record{
		Ply:      ply,
		Side:     side,
		Move:     m,
		Piece:    mover.Kind,
		SAN:      notation.SAN(g.pos, m),
		Captured: captured,
	})

	if mover.Kind == chess.Pawn || captured.Kind != chess.NoKind {
		g.halfmoves = 0
		g.repetitions.Reset()
	} else {
		g.halfmoves++
	}
	g.pos = next
	g.repetitions.Add(next)
	g.status = g.decide()
	return nil
}

// Annotate attaches a comment to the last move played.
func (g *Game) Annotate(comment string) {
	if n := len(g.history); n > 0 {
		g.history[n-1].Comment = comment
	}
}

// PlayText parses text as a move request and plays it.
func (g *Game) PlayText(text string) (chess.Move, error) {
	if g.status.Over() {
		return chess.NullMove, &errors.MoveError{Err: errors.ErrGameOver, Ply: len(g.history) + 1,
			MoveText: text, Side: g.pos.Turn().String(), Detail: g.status.String()}
	}
	m, err := notation.ParseMove(g.pos, text)
	if err != nil {
		var merr *errors.MoveError
		if errors.As(err, &merr) {
			merr.Ply = len(g.history) + 1
		}
		return chess.NullMove, err
	}
	return m, g.Play(m)
}

// decide works out the status of the current position.
func (g *Game) decide() Status {
	switch {
	case g.pos.IsCheckmate():
		return Checkmate
	case g.pos.IsStalemate():
		return Stalemate
	case !g.pos.IsWinnable():
		return InsufficientMaterial
	case g.halfmoves >= FiftyMovePlies:
		return FiftyMoveRule
	case g.repetitions.Count(g.pos) >= 3:
		return ThreefoldRepetition
	case g.maxPlies > 0 && len(g.history) >= g.maxPlies:
		return MaxPlies
	}
	return Ongoing
}

// Summary describes how the game ended, e.g. "0-1 (checkmate)".
func (g *Game) Summary() string {
	if !g.status.Over() {
		return ResultOngoing
	}
	return fmt.Sprintf("%s (%s)", g.Result(), g.status)
}
