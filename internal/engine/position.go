// Package engine implements chess legality on an immutable mailbox position.
package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// board is a square-indexed mailbox. Empty squares hold the zero Piece.
type board [chess.NumSquares]chess.Piece

// at returns the piece on sq; off-board squares read as empty.
func (b *board) at(sq chess.Square) chess.Piece {
	if !sq.Valid() {
		return chess.Piece{}
	}
	return b[sq]
}

// empty reports whether sq is a board square with nothing on it.
func (b *board) empty(sq chess.Square) bool {
	return sq.Valid() && b[sq].IsEmpty()
}

// Position is an immutable chess position.
// Everything a move needs for legality is cached at construction; a
// Position is safe for concurrent use once built.
type Position struct {
	board  board
	turn   chess.Side
	epPawn chess.Square // pawn that double-advanced on the previous ply
	kings  [2]chess.Square

	checkers    []chess.Piece
	castleShort bool
	castleLong  bool

	stuckOnce sync.Once
	stuck     bool
}

// sideIndex maps a side onto an array slot.
func sideIndex(s chess.Side) int {
	if s == chess.White {
		return 0
	}
	return 1
}

// NewPosition builds a position from a set of pieces.
// epPawn is the opponent pawn that just advanced two squares, or NoSquare.
func NewPosition(pieces []chess.Piece, turn chess.Side, epPawn chess.Square) (*Position, error) {
	if turn != chess.White && turn != chess.Black {
		return nil, fmt.Errorf("side to move %d: %w", turn, errors.ErrInvalidPosition)
	}
	var b board
	kingCount := [2]int{}
	for _, pc := range pieces {
		if !pc.Square.Valid() {
			return nil, fmt.Errorf("%v %v off the board: %w", pc.Side, pc.Kind, errors.ErrInvalidPosition)
		}
		if pc.Kind <= chess.NoKind || pc.Kind >= chess.NumKinds || (pc.Side != chess.White && pc.Side != chess.Black) {
			return nil, fmt.Errorf("bad piece on %v: %w", pc.Square, errors.ErrInvalidPosition)
		}
		if !b[pc.Square].IsEmpty() {
			return nil, fmt.Errorf("two pieces on %v: %w", pc.Square, errors.ErrInvalidPosition)
		}
		if pc.Kind == chess.Pawn && (pc.Square.Rank() == 0 || pc.Square.Rank() == 7) {
			return nil, fmt.Errorf("pawn on %v: %w", pc.Square, errors.ErrInvalidPosition)
		}
		if pc.Kind == chess.King {
			kingCount[sideIndex(pc.Side)]++
		}
		b[pc.Square] = pc
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		switch n := kingCount[sideIndex(side)]; {
		case n == 0:
			return nil, fmt.Errorf("%v: %w", side, errors.ErrMissingKing)
		case n > 1:
			return nil, fmt.Errorf("%v has %d kings: %w", side, n, errors.ErrInvalidPosition)
		}
	}
	if epPawn != chess.NoSquare {
		pawn := b.at(epPawn)
		if pawn.Kind != chess.Pawn || pawn.Side != turn.Opposite() ||
			pawn.RelativeRank() != 3 {
			return nil, fmt.Errorf("en passant pawn on %v: %w", epPawn, errors.ErrInvalidPosition)
		}
	}

	pos := newPosition(&b, turn, epPawn)
	opponent := turn.Opposite()
	if pos.board.attacked(pos.KingSquare(opponent), turn) {
		return nil, fmt.Errorf("%v king can be captured: %w", opponent, errors.ErrInvalidPosition)
	}
	return pos, nil
}

// newPosition computes the caches for an already consistent board.
func newPosition(b *board, turn chess.Side, epPawn chess.Square) *Position {
	p := &Position{board: *b, turn: turn, epPawn: epPawn}
	p.kings = [2]chess.Square{chess.NoSquare, chess.NoSquare}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if pc := p.board[sq]; pc.Kind == chess.King {
			p.kings[sideIndex(pc.Side)] = sq
		}
	}
	p.checkers = p.board.attackers(p.KingSquare(turn), turn.Opposite())
	p.castleShort = p.canCastle(true)
	p.castleLong = p.canCastle(false)
	return p
}

// StartingPosition returns the standard initial position.
func StartingPosition() *Position {
	pos, err := ParseFEN(InitialFEN)
	if err != nil {
		panic("engine: initial FEN does not parse: " + err.Error())
	}
	return pos
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Side {
	return p.turn
}

// At returns the piece on sq and whether there is one.
func (p *Position) At(sq chess.Square) (chess.Piece, bool) {
	pc := p.board.at(sq)
	return pc, !pc.IsEmpty()
}

// Pieces returns the pieces of one side in square order.
func (p *Position) Pieces(side chess.Side) []chess.Piece {
	var pieces []chess.Piece
	for _, pc := range p.board {
		if !pc.IsEmpty() && pc.Side == side {
			pieces = append(pieces, pc)
		}
	}
	return pieces
}

// AllPieces returns every piece on the board in square order.
func (p *Position) AllPieces() []chess.Piece {
	var pieces []chess.Piece
	for _, pc := range p.board {
		if !pc.IsEmpty() {
			pieces = append(pieces, pc)
		}
	}
	return pieces
}

// KingSquare returns where the side's king stands.
func (p *Position) KingSquare(side chess.Side) chess.Square {
	return p.kings[sideIndex(side)]
}

// EnPassantPawn returns the pawn that may be captured en passant, or NoSquare.
func (p *Position) EnPassantPawn() chess.Square {
	return p.epPawn
}

// EnPassantTarget returns the square a capturing pawn would land on, or NoSquare.
func (p *Position) EnPassantTarget() chess.Square {
	if p.epPawn == chess.NoSquare {
		return chess.NoSquare
	}
	return p.epPawn.Offset(p.turn.Sign(), 0)
}

// Checkers returns the enemy pieces giving check to the side to move.
func (p *Position) Checkers() []chess.Piece {
	return append([]chess.Piece(nil), p.checkers...)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return len(p.checkers) > 0
}

// CanCastleShort reports whether the side to move may castle king side now.
func (p *Position) CanCastleShort() bool {
	return p.castleShort
}

// CanCastleLong reports whether the side to move may castle queen side now.
func (p *Position) CanCastleLong() bool {
	return p.castleLong
}

// String renders the board from White's side, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(chess.RankDigit(rank))
		sb.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			pc := p.board[chess.Sq(rank, file)]
			if pc.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(pc.Symbol())
			}
			if file < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%v to move\n", p.turn)
	return sb.String()
}
