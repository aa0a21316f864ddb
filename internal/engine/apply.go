package engine

import (
	"fmt"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// Move returns the position after m. The receiver is never modified.
// It fails with ErrNoPiece when the origin holds no piece of the side to
// move, and with ErrIllegalMove when m is not one of that piece's legal moves.
func (p *Position) Move(m chess.Move) (*Position, error) {
	pc := p.board.at(m.From)
	if pc.IsEmpty() || pc.Side != p.turn {
		return nil, fmt.Errorf("%v: %w", m.From, errors.ErrNoPiece)
	}
	if !p.IsLegal(m) {
		return nil, fmt.Errorf("%v: %w", m, errors.ErrIllegalMove)
	}
	return p.Apply(m), nil
}

// Apply plays m without checking legality. m must come from LegalMoves.
func (p *Position) Apply(m chess.Move) *Position {
	b := p.board
	mover := b[m.From]
	b[m.From] = chess.Piece{}

	if p.isEnPassantCapture(mover, m.To) {
		b[p.epPawn] = chess.Piece{}
	}
	if from, to, ok := castlingRookMove(mover, m); ok {
		b[to] = b[from].MovedTo(to)
		b[from] = chess.Piece{}
	}

	moved := mover.MovedTo(m.To)
	if m.Promotion != chess.NoKind {
		moved.Kind = m.Promotion
	}
	b[m.To] = moved

	ep := chess.NoSquare
	if mover.Kind == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		ep = m.To
	}
	return newPosition(&b, p.turn.Opposite(), ep)
}

// IsCapture reports whether m takes a piece, en passant included.
func (p *Position) IsCapture(m chess.Move) bool {
	mover := p.board.at(m.From)
	if p.isEnPassantCapture(mover, m.To) {
		return true
	}
	target := p.board.at(m.To)
	return !target.IsEmpty() && target.Side != mover.Side
}

// Captured returns the piece m takes, if any.
func (p *Position) Captured(m chess.Move) (chess.Piece, bool) {
	mover := p.board.at(m.From)
	if p.isEnPassantCapture(mover, m.To) {
		return p.board[p.epPawn], true
	}
	target := p.board.at(m.To)
	if target.IsEmpty() || target.Side == mover.Side {
		return chess.Piece{}, false
	}
	return target, true
}
