package engine

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// pawnDestinations returns advances onto empty squares, captures of enemy
// pieces, and the en passant target when available.
func (p *Position) pawnDestinations(pc chess.Piece) []chess.Square {
	var squares []chess.Square
	fwd := pc.Side.Sign()

	one := pc.Square.Offset(fwd, 0)
	if p.board.empty(one) {
		squares = append(squares, one)
		two := one.Offset(fwd, 0)
		if pc.Square.Rank() == pc.Side.PawnRank() && p.board.empty(two) {
			squares = append(squares, two)
		}
	}

	target := p.EnPassantTarget()
	for _, df := range []int{-1, 1} {
		dst := pc.Square.Offset(fwd, df)
		if !dst.Valid() {
			continue
		}
		other := p.board[dst]
		if !other.IsEmpty() && other.Side != pc.Side {
			squares = append(squares, dst)
		} else if dst == target {
			squares = append(squares, dst)
		}
	}
	return squares
}

// isEnPassantCapture reports whether pc moving to dst takes en passant.
func (p *Position) isEnPassantCapture(pc chess.Piece, dst chess.Square) bool {
	return pc.Kind == chess.Pawn && dst != chess.NoSquare && dst == p.EnPassantTarget() &&
		dst.File() != pc.Square.File()
}

// enPassantSafe applies an en passant capture and checks the mover's king.
func (p *Position) enPassantSafe(pc chess.Piece, dst chess.Square) bool {
	b := p.board
	b[pc.Square] = chess.Piece{}
	b[p.epPawn] = chess.Piece{}
	b[dst] = pc.MovedTo(dst)
	return !b.attacked(p.KingSquare(pc.Side), pc.Side.Opposite())
}
