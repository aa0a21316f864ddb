package engine

import (
	"hash/fnv"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
)

// enPassantEligible reports whether a pawn of the side to move stands
// beside the pawn that just advanced two squares.
func (p *Position) enPassantEligible() bool {
	if p.epPawn == chess.NoSquare {
		return false
	}
	for _, df := range []int{-1, 1} {
		pc := p.board.at(p.epPawn.Offset(0, df))
		if pc.Kind == chess.Pawn && pc.Side == p.turn {
			return true
		}
	}
	return false
}

// Equal reports whether two positions are the same for repetition
// purposes: side to move, castling availability, en passant eligibility
// and piece placement. HasMoved flags are not compared.
func (p *Position) Equal(other *Position) bool {
	if p == other {
		return true
	}
	if other == nil || p.turn != other.turn ||
		p.castleShort != other.castleShort || p.castleLong != other.castleLong ||
		p.enPassantEligible() != other.enPassantEligible() {
		return false
	}
	for sq := range p.board {
		a, b := p.board[sq], other.board[sq]
		if a.Kind != b.Kind || (a.Kind != chess.NoKind && a.Side != b.Side) {
			return false
		}
	}
	return true
}

// Key returns a 64-bit FNV-1a hash of the fields Equal compares, so
// equal positions always share a key.
func (p *Position) Key() uint64 {
	h := fnv.New64a()
	var buf [chess.NumSquares + 4]byte
	buf[0] = byte(p.turn)
	buf[1] = boolByte(p.castleShort)
	buf[2] = boolByte(p.castleLong)
	buf[3] = boolByte(p.enPassantEligible())
	for sq, pc := range p.board {
		if !pc.IsEmpty() {
			buf[4+sq] = pc.Symbol()
		}
	}
	h.Write(buf[:])
	return h.Sum64()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
