// Package eval scores positions statically: material plus a positional
// bonus for pawns, knights and rooks.
package eval

import (
	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
)

// MateScore is returned for a checkmated side to move.
const MateScore = 100000.0

// Evaluate scores pos from the point of view of the side that just moved:
// the opponent's total minus the side to move's total. A checkmate scores
// +MateScore.
func Evaluate(pos *engine.Position) float64 {
	if pos.IsCheckmate() {
		return MateScore
	}
	mover := pos.Turn()
	return Score(pos, mover.Opposite()) - Score(pos, mover)
}

// army splits one side's pieces for the positional terms.
type army struct {
	pawns  []chess.Piece
	pieces []chess.Piece // everything but pawns, king included
}

func newArmy(pos *engine.Position, side chess.Side) army {
	var a army
	for _, pc := range pos.Pieces(side) {
		if pc.Kind == chess.Pawn {
			a.pawns = append(a.pawns, pc)
		} else {
			a.pieces = append(a.pieces, pc)
		}
	}
	return a
}

// Score returns one side's material plus positional points. The king's
// sentinel value is not summed.
func Score(pos *engine.Position, side chess.Side) float64 {
	own := newArmy(pos, side)
	enemy := newArmy(pos, side.Opposite())

	total := 0.0
	for _, pawn := range own.pawns {
		total += chess.Pawn.Value() + pawnPoints(pawn, own.pawns)
	}
	for _, pc := range own.pieces {
		switch pc.Kind {
		case chess.King:
			continue
		case chess.Knight:
			total += knightPoints(pc, own.pawns, enemy.pawns)
		case chess.Rook:
			total += rookPoints(pos, pc, own, enemy)
		}
		// Bishops and queens score material only.
		total += pc.Kind.Value()
	}
	return total
}
