package eval

import (
	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
)

// isHeavy reports a rook or queen.
func isHeavy(pc chess.Piece) bool {
	return pc.Kind == chess.Rook || pc.Kind == chess.Queen
}

// rookPoints rewards rooks on the sixth and seventh ranks, on open files, or
// doubled with other heavy pieces. A file blocked by an own pawn earns no
// file bonus.
func rookPoints(pos *engine.Position, rook chess.Piece, own, enemy army) float64 {
	rel := rook.RelativeRank()
	if rel == 5 || rel == 6 {
		return advancedRookPoints(pos, rook, own, enemy)
	}

	bonus := 0.0
	for _, pc := range own.pieces {
		if pc.Square != rook.Square && isHeavy(pc) &&
			pc.Square.File() == rook.Square.File() && pos.Attacks(pc.Square, rook.Square) {
			bonus += 0.25
		}
	}

	// Own pawns ahead close the file: the rook keeps only its doubling bonus.
	for _, pawn := range own.pawns {
		if pawn.Square.File() == rook.Square.File() && pawn.RelativeRank() > rel {
			return bonus
		}
	}

	blockers := 0
	for _, pawn := range enemy.pawns {
		if pawn.Square.File() == rook.Square.File() {
			blockers++
		}
	}
	switch {
	case blockers > 1:
		return bonus + 0.4
	case blockers == 1:
		return bonus + 0.15
	default:
		return bonus + 0.6
	}
}

// advancedRookPoints scores a rook that has reached the enemy's pawns.
func advancedRookPoints(pos *engine.Position, rook chess.Piece, own, enemy army) float64 {
	bonus := 0.0
	for _, pc := range own.pieces {
		if pc.Square == rook.Square || !isHeavy(pc) {
			continue
		}
		switch {
		case pc.Square.Rank() == rook.Square.Rank():
			bonus += 0.6
		case pc.Square.File() == rook.Square.File() && pos.Attacks(pc.Square, rook.Square):
			bonus += 0.4
		}
	}

	targets := 0
	for _, pawn := range enemy.pawns {
		if pawn.Square.Rank() == rook.Square.Rank() {
			targets++
		}
	}
	switch {
	case targets > 3:
		return bonus + 1.0
	case targets > 2:
		return bonus + 0.8
	case targets > 1:
		return bonus + 0.6
	case targets > 0:
		return bonus + 0.3
	}

	for _, pawn := range enemy.pawns {
		if pawn.Square.File() == rook.Square.File() {
			return 0.2
		}
	}
	for _, pawn := range own.pawns {
		if pawn.Square.File() == rook.Square.File() {
			return 0
		}
	}
	return bonus
}
