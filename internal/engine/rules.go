package engine

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// IsWinnable reports whether either side still has mating material.
// It is false only when at most two non-king pieces remain, none of them a
// pawn, rook or queen, and either:
//   - at most one minor piece is left,
//   - the two minors are knights of the same side, or
//   - the two minors are bishops standing on squares of one colour.
func (p *Position) IsWinnable() bool {
	var minors []chess.Piece
	for _, pc := range p.board {
		if pc.IsEmpty() || pc.Kind == chess.King {
			continue
		}
		switch pc.Kind {
		case chess.Pawn, chess.Rook, chess.Queen:
			return true
		}
		minors = append(minors, pc)
		if len(minors) > 2 {
			return true
		}
	}

	if len(minors) <= 1 {
		return false
	}
	a, b := minors[0], minors[1]
	if a.Kind == chess.Knight && b.Kind == chess.Knight && a.Side == b.Side {
		return false
	}
	if a.Kind == chess.Bishop && b.Kind == chess.Bishop && a.Square.IsLight() == b.Square.IsLight() {
		return false
	}
	return true
}

// Material returns the summed piece values of one side, king excluded.
func (p *Position) Material(side chess.Side) float64 {
	total := 0.0
	for _, pc := range p.board {
		if !pc.IsEmpty() && pc.Side == side && pc.Kind != chess.King {
			total += pc.Kind.Value()
		}
	}
	return total
}
