package eval

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// Outpost status of a knight.
const (
	outpostNone    = 0 // an enemy pawn on an adjacent file can still chase it
	outpostSafe    = 1
	outpostBlocked = 2 // safe, and an enemy pawn ahead on its own file shields it
)

// outpostStatus grades how safe a knight is from enemy pawns.
func outpostStatus(knight chess.Piece, enemyPawns []chess.Piece) int {
	status := outpostSafe
	rel := knight.RelativeRank()
	for _, pawn := range enemyPawns {
		ahead := knight.Side.RelativeRank(pawn.Square.Rank()) > rel
		if !ahead {
			continue
		}
		switch abs(pawn.Square.File() - knight.Square.File()) {
		case 1:
			return outpostNone
		case 0:
			status = outpostBlocked
		}
	}
	return status
}

// isPawnSupported reports a friendly pawn diagonally behind the knight.
func isPawnSupported(knight chess.Piece, friendlyPawns []chess.Piece) bool {
	for _, pawn := range friendlyPawns {
		if pawn.RelativeRank() == knight.RelativeRank()-1 &&
			abs(pawn.Square.File()-knight.Square.File()) == 1 {
			return true
		}
	}
	return false
}

// knightPoints rewards advanced, pawn-proof, supported knights.
func knightPoints(knight chess.Piece, friendlyPawns, enemyPawns []chess.Piece) float64 {
	status := outpostStatus(knight, enemyPawns)
	edge := isEdgeFile(knight.Square.File())

	switch knight.RelativeRank() {
	case 0:
		return 0
	case 1:
		return 0.1
	case 2:
		if edge {
			return 0.13
		}
		return 0.2
	case 3, 4:
		switch {
		case status > outpostNone && edge:
			return 0.18
		case status > outpostNone:
			return 0.3
		case edge:
			return 0.15
		default:
			return 0.22
		}
	case 5, 6:
		if isPawnSupported(knight, friendlyPawns) {
			switch status {
			case outpostBlocked:
				return 1.0
			case outpostSafe:
				return 0.8
			default:
				return 0.5
			}
		}
		switch status {
		case outpostBlocked:
			return 0.75
		case outpostSafe:
			return 0.55
		default:
			return 0.3
		}
	default:
		return 0.3
	}
}
