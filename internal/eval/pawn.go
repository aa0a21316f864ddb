package eval

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// Pawn structure penalties.
const (
	doubledPenalty      = 0.25
	isolatedPenalty     = 0.25
	isolatedEdgePenalty = 0.12
	backwardPenalty     = 0.1
	backwardEdgePenalty = 0.05
)

// pawnAdvance is the advancement bonus indexed by relative rank and file.
var pawnAdvance = [8][8]float64{
	{},
	{},
	{0.07, 0.1, 0.1, 0.14, 0.14, 0.1, 0.1, 0.07},
	{0.07, 0.1, 0.15, 0.2, 0.2, 0.15, 0.1, 0.07},
	{0.12, 0.15, 0.18, 0.24, 0.24, 0.18, 0.15, 0.12},
	{0.18, 0.18, 0.21, 0.21, 0.21, 0.21, 0.18, 0.18},
	{0.6, 0.45, 0.3, 0.3, 0.3, 0.3, 0.45, 0.6},
	{},
}

// isEdgeFile reports whether file is the a- or h-file.
func isEdgeFile(file int) bool {
	return file == 0 || file == chess.BoardSize-1
}

// pawnPoints is the advancement bonus less structure penalties.
func pawnPoints(pawn chess.Piece, friends []chess.Piece) float64 {
	file := pawn.Square.File()
	points := pawnAdvance[pawn.RelativeRank()][file]

	if isDoubled(pawn, friends) {
		points -= doubledPenalty
	}
	switch {
	case isIsolated(pawn, friends):
		if isEdgeFile(file) {
			points -= isolatedEdgePenalty
		} else {
			points -= isolatedPenalty
		}
	case isBackward(pawn, friends):
		if isEdgeFile(file) {
			points -= backwardEdgePenalty
		} else {
			points -= backwardPenalty
		}
	}
	return points
}

// isDoubled reports another friendly pawn on the same file.
func isDoubled(pawn chess.Piece, friends []chess.Piece) bool {
	for _, other := range friends {
		if other.Square != pawn.Square && other.Square.File() == pawn.Square.File() {
			return true
		}
	}
	return false
}

// isIsolated reports no friendly pawn on either adjacent file.
func isIsolated(pawn chess.Piece, friends []chess.Piece) bool {
	for _, other := range friends {
		if abs(other.Square.File()-pawn.Square.File()) == 1 {
			return false
		}
	}
	return true
}

// isBackward reports that every friendly pawn on an adjacent file is
// further advanced.
func isBackward(pawn chess.Piece, friends []chess.Piece) bool {
	for _, other := range friends {
		if abs(other.Square.File()-pawn.Square.File()) == 1 && other.RelativeRank() <= pawn.RelativeRank() {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
