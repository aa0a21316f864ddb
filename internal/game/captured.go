package game

import (
	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
)

// fullSet is the army each side starts with, king excluded.
var fullSet = [chess.NumKinds]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
}

// listOrder is the order captured pieces are listed in.
var listOrder = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// Missing lists the pieces side has lost relative to a full army, most
// valuable first. Surplus pieces of a kind are counted as promoted pawns.
func Missing(pos *engine.Position, side chess.Side) []chess.Piece {
	var present [chess.NumKinds]int
	for _, pc := range pos.Pieces(side) {
		present[pc.Kind]++
	}

	promoted := 0
	for _, k := range listOrder[:4] {
		if extra := present[k] - fullSet[k]; extra > 0 {
			promoted += extra
		}
	}

	var out []chess.Piece
	for _, k := range listOrder {
		n := fullSet[k] - present[k]
		if k == chess.Pawn {
			n -= promoted
		}
		for i := 0; i < n; i++ {
			out = append(out, chess.Piece{Kind: k, Side: side, Square: chess.NoSquare})
		}
	}
	return out
}
