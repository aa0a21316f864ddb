package engine

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// Castling files.
const (
	kingFile      = 4
	shortRookFile = 7
	longRookFile  = 0
)

// kingMoves returns the king's adjacent safe squares and castling moves.
func (p *Position) kingMoves(king chess.Piece) []chess.Move {
	// The king's own square is treated as empty so it cannot hide
	// behind itself from a slider.
	without := p.board
	without[king.Square] = chess.Piece{}
	enemy := king.Side.Opposite()

	var moves []chess.Move
	for _, step := range chess.King.Steps() {
		dst := king.Square.Offset(step.Rank, step.File)
		if !dst.Valid() {
			continue
		}
		if other := p.board[dst]; !other.IsEmpty() && other.Side == king.Side {
			continue
		}
		if without.attacked(dst, enemy) {
			continue
		}
		moves = append(moves, chess.Move{From: king.Square, To: dst})
	}

	if king.Side == p.turn {
		home := king.Side.HomeRank()
		if p.castleShort {
			moves = append(moves, chess.Move{From: king.Square, To: chess.Sq(home, kingFile+2)})
		}
		if p.castleLong {
			moves = append(moves, chess.Move{From: king.Square, To: chess.Sq(home, kingFile-2)})
		}
	}
	return moves
}

// canCastle decides castling availability for the side to move.
func (p *Position) canCastle(short bool) bool {
	if p.InCheck() {
		return false
	}
	home := p.turn.HomeRank()
	kingSq := chess.Sq(home, kingFile)
	king := p.board[kingSq]
	if king.Kind != chess.King || king.Side != p.turn || king.HasMoved {
		return false
	}

	rookFile, dir := shortRookFile, 1
	if !short {
		rookFile, dir = longRookFile, -1
	}
	rookSq := chess.Sq(home, rookFile)
	rook := p.board[rookSq]
	if rook.Kind != chess.Rook || rook.Side != p.turn || rook.HasMoved {
		return false
	}

	for _, sq := range chess.Between(kingSq, rookSq) {
		if !p.board[sq].IsEmpty() {
			return false
		}
	}

	// The transit square and the destination must not be attacked.
	enemy := p.turn.Opposite()
	for i := 1; i <= 2; i++ {
		if p.board.attacked(kingSq.Offset(0, dir*i), enemy) {
			return false
		}
	}
	return true
}

// castlingRookMove returns the rook relocation implied by a king move of
// two files, if any.
func castlingRookMove(king chess.Piece, m chess.Move) (from, to chess.Square, ok bool) {
	if king.Kind != chess.King {
		return chess.NoSquare, chess.NoSquare, false
	}
	df := m.To.File() - m.From.File()
	home := m.From.Rank()
	switch df {
	case 2:
		return chess.Sq(home, shortRookFile), chess.Sq(home, kingFile+1), true
	case -2:
		return chess.Sq(home, longRookFile), chess.Sq(home, kingFile-1), true
	default:
		return chess.NoSquare, chess.NoSquare, false
	}
}

// CastlingRights reports the unmoved king/rook pairs of a side. These are
// rights, not availability: they ignore checks, attacks and blockers.
func (p *Position) CastlingRights(side chess.Side) (short, long bool) {
	home := side.HomeRank()
	king := p.board[chess.Sq(home, kingFile)]
	if king.Kind != chess.King || king.Side != side || king.HasMoved {
		return false, false
	}
	unmovedRook := func(file int) bool {
		pc := p.board[chess.Sq(home, file)]
		return pc.Kind == chess.Rook && pc.Side == side && !pc.HasMoved
	}
	return unmovedRook(shortRookFile), unmovedRook(longRookFile)
}
