package engine

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// IsStuck reports whether the side to move has no legal move.
// The answer is computed once and shared between goroutines.
func (p *Position) IsStuck() bool {
	p.stuckOnce.Do(func() {
		p.stuck = !p.hasLegalMove()
	})
	return p.stuck
}

// hasLegalMove stops at the first piece with a legal move.
func (p *Position) hasLegalMove() bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if pc := p.board[sq]; !pc.IsEmpty() && pc.Side == p.turn {
			if len(p.LegalMoves(sq)) > 0 {
				return true
			}
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is mated.
func (p *Position) IsCheckmate() bool {
	return p.IsStuck() && p.InCheck()
}

// IsStalemate returns true if the side to move has no move and is not in check.
func (p *Position) IsStalemate() bool {
	return p.IsStuck() && !p.InCheck()
}
