package engine

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// Ray directions walked outward from a target square.
var (
	diagonalDirs = []chess.Step{{Rank: 1, File: 1}, {Rank: 1, File: -1}, {Rank: -1, File: 1}, {Rank: -1, File: -1}}
	straightDirs = []chess.Step{{Rank: 1, File: 0}, {Rank: -1, File: 0}, {Rank: 0, File: 1}, {Rank: 0, File: -1}}
)

// Attackers returns every piece of bySide that attacks sq.
func (p *Position) Attackers(sq chess.Square, bySide chess.Side) []chess.Piece {
	return p.board.attackers(sq, bySide)
}

// Attacked reports whether any piece of bySide attacks sq.
func (p *Position) Attacked(sq chess.Square, bySide chess.Side) bool {
	return p.board.attacked(sq, bySide)
}

// Attacks reports whether the piece on from attacks dst, taking blockers
// into account.
func (p *Position) Attacks(from, dst chess.Square) bool {
	pc := p.board.at(from)
	if pc.IsEmpty() {
		return false
	}
	return p.board.pieceAttacks(pc, dst)
}

// pieceAttacks is MightAttack plus an unobstructed path for sliders.
func (b *board) pieceAttacks(pc chess.Piece, dst chess.Square) bool {
	if !pc.MightAttack(dst) {
		return false
	}
	if !pc.Kind.Sliding() {
		return true
	}
	for _, sq := range chess.Between(pc.Square, dst) {
		if !b[sq].IsEmpty() {
			return false
		}
	}
	return true
}

func (b *board) attacked(sq chess.Square, bySide chess.Side) bool {
	found := false
	b.scanAttackers(sq, bySide, func(chess.Piece) bool {
		found = true
		return false
	})
	return found
}

func (b *board) attackers(sq chess.Square, bySide chess.Side) []chess.Piece {
	var found []chess.Piece
	b.scanAttackers(sq, bySide, func(pc chess.Piece) bool {
		found = append(found, pc)
		return true
	})
	return found
}

// scanAttackers walks outward from sq and calls visit for every attacker
// of bySide until visit returns false.
func (b *board) scanAttackers(sq chess.Square, bySide chess.Side, visit func(chess.Piece) bool) {
	if !sq.Valid() {
		return
	}

	// Pawns attack from one rank behind, seen from their own side.
	for _, df := range []int{-1, 1} {
		pc := b.at(sq.Offset(-bySide.Sign(), df))
		if pc.Kind == chess.Pawn && pc.Side == bySide {
			if !visit(pc) {
				return
			}
		}
	}

	for _, kind := range []chess.PieceKind{chess.Knight, chess.King} {
		for _, step := range kind.Steps() {
			pc := b.at(sq.Offset(step.Rank, step.File))
			if pc.Kind == kind && pc.Side == bySide {
				if !visit(pc) {
					return
				}
			}
		}
	}

	for _, dirs := range [][]chess.Step{diagonalDirs, straightDirs} {
		for _, dir := range dirs {
			for cur := sq.Offset(dir.Rank, dir.File); cur.Valid(); cur = cur.Offset(dir.Rank, dir.File) {
				pc := b[cur]
				if pc.IsEmpty() {
					continue
				}
				if pc.Side == bySide && pc.Kind.MovesAlong(dir.Rank, dir.File) {
					if !visit(pc) {
						return
					}
				}
				break // Blocked
			}
		}
	}
}
