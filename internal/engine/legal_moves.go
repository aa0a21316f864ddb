package engine

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// pin describes the axis a piece is confined to. A zero pin means free.
type pin struct {
	pinned bool
	dir    chess.Step // unit step from the king toward the piece
	king   chess.Square
}

// allows reports whether dst stays on the pin axis.
func (pn pin) allows(dst chess.Square) bool {
	if !pn.pinned {
		return true
	}
	dr := dst.Rank() - pn.king.Rank()
	df := dst.File() - pn.king.File()
	return dr*pn.dir.File == df*pn.dir.Rank
}

// pinOf finds whether pc is pinned to its own king.
func (p *Position) pinOf(pc chess.Piece) pin {
	if pc.Kind == chess.King {
		return pin{}
	}
	king := p.KingSquare(pc.Side)
	dr := pc.Square.Rank() - king.Rank()
	df := pc.Square.File() - king.File()
	if dr != 0 && df != 0 && abs(dr) != abs(df) {
		return pin{}
	}
	dir := chess.Step{Rank: chess.Sign(dr), File: chess.Sign(df)}

	// Nothing may stand between the king and the piece.
	for _, sq := range chess.Between(king, pc.Square) {
		if !p.board[sq].IsEmpty() {
			return pin{}
		}
	}

	// The first piece beyond must be an enemy slider covering this axis.
	for cur := pc.Square.Offset(dir.Rank, dir.File); cur.Valid(); cur = cur.Offset(dir.Rank, dir.File) {
		other := p.board[cur]
		if other.IsEmpty() {
			continue
		}
		if other.Side != pc.Side && other.Kind.MovesAlong(dir.Rank, dir.File) {
			return pin{pinned: true, dir: dir, king: king}
		}
		return pin{}
	}
	return pin{}
}

// checkBlocks reports whether dst resolves a single check, either by
// capturing the checker or by standing between it and the king.
func (p *Position) checkBlocks(dst chess.Square) bool {
	checker := p.checkers[0]
	if dst == checker.Square {
		return true
	}
	if !checker.Kind.Sliding() {
		return false
	}
	for _, sq := range chess.Between(checker.Square, p.KingSquare(p.turn)) {
		if sq == dst {
			return true
		}
	}
	return false
}

// LegalMoves returns the legal moves of the side-to-move piece on sq.
// The result is nil for empty squares and enemy pieces.
func (p *Position) LegalMoves(sq chess.Square) []chess.Move {
	pc := p.board.at(sq)
	if pc.IsEmpty() || pc.Side != p.turn {
		return nil
	}
	if pc.Kind == chess.King {
		return p.kingMoves(pc)
	}
	// Double check: only the king may move.
	if len(p.checkers) > 1 {
		return nil
	}

	pn := p.pinOf(pc)
	var moves []chess.Move
	add := func(dst chess.Square) {
		if !pn.allows(dst) {
			return
		}
		enPassant := p.isEnPassantCapture(pc, dst)
		if len(p.checkers) == 1 && !p.checkBlocks(dst) &&
			!(enPassant && p.checkers[0].Square == p.epPawn) {
			return
		}
		// Two pawns leave one rank at once, which pins cannot see.
		if enPassant && !p.enPassantSafe(pc, dst) {
			return
		}
		moves = appendWithPromotions(moves, pc, dst)
	}

	if pc.Kind == chess.Pawn {
		for _, dst := range p.pawnDestinations(pc) {
			add(dst)
		}
		return moves
	}
	for _, dst := range p.reachable(pc) {
		add(dst)
	}
	return moves
}

// AllLegalMoves returns every legal move for the side to move, grouped by
// origin square in ascending order.
func (p *Position) AllLegalMoves() []chess.Move {
	var moves []chess.Move
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if pc := p.board[sq]; !pc.IsEmpty() && pc.Side == p.turn {
			moves = append(moves, p.LegalMoves(sq)...)
		}
	}
	return moves
}

// IsLegal reports whether m is a legal move in this position.
func (p *Position) IsLegal(m chess.Move) bool {
	for _, legal := range p.LegalMoves(m.From) {
		if legal == m {
			return true
		}
	}
	return false
}

// reachable returns the squares a knight, bishop, rook or queen could move
// to ignoring pins and checks: empty squares and enemy pieces.
func (p *Position) reachable(pc chess.Piece) []chess.Square {
	var squares []chess.Square
	sliding := pc.Kind.Sliding()
	for _, step := range pc.Kind.Steps() {
		for cur := pc.Square.Offset(step.Rank, step.File); cur.Valid(); cur = cur.Offset(step.Rank, step.File) {
			other := p.board[cur]
			if other.IsEmpty() {
				squares = append(squares, cur)
				if sliding {
					continue
				}
				break
			}
			if other.Side != pc.Side {
				squares = append(squares, cur)
			}
			break
		}
	}
	return squares
}

// appendWithPromotions adds the move to dst, expanded into the four
// promotion choices when a pawn reaches its last rank.
func appendWithPromotions(moves []chess.Move, pc chess.Piece, dst chess.Square) []chess.Move {
	if pc.Kind == chess.Pawn && dst.Rank() == pc.Side.LastRank() {
		for _, kind := range chess.PromotionKinds {
			moves = append(moves, chess.Move{From: pc.Square, To: dst, Promotion: kind})
		}
		return moves
	}
	return append(moves, chess.Move{From: pc.Square, To: dst})
}
