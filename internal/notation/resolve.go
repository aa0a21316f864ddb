package notation

import (
	"fmt"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// Diagnostics attached to rejected requests.
const (
	detailDoubleCheck   = "Double check. Must move King."
	detailOwnPiece      = "Cannot capture one's own piece."
	detailCastling      = "Castling illegal."
	detailNeedPromoKind = "Promotion piece required."
)

// ParseMove decodes text and resolves it in pos.
func ParseMove(pos *engine.Position, text string) (chess.Move, error) {
	req, err := Parse(text)
	if err != nil {
		return chess.NullMove, err
	}
	return Resolve(pos, req)
}

// Resolve finds the single legal move of the side to move that matches
// req. Failures are *errors.MoveError values wrapping ErrNoPiece,
// ErrIllegalMove or an *errors.AmbiguityError.
func Resolve(pos *engine.Position, req Request) (chess.Move, error) {
	side := pos.Turn()
	fail := func(err error, detail string) (chess.Move, error) {
		return chess.NullMove, &errors.MoveError{Err: err, MoveText: req.Text, Side: side.String(), Detail: detail}
	}

	switch {
	case req.Castle != NoCastle:
		king := pos.KingSquare(side)
		file := 6
		if req.Castle == CastleLong {
			file = 2
		}
		m := chess.Move{From: king, To: chess.Sq(king.Rank(), file)}
		if king.File() != 4 || !pos.IsLegal(m) {
			return fail(errors.ErrIllegalMove, detailCastling)
		}
		return m, nil

	case req.Coordinate:
		from := chess.Sq(req.FromRank, req.FromFile)
		pc, ok := pos.At(from)
		if !ok || pc.Side != side {
			return fail(errors.ErrNoPiece, fmt.Sprintf("nothing to move on %v", from))
		}
		if needsPromotion(pc, req) {
			return fail(errors.ErrIllegalMove, detailNeedPromoKind)
		}
		m := chess.Move{From: from, To: req.To, Promotion: req.Promotion}
		if !pos.IsLegal(m) {
			return fail(errors.ErrIllegalMove, "")
		}
		return m, nil
	}

	if req.Kind != chess.King && len(pos.Checkers()) > 1 {
		return fail(errors.ErrIllegalMove, detailDoubleCheck)
	}
	if target, ok := pos.At(req.To); ok && target.Side == side {
		return fail(errors.ErrIllegalMove, detailOwnPiece)
	}

	var candidates []chess.Move
	found := false
	for _, pc := range pos.Pieces(side) {
		if pc.Kind != req.Kind ||
			(req.FromFile >= 0 && pc.Square.File() != req.FromFile) ||
			(req.FromRank >= 0 && pc.Square.Rank() != req.FromRank) {
			continue
		}
		found = true
		if needsPromotion(pc, req) {
			return fail(errors.ErrIllegalMove, detailNeedPromoKind)
		}
		for _, m := range pos.LegalMoves(pc.Square) {
			if m.To == req.To && m.Promotion == req.Promotion {
				candidates = append(candidates, m)
			}
		}
	}

	switch len(candidates) {
	case 0:
		if !found {
			return fail(errors.ErrNoPiece, fmt.Sprintf("no %s %s to move", side, req.Kind))
		}
		return fail(errors.ErrIllegalMove, "")
	case 1:
		return candidates[0], nil
	default:
		return fail(&errors.AmbiguityError{MoveText: req.Text, Candidates: len(candidates)}, "")
	}
}

// needsPromotion reports a pawn request for the last rank that names no
// promotion piece.
func needsPromotion(pc chess.Piece, req Request) bool {
	return pc.Kind == chess.Pawn && req.Promotion == chess.NoKind && req.To.Rank() == pc.Side.LastRank()
}
