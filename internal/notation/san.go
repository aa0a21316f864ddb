package notation

import (
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
)

// SAN returns m, legal in pos, in standard algebraic notation with the
// minimal disambiguation and a "+" or "#" suffix.
func SAN(pos *engine.Position, m chess.Move) string {
	pc, ok := pos.At(m.From)
	if !ok {
		return m.String()
	}

	var sb strings.Builder
	switch {
	case pc.Kind == chess.King && abs(m.To.File()-m.From.File()) == 2:
		if m.To.File() > m.From.File() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	case pc.Kind == chess.Pawn:
		if pos.IsCapture(m) {
			sb.WriteByte(chess.FileLetter(m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != chess.NoKind {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(pc.Kind.Letter())
		sb.WriteString(disambiguation(pos, pc, m.To))
		if pos.IsCapture(m) {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	next := pos.Apply(m)
	switch {
	case next.IsCheckmate():
		sb.WriteByte('#')
	case next.InCheck():
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell
// pc apart from other pieces of its kind that can also reach dst.
func disambiguation(pos *engine.Position, pc chess.Piece, dst chess.Square) string {
	var rivals []chess.Piece
	for _, other := range pos.Pieces(pc.Side) {
		if other.Kind != pc.Kind || other.Square == pc.Square {
			continue
		}
		for _, m := range pos.LegalMoves(other.Square) {
			if m.To == dst {
				rivals = append(rivals, other)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, r := range rivals {
		sameFile = sameFile || r.Square.File() == pc.Square.File()
		sameRank = sameRank || r.Square.Rank() == pc.Square.Rank()
	}
	switch {
	case !sameFile:
		return string(chess.FileLetter(pc.Square.File()))
	case !sameRank:
		return string(chess.RankDigit(pc.Square.Rank()))
	default:
		return pc.Square.String()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
