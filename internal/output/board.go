package output

import (
	"fmt"
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/game"
)

// BoardStyle selects how pieces are drawn.
type BoardStyle int

const (
	Letters BoardStyle = iota // FEN letters, uppercase for White
	Glyphs                    // Unicode chess symbols
)

func pieceText(pc chess.Piece, style BoardStyle) string {
	if pc.IsEmpty() {
		return "."
	}
	if style == Glyphs {
		return pc.Glyph()
	}
	return string(pc.Symbol())
}

// RenderBoard draws pos as seen by perspective: that side's pieces at the
// bottom, with rank digits on the left and file letters underneath.
func RenderBoard(pos *engine.Position, perspective chess.Side, style BoardStyle) string {
	order := func(i int) int {
		if perspective == chess.Black {
			return i
		}
		return chess.BoardSize - 1 - i
	}

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		rank := order(i)
		sb.WriteByte(chess.RankDigit(rank))
		for j := 0; j < chess.BoardSize; j++ {
			file := chess.BoardSize - 1 - order(j)
			pc, _ := pos.At(chess.Sq(rank, file))
			sb.WriteByte(' ')
			sb.WriteString(pieceText(pc, style))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for j := 0; j < chess.BoardSize; j++ {
		sb.WriteByte(' ')
		sb.WriteByte(chess.FileLetter(chess.BoardSize - 1 - order(j)))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// RenderCaptured lists the pieces each side has lost, one line per side,
// and nothing when no piece is missing.
func RenderCaptured(pos *engine.Position, style BoardStyle) string {
	var sb strings.Builder
	for _, side := range []chess.Side{chess.White, chess.Black} {
		missing := game.Missing(pos, side)
		if len(missing) == 0 {
			continue
		}
		parts := make([]string, len(missing))
		for i, pc := range missing {
			parts[i] = pieceText(pc, style)
		}
		fmt.Fprintf(&sb, "%s lost: %s\n", side, strings.Join(parts, " "))
	}
	return sb.String()
}
