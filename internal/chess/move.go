package chess

import (
	"fmt"
	"strings"
)

// Move is a comparable value describing one ply.
// Promotion is NoKind unless a pawn reaches its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NullMove is the zero-information move used as a placeholder.
var NullMove = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether m is the placeholder move.
func (m Move) IsNull() bool {
	return m.From == NoSquare && m.To == NoSquare
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseCoordinate parses coordinate notation such as "g1f3" or "a7a8n".
func ParseCoordinate(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NullMove, fmt.Errorf("invalid coordinate move %q", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return NullMove, err
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = KindFromLetter(text[4])
		if !m.Promotion.IsPromotion() {
			return NullMove, fmt.Errorf("invalid promotion in %q", text)
		}
	}
	return m, nil
}
