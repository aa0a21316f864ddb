// Package chess provides core chess types and operations.
package chess

import "fmt"

// Side represents the colour of a piece or player.
// Its numeric value doubles as the sign of the forward direction
// and of score orientation.
type Side int8

const (
	Black Side = -1
	White Side = 1
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	return -s
}

// Sign returns +1 for White, -1 for Black.
func (s Side) Sign() int {
	return int(s)
}

// HomeRank returns the rank the side's pieces start on.
func (s Side) HomeRank() int {
	if s == White {
		return 0
	}
	return 7
}

// PawnRank returns the rank the side's pawns start on.
func (s Side) PawnRank() int {
	return s.HomeRank() + s.Sign()
}

// LastRank returns the farthest rank, where the side's pawns promote.
func (s Side) LastRank() int {
	return 7 - s.HomeRank()
}

// RelativeRank returns rank as seen from the side's own home rank.
func (s Side) RelativeRank(rank int) int {
	if s == White {
		return rank
	}
	return 7 - rank
}

// PieceKind represents a chess piece type.
type PieceKind int8

const (
	NoKind PieceKind = iota // Empty square, or no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// IsPromotion reports whether a pawn may promote to k.
func (k PieceKind) IsPromotion() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PromotionKinds lists promotion choices in generation order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square identifies a board square as rank*8 + file.
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// Sq builds a square from a rank and file; off-board values give NoSquare.
func Sq(rank, file int) Square {
	if !OnBoard(rank, file) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// OnBoard reports whether rank and file are both within [0,7].
func OnBoard(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// Rank returns the square's rank in [0,7].
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the square's file in [0,7].
func (s Square) File() int {
	return int(s) % BoardSize
}

// Valid reports whether s is a board square.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square dr ranks and df files away, or NoSquare.
func (s Square) Offset(dr, df int) Square {
	return Sq(s.Rank()+dr, s.File()+df)
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.Rank()+s.File())%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	file := int(text[0]) - 'a'
	rank := int(text[1]) - '1'
	if !OnBoard(rank, file) {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return Sq(rank, file), nil
}

// FileLetter returns the letter of a file index.
func FileLetter(file int) byte {
	return byte('a' + file)
}

// RankDigit returns the digit of a rank index.
func RankDigit(rank int) byte {
	return byte('1' + rank)
}
