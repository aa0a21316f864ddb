package chess

import "unicode"

// Step is a single displacement in ranks and files.
type Step struct {
	Rank int
	File int
}

// Step sets shared between kinds.
var (
	orthogonalSteps = []Step{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalSteps   = []Step{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	kingSteps       = []Step{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	knightSteps     = []Step{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// KingValue is the sentinel material value of a king. It is never summed.
const KingValue = 1e9

// kindInfo is the capability table entry of one piece kind.
type kindInfo struct {
	steps   []Step
	sliding bool
	value   float64
}

var kindTable = [NumKinds]kindInfo{
	NoKind: {},
	Pawn:   {value: 1},
	Knight: {steps: knightSteps, value: 3},
	Bishop: {steps: diagonalSteps, sliding: true, value: 3.2},
	Rook:   {steps: orthogonalSteps, sliding: true, value: 5},
	Queen:  {steps: kingSteps, sliding: true, value: 9},
	King:   {steps: kingSteps, value: KingValue},
}

// Steps returns the displacement vectors a kind projects along.
// Pawns have none: their geometry depends on side and occupancy.
func (k PieceKind) Steps() []Step {
	if k < 0 || k >= NumKinds {
		return nil
	}
	return kindTable[k].steps
}

// Sliding reports whether the kind repeats its steps until blocked.
func (k PieceKind) Sliding() bool {
	if k < 0 || k >= NumKinds {
		return false
	}
	return kindTable[k].sliding
}

// Value returns the material value in pawns.
func (k PieceKind) Value() float64 {
	if k < 0 || k >= NumKinds {
		return 0
	}
	return kindTable[k].value
}

// MovesAlong reports whether a sliding kind moves along direction (dr, df),
// given as unit steps.
func (k PieceKind) MovesAlong(dr, df int) bool {
	straight := dr == 0 || df == 0
	switch k {
	case Rook:
		return straight
	case Bishop:
		return !straight
	case Queen:
		return true
	default:
		return false
	}
}

// Piece is a coloured piece standing on a square.
// HasMoved is tracked for kings and rooks only and never resets.
type Piece struct {
	Kind     PieceKind
	Side     Side
	Square   Square
	HasMoved bool
}

// IsEmpty reports whether p is the zero piece (an empty square).
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Side == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Glyph returns the Unicode chess glyph of the piece.
func (p Piece) Glyph() string {
	white := []string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Kind < 0 || p.Kind >= NumKinds {
		return "?"
	}
	if p.Side == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// RelativeRank returns the piece's rank seen from its own side.
func (p Piece) RelativeRank() int {
	return p.Side.RelativeRank(p.Square.Rank())
}

// MovedTo returns the piece relocated to sq, with HasMoved set.
func (p Piece) MovedTo(sq Square) Piece {
	p.Square = sq
	p.HasMoved = true
	return p
}

// MightAttack reports whether the piece would attack dst on an empty
// board. Occupancy is ignored.
func (p Piece) MightAttack(dst Square) bool {
	if dst == p.Square || !dst.Valid() {
		return false
	}
	dr := dst.Rank() - p.Square.Rank()
	df := dst.File() - p.Square.File()
	switch p.Kind {
	case Pawn:
		return dr == p.Side.Sign() && abs(df) == 1
	case Knight:
		return (abs(dr) == 1 && abs(df) == 2) || (abs(dr) == 2 && abs(df) == 1)
	case King:
		return abs(dr) <= 1 && abs(df) <= 1
	case Bishop:
		return abs(dr) == abs(df)
	case Rook:
		return dr == 0 || df == 0
	case Queen:
		return abs(dr) == abs(df) || dr == 0 || df == 0
	default:
		return false
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns the sign of x: -1, 0, or 1.
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and nil otherwise.
func Between(a, b Square) []Square {
	dr := b.Rank() - a.Rank()
	df := b.File() - a.File()
	if dr != 0 && df != 0 && abs(dr) != abs(df) {
		return nil
	}
	sr, sf := Sign(dr), Sign(df)
	var squares []Square
	for sq := a.Offset(sr, sf); sq != b && sq.Valid(); sq = sq.Offset(sr, sf) {
		squares = append(squares, sq)
	}
	return squares
}
