package eval

import (
	"math"
	"testing"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/testutil"
)

const tolerance = 1e-9

func mustFEN(t testing.TB, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// mirror swaps colours and flips the board top to bottom.
func mirror(t *testing.T, pos *engine.Position) *engine.Position {
	t.Helper()
	var pieces []chess.Piece
	for _, pc := range pos.AllPieces() {
		pc.Side = pc.Side.Opposite()
		pc.Square = chess.Sq(chess.BoardSize-1-pc.Square.Rank(), pc.Square.File())
		pieces = append(pieces, pc)
	}
	flipped, err := engine.NewPosition(pieces, pos.Turn().Opposite(), chess.NoSquare)
	if err != nil {
		t.Fatalf("mirror: %v", err)
	}
	return flipped
}

func TestEvaluate_StartingPosition(t *testing.T) {
	pos := engine.StartingPosition()
	assertNear(t, "Evaluate(start)", Evaluate(pos), 0)
	assertNear(t, "Score(start, White)", Score(pos, chess.White), 39.4)
}

func TestEvaluate_Checkmate(t *testing.T) {
	pos := mustFEN(t, testutil.FoolsMateFEN)
	if got := Evaluate(pos); got != MateScore {
		t.Errorf("Evaluate(fool's mate) = %v, want %v", got, MateScore)
	}
}

func TestEvaluate_StalemateIsNotMate(t *testing.T) {
	pos := mustFEN(t, testutil.StalemateFEN)
	assertNear(t, "Evaluate(stalemate)", Evaluate(pos), 9)
}

func TestEvaluate_Orientation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want float64
	}{
		{"black to move, white rook up", "4k3/8/8/8/8/8/8/R3K3 b - - 0 1", 5.6},
		{"white to move, white rook up", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", -5.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "Evaluate", Evaluate(mustFEN(t, tt.fen)), tt.want)
		})
	}
}

func TestEvaluate_ColourSymmetry(t *testing.T) {
	for _, fen := range []string{
		testutil.KiwipeteFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"4k3/R4ppp/8/8/8/8/8/4K3 w - - 0 1",
	} {
		pos := mustFEN(t, fen)
		flipped := mirror(t, pos)
		assertNear(t, "Evaluate(mirror) "+fen, Evaluate(flipped), Evaluate(pos))
		assertNear(t, "Score(mirror, Black) "+fen, Score(flipped, chess.Black), Score(pos, chess.White))
	}
}

func pawn(side chess.Side, sq string) chess.Piece {
	s, _ := chess.ParseSquare(sq)
	return chess.Piece{Kind: chess.Pawn, Side: side, Square: s}
}

func knight(side chess.Side, sq string) chess.Piece {
	s, _ := chess.ParseSquare(sq)
	return chess.Piece{Kind: chess.Knight, Side: side, Square: s}
}

func TestPawnPoints(t *testing.T) {
	tests := []struct {
		name    string
		pawn    chess.Piece
		friends []chess.Piece
		want    float64
	}{
		{"lone centre pawn is isolated", pawn(chess.White, "e4"), nil, 0.2 - 0.25},
		{"lone edge pawn", pawn(chess.White, "a5"), nil, 0.12 - 0.12},
		{"connected pair", pawn(chess.White, "d4"), []chess.Piece{pawn(chess.White, "e4")}, 0.2},
		{"backward", pawn(chess.White, "d2"), []chess.Piece{pawn(chess.White, "e4")}, -0.1},
		{"backward edge", pawn(chess.White, "a2"), []chess.Piece{pawn(chess.White, "b4")}, -0.05},
		{"doubled and isolated", pawn(chess.White, "e2"), []chess.Piece{pawn(chess.White, "e3")}, 0 - 0.25 - 0.25},
		{"black relative rank", pawn(chess.Black, "e5"), nil, 0.2 - 0.25},
		{"seventh rank", pawn(chess.White, "b7"), []chess.Piece{pawn(chess.White, "c6")}, 0.45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			friends := append([]chess.Piece{tt.pawn}, tt.friends...)
			assertNear(t, "pawnPoints", pawnPoints(tt.pawn, friends), tt.want)
		})
	}
}

func TestKnightPoints(t *testing.T) {
	tests := []struct {
		name    string
		knight  chess.Piece
		friends []chess.Piece
		enemies []chess.Piece
		want    float64
	}{
		{"home rank", knight(chess.White, "g1"), nil, nil, 0},
		{"edge third rank", knight(chess.White, "a3"), nil, nil, 0.13},
		{"centre outpost", knight(chess.White, "e5"), nil, nil, 0.3},
		{"chased by adjacent pawn", knight(chess.White, "e5"), nil, []chess.Piece{pawn(chess.Black, "d7")}, 0.22},
		{"adjacent pawn behind does not chase", knight(chess.White, "e5"), nil, []chess.Piece{pawn(chess.Black, "d3")}, 0.3},
		{"supported and shielded", knight(chess.White, "d6"),
			[]chess.Piece{pawn(chess.White, "e5")}, []chess.Piece{pawn(chess.Black, "d7")}, 1.0},
		{"supported", knight(chess.White, "d6"), []chess.Piece{pawn(chess.White, "c5")}, nil, 0.8},
		{"unsupported and chased", knight(chess.White, "d6"), nil, []chess.Piece{pawn(chess.Black, "e7")}, 0.3},
		{"black knight mirrored", knight(chess.Black, "d3"), []chess.Piece{pawn(chess.Black, "e4")}, nil, 0.8},
		{"last rank", knight(chess.White, "b8"), nil, nil, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "knightPoints", knightPoints(tt.knight, tt.friends, tt.enemies), tt.want)
		})
	}
}

func TestRookPoints(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		rook string
		want float64
	}{
		{"open file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", 0.6},
		{"doubled on open file", "4k3/8/8/8/8/8/R7/R3K3 w - - 0 1", "a1", 0.85},
		{"one enemy pawn on file", "4k3/p7/8/8/8/8/8/R3K3 w - - 0 1", "a1", 0.15},
		{"two enemy pawns on file", "4k3/p7/p7/8/8/8/8/R3K3 w - - 0 1", "a1", 0.4},
		{"behind seventh-rank pawn", "4k3/P7/8/8/8/8/8/R3K3 w - - 0 1", "a1", 0},
		{"behind own pawn with enemy pawn on file", "4k3/p7/8/8/P7/8/8/R3K3 w - - 0 1", "a1", 0},
		{"doubled behind own pawn", "4k3/8/P7/8/8/8/R7/R3K3 w - - 0 1", "a1", 0.25},
		{"own pawn below rook does not block", "4k3/8/8/8/R7/8/P7/4K3 w - - 0 1", "a4", 0.6},
		{"behind own home pawn", testutil.StartFEN, "a1", 0},
		{"seventh rank with three targets", "4k3/R4ppp/8/8/8/8/8/4K3 w - - 0 1", "a7", 0.8},
		{"seventh rank with a partner", "4k3/RR3ppp/8/8/8/8/8/4K3 w - - 0 1", "a7", 1.4},
		{"seventh rank facing an enemy pawn", "4k3/R7/8/p7/8/8/8/4K3 w - - 0 1", "a7", 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			sq, err := chess.ParseSquare(tt.rook)
			if err != nil {
				t.Fatal(err)
			}
			rook, ok := pos.At(sq)
			if !ok || rook.Kind != chess.Rook {
				t.Fatalf("no rook on %s", tt.rook)
			}
			own := newArmy(pos, rook.Side)
			enemy := newArmy(pos, rook.Side.Opposite())
			assertNear(t, "rookPoints", rookPoints(pos, rook, own, enemy), tt.want)
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	pos := mustFEN(b, testutil.KiwipeteFEN)
	for i := 0; i < b.N; i++ {
		Evaluate(pos)
	}
}
