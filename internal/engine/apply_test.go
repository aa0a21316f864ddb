package engine

import (
	"testing"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/testutil"
)

// mustMove parses coordinate notation or aborts the test.
func mustMove(t testing.TB, uci string) chess.Move {
	t.Helper()
	m, err := chess.ParseCoordinate(uci)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q) failed: %v", uci, err)
	}
	return m
}

// play applies a sequence of coordinate moves through Move.
func play(t testing.TB, pos *Position, moves ...string) *Position {
	t.Helper()
	for _, uci := range moves {
		next, err := pos.Move(mustMove(t, uci))
		if err != nil {
			t.Fatalf("Move(%s) in %q failed: %v", uci, pos.FEN(), err)
		}
		pos = next
	}
	return pos
}

func TestMove_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "pawn double advance records en passant",
			fen:   testutil.StartFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "en passant cleared after the next ply",
			fen:   testutil.StartFEN,
			moves: []string{"e2e4", "g8f6"},
			want:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name:  "en passant removes the passed pawn",
			fen:   testutil.EnPassantFEN,
			moves: []string{"e5f6"},
			want:  "rnbqkbnr/ppppp1pp/5P2/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:  "short castle relocates the rook",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1",
		},
		{
			name:  "long castle relocates the rook",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		},
		{
			name:  "capturing a rook removes that castling right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "promotion replaces the pawn",
			fen:   "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			moves: []string{"b7b8n"},
			want:  "1N2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "king move drops both rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1e2", "e8e7", "e2e1", "e7e8"},
			want:  "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := play(t, mustFEN(t, tt.fen), tt.moves...)
			testutil.AssertEqual(t, pos.FEN(), tt.want)
		})
	}
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantErr error
	}{
		{"empty origin", testutil.StartFEN, "e4e5", errors.ErrNoPiece},
		{"enemy piece", testutil.StartFEN, "e7e5", errors.ErrNoPiece},
		{"pawn triple advance", testutil.StartFEN, "e2e5", errors.ErrIllegalMove},
		{"capture own piece", testutil.StartFEN, "d1d2", errors.ErrIllegalMove},
		{"missing promotion piece", "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", "b7b8", errors.ErrIllegalMove},
		{"pinned knight", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "e2c3", errors.ErrIllegalMove},
		{"castling through check", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", "e1g1", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			before := pos.FEN()
			next, err := pos.Move(mustMove(t, tt.move))
			testutil.AssertErrorIs(t, err, tt.wantErr)
			testutil.AssertNil(t, next)
			testutil.AssertEqual(t, pos.FEN(), before, "receiver changed")
		})
	}
}

func TestMove_ReceiverUnchanged(t *testing.T) {
	pos := mustFEN(t, testutil.KiwipeteFEN)
	before := pos.FEN()
	for _, m := range pos.AllLegalMoves() {
		if _, err := pos.Move(m); err != nil {
			t.Fatalf("Move(%v) failed: %v", m, err)
		}
	}
	testutil.AssertEqual(t, pos.FEN(), before)
}

func TestMove_HasMovedMonotonic(t *testing.T) {
	pos := play(t, mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), "a1b1", "a8b8", "b1a1", "b8a8")
	rook, ok := pos.At(mustSquare(t, "a1"))
	if !ok || rook.Kind != chess.Rook {
		t.Fatalf("At(a1) = %+v, %v; want a rook", rook, ok)
	}
	if !rook.HasMoved {
		t.Error("rook back on a1 has HasMoved = false")
	}
	king, _ := pos.At(mustSquare(t, "e1"))
	if king.HasMoved {
		t.Error("unmoved king has HasMoved = true")
	}
}

func TestCaptured(t *testing.T) {
	pos := mustFEN(t, testutil.EnPassantFEN)
	tests := []struct {
		move     string
		wantKind chess.PieceKind
		wantOK   bool
	}{
		{"e5f6", chess.Pawn, true},
		{"e5e6", chess.NoKind, false},
		{"g1f3", chess.NoKind, false},
	}
	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			m := mustMove(t, tt.move)
			pc, ok := pos.Captured(m)
			if ok != tt.wantOK || pc.Kind != tt.wantKind {
				t.Errorf("Captured(%s) = %v, %v; want %v, %v", tt.move, pc.Kind, ok, tt.wantKind, tt.wantOK)
			}
			if got := pos.IsCapture(m); got != tt.wantOK {
				t.Errorf("IsCapture(%s) = %v, want %v", tt.move, got, tt.wantOK)
			}
		})
	}
}
