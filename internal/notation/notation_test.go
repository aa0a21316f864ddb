package notation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/testutil"
)

const (
	twoKnightsFEN = "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1"
	twoRooksFEN   = "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1"
	doubleCheck   = "k3r3/8/8/8/8/3n4/1R6/4K3 w - - 0 1"
	promotionFEN  = "8/4P3/8/8/8/8/8/k3K3 w - - 0 1"
)

func mustFEN(t *testing.T, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestParse(t *testing.T) {
	e4 := chess.Sq(3, 4)
	tests := []struct {
		text string
		want Request
	}{
		{"e4", Request{Kind: chess.Pawn, FromFile: -1, FromRank: -1, To: e4}},
		{"Pe4", Request{Kind: chess.Pawn, FromFile: -1, FromRank: -1, To: e4}},
		{"exd5", Request{Kind: chess.Pawn, FromFile: 4, FromRank: -1, To: chess.Sq(4, 3)}},
		{"exf6 e.p.", Request{Kind: chess.Pawn, FromFile: 4, FromRank: -1, To: chess.Sq(5, 5)}},
		{"Nf3+!", Request{Kind: chess.Knight, FromFile: -1, FromRank: -1, To: chess.Sq(2, 5)}},
		{"Nbd2", Request{Kind: chess.Knight, FromFile: 1, FromRank: -1, To: chess.Sq(1, 3)}},
		{"R1a3", Request{Kind: chess.Rook, FromFile: -1, FromRank: 0, To: chess.Sq(2, 0)}},
		{"Qh4xe1#", Request{Kind: chess.Queen, FromFile: 7, FromRank: 3, To: chess.Sq(0, 4)}},
		{"e8=Q", Request{Kind: chess.Pawn, FromFile: -1, FromRank: -1, To: chess.Sq(7, 4), Promotion: chess.Queen}},
		{"bxa1N", Request{Kind: chess.Pawn, FromFile: 1, FromRank: -1, To: chess.Sq(0, 0), Promotion: chess.Knight}},
		{"g1f3", Request{FromFile: 6, FromRank: 0, To: chess.Sq(2, 5), Coordinate: true}},
		{"e7e8q", Request{FromFile: 4, FromRank: 6, To: chess.Sq(7, 4), Promotion: chess.Queen, Coordinate: true}},
		{"O-O", Request{Kind: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: CastleShort}},
		{"0-0-0+", Request{Kind: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: CastleLong}},
		{"oo", Request{Kind: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: CastleShort}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			testutil.AssertNoError(t, err)
			tt.want.Text = tt.text
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{"", "   ", "Zf3", "N", "Nf9", "O-O-O-O", "Kf3Q", "Nb1b2b3", "Q3bd4"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
			var perr *errors.ParseError
			testutil.AssertTrue(t, errors.As(err, &perr), "want *ParseError, got", err)
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want string
	}{
		{"pawn push", testutil.StartFEN, "e4", "e2e4"},
		{"explicit pawn", testutil.StartFEN, "Pe4", "e2e4"},
		{"single step", testutil.StartFEN, "e3", "e2e3"},
		{"knight", testutil.StartFEN, "Nf3", "g1f3"},
		{"coordinate", testutil.StartFEN, "b1c3", "b1c3"},
		{"file disambiguation", twoKnightsFEN, "Nbd2", "b1d2"},
		{"other knight", twoKnightsFEN, "Nfd2", "f3d2"},
		{"rank disambiguation", twoRooksFEN, "R1a3", "a1a3"},
		{"other rook", twoRooksFEN, "R5a3", "a5a3"},
		{"unambiguous rook", twoRooksFEN, "Rb1", "a1b1"},
		{"capture", testutil.HangingQueenFEN, "Nxd5", "c3d5"},
		{"capture without x", testutil.HangingQueenFEN, "Nd5", "c3d5"},
		{"en passant", testutil.EnPassantFEN, "exf6 e.p.", "e5f6"},
		{"short castle", testutil.CastlingFEN, "O-O", "e1g1"},
		{"long castle", testutil.CastlingFEN, "0-0-0", "e1c1"},
		{"black castles", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "O-O-O", "e8c8"},
		{"promotion", promotionFEN, "e8=Q", "e7e8q"},
		{"underpromotion", promotionFEN, "e8N", "e7e8n"},
		{"coordinate promotion", promotionFEN, "e7e8r", "e7e8r"},
		{"king escapes double check", doubleCheck, "Kf1", "e1f1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMove(mustFEN(t, tt.fen), tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m.String(), tt.want)
		})
	}
}

func TestParseMove_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		text   string
		target error
		detail string
	}{
		{"ambiguous knights", twoKnightsFEN, "Nd2", errors.ErrAmbiguousMove, ""},
		{"ambiguous rooks", twoRooksFEN, "Ra3", errors.ErrAmbiguousMove, ""},
		{"own piece", testutil.StartFEN, "Nd2", errors.ErrIllegalMove, detailOwnPiece},
		{"double check", doubleCheck, "Rb3", errors.ErrIllegalMove, detailDoubleCheck},
		{"unreachable", testutil.StartFEN, "Qh5", errors.ErrIllegalMove, ""},
		{"pawn too far", testutil.StartFEN, "e5", errors.ErrIllegalMove, ""},
		{"no such piece", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "Nf3", errors.ErrNoPiece, ""},
		{"empty origin", testutil.StartFEN, "e3e4", errors.ErrNoPiece, ""},
		{"enemy origin", testutil.StartFEN, "e7e5", errors.ErrNoPiece, ""},
		{"illegal coordinate", testutil.StartFEN, "e2e5", errors.ErrIllegalMove, ""},
		{"castle blocked", testutil.StartFEN, "O-O", errors.ErrIllegalMove, detailCastling},
		{"missing promotion piece", promotionFEN, "e8", errors.ErrIllegalMove, detailNeedPromoKind},
		{"missing coordinate promotion", promotionFEN, "e7e8", errors.ErrIllegalMove, detailNeedPromoKind},
		{"pinned en passant", testutil.HorizontalPinFEN, "exd6", errors.ErrIllegalMove, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			_, err := ParseMove(pos, tt.text)
			testutil.AssertErrorIs(t, err, tt.target)

			var merr *errors.MoveError
			if !errors.As(err, &merr) {
				t.Fatalf("want *MoveError, got %T: %v", err, err)
			}
			testutil.AssertEqual(t, merr.MoveText, tt.text)
			testutil.AssertEqual(t, merr.Side, pos.Turn().String())
			if tt.detail != "" {
				testutil.AssertEqual(t, merr.Detail, tt.detail)
			}
		})
	}
}

func TestParseMove_AmbiguityCount(t *testing.T) {
	_, err := ParseMove(mustFEN(t, twoKnightsFEN), "Nd2")
	var aerr *errors.AmbiguityError
	if !errors.As(err, &aerr) {
		t.Fatalf("want *AmbiguityError, got %v", err)
	}
	testutil.AssertEqual(t, aerr.Candidates, 2)
}

func TestSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", testutil.StartFEN, "e2e4", "e4"},
		{"knight", testutil.StartFEN, "g1f3", "Nf3"},
		{"capture", testutil.HangingQueenFEN, "c3d5", "Nxd5"},
		{"file disambiguation", twoKnightsFEN, "b1d2", "Nbd2"},
		{"rank disambiguation", twoRooksFEN, "a5a3", "R5a3"},
		{"no disambiguation needed", twoRooksFEN, "a1b1", "Rb1"},
		{"pawn capture", testutil.EnPassantFEN, "e5f6", "exf6"},
		{"short castle", testutil.KiwipeteFEN, "e1g1", "O-O"},
		{"long castle", testutil.KiwipeteFEN, "e1c1", "O-O-O"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"mate", testutil.BackRankMateFEN, "e1e8", "Re8#"},
		{"promotion", promotionFEN, "e7e8q", "e8=Q"},
		{"underpromotion", promotionFEN, "e7e8n", "e8=N"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := chess.ParseCoordinate(tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, SAN(mustFEN(t, tt.fen), m), tt.want)
		})
	}
}

func TestSAN_FullSquareDisambiguation(t *testing.T) {
	// Queens on a1, a3 and c1 all reach b2.
	pos := mustFEN(t, "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1")
	m := chess.Move{From: chess.Sq(0, 0), To: chess.Sq(1, 1)}
	testutil.AssertEqual(t, SAN(pos, m), "Qa1b2")

	back, err := ParseMove(pos, "Qa1b2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, back, m)
}

// Every legal move written as SAN reads back as the same move.
func TestSAN_RoundTrip(t *testing.T) {
	for _, fen := range testutil.OracleFENs {
		pos := mustFEN(t, fen)
		seen := map[string]bool{}
		for _, m := range pos.AllLegalMoves() {
			san := SAN(pos, m)
			if seen[san] {
				t.Errorf("%s: SAN %q written for two moves", fen, san)
			}
			seen[san] = true

			back, err := ParseMove(pos, san)
			if err != nil {
				t.Errorf("%s: ParseMove(%q) for %v: %v", fen, san, m, err)
				continue
			}
			if back != m {
				t.Errorf("%s: ParseMove(%q) = %v, want %v", fen, san, back, m)
			}
			if strings.ContainsAny(san, " ") {
				t.Errorf("%s: SAN %q contains a space", fen, san)
			}
		}
	}
}
