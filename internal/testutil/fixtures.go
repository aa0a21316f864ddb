package testutil

// FEN fixtures shared by the engine, search and game tests.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete exercises castling, pins, en passant and promotion at shallow depth.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// FoolsMateFEN is the position after 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN has Black to move with no legal move and no check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// EnPassantFEN allows exf6 en passant after 1...f5.
	EnPassantFEN = "rnbqkbnr/ppppp1pp/8/4Pp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"

	// HorizontalPinFEN forbids exd6 en passant: both pawns leave the fifth rank
	// and expose the king on a5 to the rook on h5.
	HorizontalPinFEN = "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1"

	// CastlingFEN has every castling right with empty back ranks.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// BackRankMateFEN: White mates with Re8.
	BackRankMateFEN = "6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1"

	// HangingQueenFEN: pawns traded on d5, and the knight on c3 can take Black's queen there.
	HangingQueenFEN = "rnb1kbnr/ppp1pppp/8/3q4/8/2N5/PPPP1PPP/R1BQKBNR w KQkq - 0 3"
)

// OracleFENs is a suite of positions for cross-checking move generation.
var OracleFENs = []string{
	StartFEN,
	KiwipeteFEN,
	FoolsMateFEN,
	EnPassantFEN,
	HorizontalPinFEN,
	CastlingFEN,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"4k3/8/8/8/8/8/4q3/4K3 w - - 0 1",
	"4k3/8/8/8/1b6/8/3N4/4K2r w - - 0 1",
	"8/8/8/8/k2Pp2Q/8/8/3K4 b - d3 0 1",
	"8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1",
	"4k3/1P6/8/8/8/8/6p1/4K3 w - - 0 1",
}
