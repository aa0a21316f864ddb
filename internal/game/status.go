package game

import "github.com/bhataktaBhai/ShallowRed/internal/chess"

// Status is the state of a game.
type Status int

// Game states. Everything but Ongoing ends the game.
const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
	MaxPlies
)

var statusNames = []string{
	"ongoing",
	"checkmate",
	"stalemate",
	"insufficient material",
	"fifty moves without a pawn move or capture",
	"threefold repetition",
	"move limit reached",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Over reports whether s ends the game.
func (s Status) Over() bool {
	return s != Ongoing
}

// PGN result strings.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// result maps a status and the side to move onto a PGN result.
func result(s Status, toMove chess.Side) string {
	switch s {
	case Ongoing:
		return ResultOngoing
	case Checkmate:
		if toMove == chess.White {
			return ResultBlackWins
		}
		return ResultWhiteWins
	case MaxPlies:
		return ResultOngoing
	default:
		return ResultDraw
	}
}
