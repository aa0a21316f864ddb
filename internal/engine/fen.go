package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Clocks holds the two counters FEN carries beside the position.
type Clocks struct {
	HalfmoveClock  int
	FullmoveNumber int
}

// ParseFEN creates a position from a FEN string. Missing trailing fields
// default to "w - - 0 1".
func ParseFEN(fen string) (*Position, error) {
	pos, _, err := ParseFENWithClocks(fen)
	return pos, err
}

// ParseFENWithClocks is ParseFEN that also returns the move counters.
// Castling rights become HasMoved flags: a king or corner rook whose right
// is absent is marked as moved.
func ParseFENWithClocks(fen string) (*Position, Clocks, error) {
	clocks := Clocks{FullmoveNumber: 1}
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, clocks, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePlacement(fen, parts[0])
	if err != nil {
		return nil, clocks, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, clocks, err
	}

	if err := applyCastlingRights(pieces, parts); err != nil {
		return nil, clocks, err
	}

	epPawn, err := parseEnPassant(parts, turn)
	if err != nil {
		return nil, clocks, err
	}

	if err := parseClocks(parts, &clocks); err != nil {
		return nil, clocks, err
	}

	pos, err := NewPosition(pieces, turn, epPawn)
	if err != nil {
		return nil, clocks, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	return pos, clocks, nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
// Every piece starts out unmoved; castling rights adjust kings and rooks.
func parsePiecePlacement(fen, placement string) ([]chess.Piece, error) {
	var pieces []chess.Piece
	rank, file := 7, 0

	for i, c := range placement {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Column: i + 1,
					Expected: "8 squares per rank", Got: strconv.Itoa(file)}
			}
			rank--
			file = 0
			if rank < 0 {
				return nil, fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Column: i + 1,
					Got: "rank overflow"}
			}
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Column: i + 1,
					Expected: "piece letter", Got: string(c)}
			}
			if file >= chess.BoardSize {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			side := chess.White
			if unicode.IsLower(c) {
				side = chess.Black
			}
			pieces = append(pieces, chess.Piece{Kind: kind, Side: side, Square: chess.Sq(rank, file)})
			file++
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return nil, fmt.Errorf("incomplete piece placement %q: %w", placement, errors.ErrInvalidFEN)
	}
	return pieces, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Side, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// applyCastlingRights marks kings and rooks without a castling right as moved.
func applyCastlingRights(pieces []chess.Piece, parts []string) error {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}
	has := map[rune]bool{}
	if rights != "-" {
		for _, c := range rights {
			if !strings.ContainsRune("KQkq", c) {
				return fmt.Errorf("invalid castling field %q: %w", rights, errors.ErrInvalidFEN)
			}
			has[c] = true
		}
	}

	for i := range pieces {
		pc := &pieces[i]
		home := pc.Side.HomeRank()
		short, long := 'K', 'Q'
		if pc.Side == chess.Black {
			short, long = 'k', 'q'
		}
		switch pc.Kind {
		case chess.King:
			pc.HasMoved = pc.Square != chess.Sq(home, kingFile) || !(has[short] || has[long])
		case chess.Rook:
			switch pc.Square {
			case chess.Sq(home, shortRookFile):
				pc.HasMoved = !has[short]
			case chess.Sq(home, longRookFile):
				pc.HasMoved = !has[long]
			default:
				pc.HasMoved = true
			}
		}
	}
	return nil
}

// parseEnPassant turns the target square into the pawn that passed it.
func parseEnPassant(parts []string, turn chess.Side) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, fmt.Errorf("en passant field: %v: %w", err, errors.ErrInvalidFEN)
	}
	pawnSide := turn.Opposite()
	return target.Offset(pawnSide.Sign(), 0), nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string, clocks *Clocks) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		clocks.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		clocks.FullmoveNumber = n
	}
	return nil
}

// FEN returns the position as a FEN string with clocks "0 1".
func (p *Position) FEN() string {
	return p.FENWithClocks(Clocks{FullmoveNumber: 1})
}

// FENWithClocks returns the position as a FEN string with the given counters.
func (p *Position) FENWithClocks(clocks Clocks) string {
	var sb strings.Builder

	p.writePiecePlacement(&sb)
	sb.WriteByte(' ')
	if p.turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	p.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget().String())
	fmt.Fprintf(&sb, " %d %d", clocks.HalfmoveClock, clocks.FullmoveNumber)

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func (p *Position) writePiecePlacement(sb *strings.Builder) {
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			pc := p.board[chess.Sq(rank, file)]
			if pc.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pc.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling rights field to the builder.
func (p *Position) writeCastlingRights(sb *strings.Builder) {
	wShort, wLong := p.CastlingRights(chess.White)
	bShort, bLong := p.CastlingRights(chess.Black)
	n := sb.Len()
	for _, right := range []struct {
		ok     bool
		letter byte
	}{{wShort, 'K'}, {wLong, 'Q'}, {bShort, 'k'}, {bLong, 'q'}} {
		if right.ok {
			sb.WriteByte(right.letter)
		}
	}
	if sb.Len() == n {
		sb.WriteByte('-')
	}
}
