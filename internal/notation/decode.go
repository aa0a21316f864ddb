// Package notation reads move requests typed in algebraic or coordinate
// notation, resolves them against a position, and writes SAN.
package notation

import (
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// Castle identifies a castling request.
type Castle int

// Castling requests.
const (
	NoCastle Castle = iota
	CastleShort
	CastleLong
)

// Request is a decoded move request. It says what the player asked for;
// Resolve decides which move, if any, it means.
type Request struct {
	Text       string // as entered
	Kind       chess.PieceKind
	FromFile   int // -1 when not given
	FromRank   int // -1 when not given
	To         chess.Square
	Promotion  chess.PieceKind
	Castle     Castle
	Coordinate bool // "e2e4" form: origin and destination both given
}

func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isAnnotation reports characters dropped from the end of a request:
// check and mate marks, "!" and "?" and an "e.p." suffix.
func isAnnotation(c byte) bool {
	switch {
	case isRank(c), c == '0':
		return false
	case strings.IndexByte("QRBNOqrbno", c) >= 0:
		return false
	}
	return true
}

// pieceKind returns the kind for an uppercase piece letter, P included.
func pieceKind(c byte) chess.PieceKind {
	if c < 'A' || c > 'Z' {
		return chess.NoKind
	}
	return chess.KindFromLetter(c)
}

// clean removes capture marks, the promotion "=", surrounding space and
// trailing annotations.
func clean(text string) string {
	s := strings.TrimSpace(text)
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'x', 'X', ':', '=':
			return -1
		}
		return r
	}, s)
	for len(s) > 0 && isAnnotation(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// Parse decodes a move request. Accepted forms are SAN with optional
// origin file and rank ("Nf3", "Nbd2", "R1e2", "exd5", "e8=Q"), bare
// coordinates ("g1f3", "e7e8q") and castling ("O-O", "0-0-0").
func Parse(text string) (Request, error) {
	req := Request{Text: text, FromFile: -1, FromRank: -1, To: chess.NoSquare}
	s := clean(text)
	if s == "" {
		return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "a move"}
	}

	if isCastlingChar(s[0]) {
		return parseCastle(req, s)
	}
	if isCoordinate(s) {
		m, err := chess.ParseCoordinate(strings.ToLower(s))
		if err != nil {
			return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Got: s}
		}
		req.Coordinate = true
		req.FromFile, req.FromRank = m.From.File(), m.From.Rank()
		req.To, req.Promotion = m.To, m.Promotion
		return req, nil
	}

	pos := 0
	if isCol(s[0]) {
		req.Kind = chess.Pawn
	} else if req.Kind = pieceKind(s[0]); req.Kind != chess.NoKind {
		pos++
	} else {
		return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: 1,
			Expected: "piece letter or file", Got: string(s[0])}
	}

	body := s[pos:]
	if n := len(body); n >= 3 && !isRank(body[n-1]) && isRank(body[n-2]) {
		promo := chess.KindFromLetter(body[n-1])
		if req.Kind != chess.Pawn || !promo.IsPromotion() {
			return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: pos + n,
				Expected: "pawn promotion to Q, R, B or N", Got: string(body[n-1])}
		}
		req.Promotion = promo
		body = body[:n-1]
	}

	n := len(body)
	if n < 2 || n > 4 || !isCol(body[n-2]) || !isRank(body[n-1]) {
		return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: pos + 1,
			Expected: "destination square", Got: body}
	}
	req.To = chess.Sq(int(body[n-1]-'1'), int(body[n-2]-'a'))

	// Whatever precedes the destination narrows down the origin.
	for i, c := range []byte(body[:n-2]) {
		switch {
		case isCol(c) && req.FromFile < 0 && req.FromRank < 0:
			req.FromFile = int(c - 'a')
		case isRank(c) && req.FromRank < 0:
			req.FromRank = int(c - '1')
		default:
			return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: pos + i + 1,
				Expected: "origin file or rank", Got: string(c)}
		}
	}
	return req, nil
}

// isCoordinate reports the "e2e4" and "e7e8q" forms.
func isCoordinate(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	return isCol(s[0]) && isRank(s[1]) && isCol(s[2]) && isRank(s[3])
}

// parseCastle reads "O-O" or "O-O-O" with O, o or 0 and optional dashes.
func parseCastle(req Request, s string) (Request, error) {
	count := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isCastlingChar(s[i]):
			count++
		case s[i] == '-':
		default:
			return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: req.Text, Column: i + 1,
				Expected: "O-O or O-O-O", Got: string(s[i])}
		}
	}
	switch count {
	case 2:
		req.Castle = CastleShort
	case 3:
		req.Castle = CastleLong
	default:
		return req, &errors.ParseError{Err: errors.ErrParseFailure, Input: req.Text,
			Expected: "O-O or O-O-O", Got: s}
	}
	req.Kind = chess.King
	return req, nil
}
