package output

import (
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags        map[string]string `json:"tags"`
	Moves       []JSONMove        `json:"moves,omitempty"`
	Result      string            `json:"result"`
	Termination string            `json:"termination,omitempty"`
	PlyCount    int               `json:"plyCount"`
	InitialFEN  string            `json:"initialFEN"`
	FinalFEN    string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game and its tags to JSON format.
func GameToJSON(g *game.Game, tags Tags) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(tags),
		Result:     g.Result(),
		PlyCount:   g.Ply(),
		InitialFEN: g.Start().FENWithClocks(g.StartClocks()),
		FinalFEN:   g.FEN(),
	}
	if g.Status().Over() {
		jg.Termination = g.Status().String()
	}

	moveNum := g.StartClocks().FullmoveNumber
	for _, rec := range g.History() {
		jg.Moves = append(jg.Moves, convertMove(rec, moveNum))
		if rec.Side == chess.Black {
			moveNum++
		}
	}
	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags Tags) map[string]string {
	result := make(map[string]string, len(tags)+len(SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

func convertMove(rec game.Record, moveNum int) JSONMove {
	jm := JSONMove{
		MoveNumber: moveNum,
		Color:      strings.ToLower(rec.Side.String()),
		SAN:        rec.SAN,
		UCI:        rec.Move.String(),
		From:       rec.Move.From.String(),
		To:         rec.Move.To.String(),
		Piece:      kindName(rec.Piece),
		Comment:    rec.Comment,
	}
	if rec.Captured.Kind != chess.NoKind {
		jm.Captured = kindName(rec.Captured.Kind)
	}
	if rec.Move.Promotion != chess.NoKind {
		jm.Promotion = kindName(rec.Move.Promotion)
	}
	return jm
}

func kindName(k chess.PieceKind) string {
	return strings.ToLower(k.String())
}
