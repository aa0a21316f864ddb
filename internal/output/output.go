// Package output writes the record of a played game and renders the board
// for the console.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/config"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/game"
)

// SevenTagRoster lists the tags every PGN game carries, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// IsSevenTagRosterTag reports whether name is one of the roster tags.
func IsSevenTagRosterTag(name string) bool {
	for _, tag := range SevenTagRoster {
		if tag == name {
			return true
		}
	}
	return false
}

// Tags holds PGN tag pairs by name.
type Tags map[string]string

// GameTags returns the tags describing g: the roster filled from cfg and the
// game, plus SetUp and FEN for a non-standard start and PlyCount when
// configured. Date is left unknown; callers set it.
func GameTags(g *game.Game, cfg *config.Config) Tags {
	tags := Tags{
		"Event":  cfg.Output.Event,
		"Site":   cfg.Output.Site,
		"Date":   "????.??.??",
		"Round":  "-",
		"White":  playerName(cfg.Game.White),
		"Black":  playerName(cfg.Game.Black),
		"Result": g.Result(),
	}
	start := g.Start().FENWithClocks(g.StartClocks())
	if start != engine.InitialFEN {
		tags["SetUp"] = "1"
		tags["FEN"] = start
	}
	if cfg.Annotation.AddPlyCount {
		tags["PlyCount"] = fmt.Sprint(g.Ply())
	}
	return tags
}

func playerName(k config.PlayerKind) string {
	if k == config.Engine {
		return "ShallowRed"
	}
	return "Human"
}

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are dropped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *OutputWriter) print(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error met while writing.
func (o *OutputWriter) Err() error {
	return o.err
}

// OutputGame writes g as PGN: tags, a blank line, the wrapped movetext
// ending with the result, and a blank line.
func OutputGame(w io.Writer, g *game.Game, tags Tags, cfg *config.Config) error {
	if err := outputTags(w, tags); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := outputMoves(w, g, cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// outputTags writes the roster first, then any other tags by name.
func outputTags(w io.Writer, tags Tags) error {
	for _, tag := range SevenTagRoster {
		value := tags[tag]
		if value == "" {
			value = "?"
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value)); err != nil {
			return err
		}
	}

	var extra []string
	for tag := range tags {
		if !IsSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag])); err != nil {
			return err
		}
	}
	return nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// escapeComment keeps a brace inside comment text from closing it.
func escapeComment(s string) string {
	return strings.NewReplacer("{", "(", "}", ")").Replace(s)
}

func outputMoves(w io.Writer, g *game.Game, cfg *config.Config) error {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	moveNum := g.StartClocks().FullmoveNumber
	for i, rec := range g.History() {
		if rec.Side == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(rec.SAN)
		if rec.Comment != "" {
			ow.Write("{" + escapeComment(rec.Comment) + "}")
		}
		if rec.Side == chess.Black {
			moveNum++
		}
	}

	if cfg.Annotation.AddFENComment {
		ow.Write("{" + g.FEN() + "}")
	}
	ow.Write(g.Result())
	ow.NewLine()
	return ow.Err()
}
