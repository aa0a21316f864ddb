// session.go - The turn loop between human and engine players
package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/config"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/game"
	"github.com/bhataktaBhai/ShallowRed/internal/notation"
	"github.com/bhataktaBhai/ShallowRed/internal/output"
	"github.com/bhataktaBhai/ShallowRed/internal/search"
)

const helpText = `Enter moves in algebraic (Nf3, exd5, e8=Q, O-O) or coordinate (g1f3) form.
Commands: board, fen, moves, help, quit
`

// Session plays one game on the console.
type Session struct {
	cfg       *config.Config
	game      *game.Game
	searchers map[chess.Side]*search.Searcher
	in        *bufio.Scanner
	out       io.Writer
	quit      bool
}

// NewSession prepares a game from cfg. Human moves are read from in.
func NewSession(cfg *config.Config, in io.Reader) (*Session, error) {
	pos, clocks, err := cfg.Game.StartPosition()
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:       cfg,
		game:      game.New(pos, game.WithClocks(clocks), game.WithMaxPlies(cfg.Game.MaxPlies)),
		searchers: make(map[chess.Side]*search.Searcher),
		in:        bufio.NewScanner(in),
		out:       cfg.OutputFile,
	}

	var trace io.Writer
	if cfg.Verbosity >= 2 {
		trace = cfg.LogFile
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if cfg.Game.Player(side) != config.Engine {
			continue
		}
		scfg := cfg.Search.Engine(trace)
		// Two engines share the seed but not the random stream.
		if side == chess.Black {
			scfg.Seed++
		}
		searcher, err := search.New(scfg)
		if err != nil {
			return nil, err
		}
		s.searchers[side] = searcher
	}
	return s, nil
}

// Game returns the game being played.
func (s *Session) Game() *game.Game {
	return s.game
}

// Run plays until the game ends, the human quits or input runs out.
func (s *Session) Run() error {
	for !s.game.Status().Over() && !s.quit {
		side := s.game.Position().Turn()
		if s.cfg.Output.ShowBoard {
			s.showBoard()
		}
		var err error
		if searcher, ok := s.searchers[side]; ok {
			err = s.engineTurn(searcher)
		} else {
			err = s.humanTurn()
		}
		if err != nil {
			return err
		}
		if !s.quit && s.game.Position().InCheck() && !s.game.Status().Over() {
			fmt.Fprintf(s.out, "%s is in check.\n", s.game.Position().Turn())
		}
	}

	if s.game.Status().Over() {
		if s.cfg.Output.ShowBoard {
			s.showBoard()
		}
		fmt.Fprintf(s.out, "Game over: %s\n", s.game.Summary())
	} else {
		fmt.Fprintf(s.out, "Game abandoned after %d plies.\n", s.game.Ply())
	}
	s.cfg.Logf(1, "result %s after %d plies\n", s.game.Result(), s.game.Ply())
	return nil
}

// perspective is the side shown at the bottom of the board: the human's,
// or White's when both or neither side is human.
func (s *Session) perspective() chess.Side {
	_, whiteEngine := s.searchers[chess.White]
	_, blackEngine := s.searchers[chess.Black]
	if whiteEngine && !blackEngine {
		return chess.Black
	}
	return chess.White
}

func (s *Session) style() output.BoardStyle {
	if s.cfg.Output.Glyphs {
		return output.Glyphs
	}
	return output.Letters
}

func (s *Session) showBoard() {
	pos := s.game.Position()
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, output.RenderBoard(pos, s.perspective(), s.style()))
	fmt.Fprint(s.out, output.RenderCaptured(pos, s.style()))
}

func (s *Session) engineTurn(searcher *search.Searcher) error {
	pos := s.game.Position()
	m, err := searcher.SelectMove(pos)
	if err != nil {
		return err
	}
	san := notation.SAN(pos, m)
	if err := s.game.Play(m); err != nil {
		return fmt.Errorf("engine move %v: %w", m, err)
	}
	if s.cfg.Annotation.AddEngineComments {
		st := searcher.Stats()
		s.game.Annotate(fmt.Sprintf("%+.2f/%d", st.Score, s.cfg.Search.Depth))
	}
	fmt.Fprintf(s.out, "%s plays %s\n", pos.Turn(), san)
	return nil
}

// humanTurn reads lines until one is a legal move or a quit request.
func (s *Session) humanTurn() error {
	side := s.game.Position().Turn()
	for {
		fmt.Fprintf(s.out, "%s to move> ", side)
		if !s.in.Scan() {
			s.quit = true
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			s.quit = true
			return nil
		case "help", "?":
			fmt.Fprint(s.out, helpText)
			continue
		case "board":
			s.showBoard()
			continue
		case "fen":
			fmt.Fprintln(s.out, s.game.FEN())
			continue
		case "moves":
			fmt.Fprintln(s.out, strings.Join(s.legalSAN(), " "))
			continue
		}

		if _, err := s.game.PlayText(line); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		return nil
	}
}

func (s *Session) legalSAN() []string {
	pos := s.game.Position()
	var out []string
	for _, m := range pos.AllLegalMoves() {
		out = append(out, notation.SAN(pos, m))
	}
	sort.Strings(out)
	return out
}

// WriteRecords writes the configured PGN and JSON records of the game.
func (s *Session) WriteRecords(tags output.Tags, open func(path string) (io.WriteCloser, error)) error {
	records := []struct {
		path   string
		writer func(io.Writer) output.GameWriter
	}{
		{s.cfg.Output.PGNFile, func(w io.Writer) output.GameWriter { return output.NewPGNWriter(w, s.cfg) }},
		{s.cfg.Output.JSONFile, func(w io.Writer) output.GameWriter { return output.NewJSONWriterSingle(w) }},
	}
	for _, r := range records {
		if r.path == "" {
			continue
		}
		f, err := open(r.path)
		if err != nil {
			return errors.Wrap(err, "creating game record")
		}
		gw := r.writer(f)
		err = gw.WriteGame(s.game, tags)
		if err == nil {
			err = gw.Close()
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return errors.Wrapf(err, "writing %s", r.path)
		}
		s.cfg.Logf(1, "game written to %s\n", r.path)
	}
	return nil
}
