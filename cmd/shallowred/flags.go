// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/bhataktaBhai/ShallowRed/internal/config"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "Who plays White: human or engine")
	blackPlayer = flag.String("black", "engine", "Who plays Black: human or engine")

	// Search
	depth      = flag.Int("depth", 3, "Nominal search depth in plies")
	extensions = flag.Int("ext", 2, "Forcing extensions allowed along one line")
	seed       = flag.Int64("seed", 1, "Seed for breaking ties between equal moves")
	workers    = flag.Int("workers", 1, "Root moves scored in parallel (1 = sequential)")
	reuseTree  = flag.Bool("reuse", true, "Keep the searched tree between moves")

	// Game
	startFEN = flag.String("fen", "", "Start from this FEN instead of the initial position")
	maxPlies = flag.Int("maxplies", 0, "Stop after N plies (0 = no limit)")

	// Output options
	pgnFile     = flag.String("pgn", "", "Write the game as PGN to this file")
	jsonFile    = flag.String("json", "", "Write the game as JSON to this file")
	lineLength  = flag.Int("w", 80, "Maximum PGN line length")
	showBoard   = flag.Bool("board", true, "Print the board before every move")
	useGlyphs   = flag.Bool("glyphs", false, "Draw pieces with Unicode chess symbols")
	eventName   = flag.String("event", "Casual game", "PGN Event tag")
	engineNotes = flag.Bool("comments", false, "Annotate engine moves with their score")
	addFEN      = flag.Bool("fencomment", false, "Add the final FEN as a PGN comment")
	addPlyCount = flag.Bool("plycount", false, "Add a PlyCount tag")

	// Logging
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 results, 2 search statistics")
	quiet     = flag.Bool("s", false, "Silent mode: same as -v 0")

	help    = flag.Bool("help", false, "Show usage")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	applySearchFlags(cfg)
	applyGameFlags(cfg)
	applyOutputFlags(cfg)
	applyAnnotationFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyPlayerFlags sets who moves for each side.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Game.White = white
	cfg.Game.Black = black
	return nil
}

// applySearchFlags configures the engine player.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.MaxExtensions = *extensions
	cfg.Search.Seed = *seed
	cfg.Search.Workers = *workers
	cfg.Search.ReuseTree = *reuseTree
}

// applyGameFlags configures the start position and move limit.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.MaxPlies = *maxPlies
}

// applyOutputFlags configures console and record output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.PGNFile = *pgnFile
	cfg.Output.JSONFile = *jsonFile
	cfg.Output.MaxLineLength = uint(max(*lineLength, 0))
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Glyphs = *useGlyphs
	cfg.Output.Event = *eventName
}

// applyAnnotationFlags configures annotations of the recorded game.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddEngineComments = *engineNotes
	cfg.Annotation.AddFENComment = *addFEN
	cfg.Annotation.AddPlyCount = *addPlyCount
}
