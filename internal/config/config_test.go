package config

import (
	"bytes"
	"testing"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/testutil"
)

// TestSearchConfig_Defaults verifies SearchConfig matches the searcher defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 3 {
		t.Errorf("Depth = %d, want 3", cfg.Depth)
	}
	if cfg.MaxExtensions != 2 {
		t.Errorf("MaxExtensions = %d, want 2", cfg.MaxExtensions)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if !cfg.ReuseTree {
		t.Error("ReuseTree should be true by default")
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.PGNFile != "" || cfg.JSONFile != "" {
		t.Error("no record file should be set by default")
	}
}

// TestAnnotationConfig_Defaults verifies AnnotationConfig has sensible defaults
func TestAnnotationConfig_Defaults(t *testing.T) {
	cfg := NewAnnotationConfig()

	if cfg.AddEngineComments || cfg.AddFENComment || cfg.AddPlyCount {
		t.Errorf("annotations should be off by default: %+v", cfg)
	}
}

func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()
	testutil.AssertEqual(t, cfg.Player(chess.White), Human)
	testutil.AssertEqual(t, cfg.Player(chess.Black), Engine)

	pos, clocks, err := cfg.StartPosition()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.FEN(), testutil.StartFEN)
	testutil.AssertEqual(t, clocks.FullmoveNumber, 1)
}

func TestGameConfig_StartFEN(t *testing.T) {
	cfg := &GameConfig{StartFEN: "4k3/8/8/8/8/8/8/R3K3 b - - 7 30"}
	pos, clocks, err := cfg.StartPosition()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.Turn(), chess.Black)
	testutil.AssertEqual(t, clocks.FullmoveNumber, 30)
	testutil.AssertEqual(t, clocks.HalfmoveClock, 7)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero depth", func(c *Config) { c.Search.Depth = 0 }, true},
		{"too deep", func(c *Config) { c.Search.Depth = MaxDepth + 1 }, true},
		{"deepest allowed", func(c *Config) { c.Search.Depth = MaxDepth }, false},
		{"negative extensions", func(c *Config) { c.Search.MaxExtensions = -1 }, true},
		{"no extensions", func(c *Config) { c.Search.MaxExtensions = 0 }, false},
		{"negative workers", func(c *Config) { c.Search.Workers = -2 }, true},
		{"negative max plies", func(c *Config) { c.Game.MaxPlies = -1 }, true},
		{"bad FEN", func(c *Config) { c.Game.StartFEN = "not a position" }, true},
		{"missing king", func(c *Config) { c.Game.StartFEN = "8/8/8/8/8/8/8/4K3 b - - 0 1" }, true},
		{"good FEN", func(c *Config) { c.Game.StartFEN = testutil.KiwipeteFEN }, false},
		{"short lines", func(c *Config) { c.Output.MaxLineLength = 10 }, true},
		{"same record file", func(c *Config) { c.Output.PGNFile, c.Output.JSONFile = "g.out", "g.out" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestParsePlayerKind(t *testing.T) {
	tests := []struct {
		in      string
		want    PlayerKind
		wantErr bool
	}{
		{"human", Human, false},
		{"Engine", Engine, false},
		{" e ", Engine, false},
		{"computer", Engine, false},
		{"h", Human, false},
		{"robot", Human, true},
		{"", Human, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlayerKind(tt.in)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPlayerKind_String(t *testing.T) {
	testutil.AssertEqual(t, Human.String(), "human")
	testutil.AssertEqual(t, Engine.String(), "engine")
}

func TestSearchConfig_Engine(t *testing.T) {
	var trace bytes.Buffer
	cfg := &SearchConfig{Depth: 4, MaxExtensions: 1, Seed: 9, Workers: 3, ReuseTree: false}
	got := cfg.Engine(&trace)

	testutil.AssertEqual(t, got.Depth, 4)
	testutil.AssertEqual(t, got.MaxExtensions, 1)
	testutil.AssertEqual(t, got.Seed, int64(9))
	testutil.AssertEqual(t, got.Workers, 3)
	testutil.AssertFalse(t, got.ReuseTree)
	testutil.AssertTrue(t, got.Trace == &trace, "trace writer not passed through")
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfig()
	cfg.SetLog(&log)
	cfg.Verbosity = 1

	cfg.Logf(1, "shown %d\n", 1)
	cfg.Logf(2, "hidden %d\n", 2)
	testutil.AssertEqual(t, log.String(), "shown 1\n")

	cfg.LogFile = nil
	cfg.Logf(0, "no writer") // must not panic
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithDepth(5).
		WithMaxExtensions(0).
		WithSeed(42).
		WithWorkers(4).
		WithTreeReuse(false).
		WithPlayers(Engine, Engine).
		WithStartFEN(testutil.KiwipeteFEN).
		WithMaxPlies(200).
		WithPGNFile("game.pgn").
		WithJSONFile("game.json").
		WithMaxLineLength(120).
		ShowBoard(false).
		WithGlyphs(true).
		WithEngineComments(true).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	want := &SearchConfig{Depth: 5, MaxExtensions: 0, Seed: 42, Workers: 4, ReuseTree: false}
	testutil.AssertEqual(t, cfg.Search, want)
	testutil.AssertEqual(t, cfg.Game, &GameConfig{White: Engine, Black: Engine, StartFEN: testutil.KiwipeteFEN, MaxPlies: 200})
	testutil.AssertEqual(t, cfg.Output.PGNFile, "game.pgn")
	testutil.AssertEqual(t, cfg.Output.JSONFile, "game.json")
	testutil.AssertEqual(t, cfg.Output.MaxLineLength, uint(120))
	testutil.AssertFalse(t, cfg.Output.ShowBoard)
	testutil.AssertTrue(t, cfg.Output.Glyphs)
	testutil.AssertTrue(t, cfg.Annotation.AddEngineComments)
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertTrue(t, cfg.OutputFile == &out)
	testutil.AssertNoError(t, cfg.Validate())
}
