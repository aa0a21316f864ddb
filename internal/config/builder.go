package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the nominal search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithMaxExtensions sets the forcing extension cap.
func (b *ConfigBuilder) WithMaxExtensions(n int) *ConfigBuilder {
	b.cfg.Search.MaxExtensions = n
	return b
}

// WithSeed sets the tie-break seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithWorkers sets the number of root-parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithTreeReuse controls whether the search tree is kept between moves.
func (b *ConfigBuilder) WithTreeReuse(enabled bool) *ConfigBuilder {
	b.cfg.Search.ReuseTree = enabled
	return b
}

// WithPlayers sets who moves for each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Game.White = white
	b.cfg.Game.Black = black
	return b
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithMaxPlies ends the game after n plies.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = n
	return b
}

// WithPGNFile records the game as PGN in path.
func (b *ConfigBuilder) WithPGNFile(path string) *ConfigBuilder {
	b.cfg.Output.PGNFile = path
	return b
}

// WithJSONFile records the game as JSON in path.
func (b *ConfigBuilder) WithJSONFile(path string) *ConfigBuilder {
	b.cfg.Output.JSONFile = path
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// ShowBoard controls whether the board is printed before each move.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithGlyphs draws the board with Unicode chess symbols.
func (b *ConfigBuilder) WithGlyphs(enabled bool) *ConfigBuilder {
	b.cfg.Output.Glyphs = enabled
	return b
}

// WithEngineComments annotates engine moves with their score.
func (b *ConfigBuilder) WithEngineComments(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddEngineComments = enabled
	return b
}

// WithOutput sets the console writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
