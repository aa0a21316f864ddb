package config

import (
	"fmt"
	"strings"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// PlayerKind says who moves for a side.
type PlayerKind int

const (
	Human  PlayerKind = iota // Moves typed on the console
	Engine                   // Moves chosen by the searcher
)

func (k PlayerKind) String() string {
	if k == Engine {
		return "engine"
	}
	return "human"
}

// ParsePlayerKind reads "human" or "engine" (any case, or the initial).
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return Human, nil
	case "engine", "e", "computer", "c":
		return Engine, nil
	}
	return Human, fmt.Errorf("player %q is neither human nor engine: %w", s, errors.ErrInvalidConfig)
}

// GameConfig holds settings for the game being played.
type GameConfig struct {
	White    PlayerKind
	Black    PlayerKind
	StartFEN string // Empty for the standard start position
	MaxPlies int    // 0 = no limit
}

// NewGameConfig creates a GameConfig with default values: a human playing
// White against the engine.
func NewGameConfig() *GameConfig {
	return &GameConfig{White: Human, Black: Engine}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxPlies < 0 {
		return fmt.Errorf("max plies %d must not be negative: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	if g.StartFEN != "" {
		if _, _, err := engine.ParseFENWithClocks(g.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// StartPosition returns the configured start position and its counters.
func (g *GameConfig) StartPosition() (*engine.Position, engine.Clocks, error) {
	if g.StartFEN == "" {
		return engine.StartingPosition(), engine.Clocks{FullmoveNumber: 1}, nil
	}
	return engine.ParseFENWithClocks(g.StartFEN)
}

// Player returns who moves for side.
func (g *GameConfig) Player(side chess.Side) PlayerKind {
	if side == chess.White {
		return g.White
	}
	return g.Black
}
