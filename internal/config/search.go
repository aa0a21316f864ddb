package config

import (
	"fmt"
	"io"

	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/search"
)

// MaxDepth bounds the nominal search depth accepted from the command line.
const MaxDepth = 8

// SearchConfig holds the settings of the engine player.
type SearchConfig struct {
	Depth         int   // Nominal plies searched below the root
	MaxExtensions int   // Forcing extensions allowed along one line
	Seed          int64 // Seeds the tie-break between equal moves
	Workers       int   // Root moves scored in parallel when > 1
	ReuseTree     bool  // Keep the searched subtree between moves
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	d := search.DefaultConfig()
	return &SearchConfig{
		Depth:         d.Depth,
		MaxExtensions: d.MaxExtensions,
		Seed:          1,
		Workers:       d.Workers,
		ReuseTree:     d.ReuseTree,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d exceeds %d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	return s.Engine(nil).Validate()
}

// Engine converts the settings to a search.Config writing statistics to trace.
func (s *SearchConfig) Engine(trace io.Writer) search.Config {
	return search.Config{
		Depth:         s.Depth,
		MaxExtensions: s.MaxExtensions,
		Workers:       s.Workers,
		ReuseTree:     s.ReuseTree,
		Seed:          s.Seed,
		Trace:         trace,
	}
}
