package config

import (
	"fmt"

	"github.com/bhataktaBhai/ShallowRed/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// PGNFile receives the PGN record of the game when not empty
	PGNFile string

	// JSONFile receives the JSON record of the game when not empty
	JSONFile string

	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength uint

	// ShowBoard prints the board before every move
	ShowBoard bool

	// Glyphs draws pieces with Unicode chess symbols instead of letters
	Glyphs bool

	// Event and Site fill the matching PGN tags
	Event string
	Site  string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		ShowBoard:     true,
		Event:         "Casual game",
		Site:          "?",
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.PGNFile != "" && o.PGNFile == o.JSONFile {
		return fmt.Errorf("PGN and JSON both written to %q: %w", o.PGNFile, errors.ErrInvalidConfig)
	}
	return nil
}
