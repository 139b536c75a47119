// Package config provides configuration for the chessrules tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=running commentary

	// StartFEN is the position sessions start from. Empty means the
	// standard starting position.
	StartFEN string

	// JSONFormat writes session views as JSON instead of text.
	JSONFormat bool

	// Grouped settings
	Rules   *RulesConfig
	Diagram *DiagramConfig
	Perft   *PerftConfig

	// File handling
	OutputFilename string
	DiagramFile    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Rules:      NewRulesConfig(),
		Diagram:    NewDiagramConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration and every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Diagram.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
