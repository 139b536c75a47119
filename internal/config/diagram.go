package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DefaultSquareSize is the default edge length of a diagram square in pixels.
const DefaultSquareSize = 64

// DiagramConfig holds settings for SVG board diagrams.
type DiagramConfig struct {
	// SquareSize is the edge length of one square in pixels
	SquareSize int

	// Square fill colours, as CSS colour values
	LightColour string
	DarkColour  string

	// HighlightColour marks the selected piece and its quiet destinations
	HighlightColour string

	// CaptureColour marks capture destinations
	CaptureColour string

	// ShowCoordinates draws file letters and rank numbers
	ShowCoordinates bool
}

// NewDiagramConfig creates a DiagramConfig with default values.
func NewDiagramConfig() *DiagramConfig {
	return &DiagramConfig{
		SquareSize:      DefaultSquareSize,
		LightColour:     "#f0d9b5",
		DarkColour:      "#b58863",
		HighlightColour: "#f7ec74",
		CaptureColour:   "#e06c5b",
		ShowCoordinates: true,
	}
}

// Validate checks that the diagram configuration is usable.
func (d *DiagramConfig) Validate() error {
	if d.SquareSize < 8 {
		return fmt.Errorf("square size %d is below 8: %w", d.SquareSize, errors.ErrInvalidConfig)
	}
	for name, colour := range map[string]string{
		"light":     d.LightColour,
		"dark":      d.DarkColour,
		"highlight": d.HighlightColour,
		"capture":   d.CaptureColour,
	} {
		if strings.TrimSpace(colour) == "" {
			return fmt.Errorf("%s colour is empty: %w", name, errors.ErrInvalidConfig)
		}
	}
	return nil
}
