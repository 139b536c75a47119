// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard start)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output session views in JSON format")
	svgFile      = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	squareSize   = flag.Int("square", config.DefaultSquareSize, "SVG square size in pixels")
	noCoords     = flag.Bool("nocoords", false, "Omit coordinates from SVG diagrams")

	// Rules options
	insufficient = flag.Bool("insufficient", false, "End the game on insufficient mating material")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count move-tree leaves to this depth and exit")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")
	hashSize   = flag.Int("hashsize", config.DefaultPerftCacheSize, "Perft transposition table entries (0 = disabled)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 running commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyOutputFlags(cfg)
	applyDiagramFlags(cfg)
	applyRulesFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSONFormat = *jsonOutput
	cfg.OutputFilename = *outputFile
	cfg.DiagramFile = *svgFile
}

// applyDiagramFlags configures SVG diagram settings.
func applyDiagramFlags(cfg *config.Config) {
	cfg.Diagram.SquareSize = *squareSize
	cfg.Diagram.ShowCoordinates = !*noCoords
}

// applyRulesFlags configures optional rules.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.DetectInsufficientMaterial = *insufficient
}

// applyPerftFlags configures perft settings. Zero workers keeps the CPU default.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.CacheSize = *hashSize
}
