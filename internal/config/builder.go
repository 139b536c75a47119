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

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithInsufficientMaterial enables insufficient material detection.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Rules.DetectInsufficientMaterial = enabled
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithSquareSize sets the diagram square size in pixels.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Diagram.SquareSize = size
	return b
}

// WithCoordinates controls whether diagrams show coordinates.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Diagram.ShowCoordinates = show
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
