package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestRulesConfig_Defaults verifies optional rules are off by default
func TestRulesConfig_Defaults(t *testing.T) {
	cfg := NewRulesConfig()

	if cfg.DetectInsufficientMaterial {
		t.Error("DetectInsufficientMaterial should be false by default")
	}
}

// TestDiagramConfig_Defaults verifies DiagramConfig has sensible defaults
func TestDiagramConfig_Defaults(t *testing.T) {
	cfg := NewDiagramConfig()

	if cfg.SquareSize != 64 {
		t.Errorf("SquareSize = %d, want 64", cfg.SquareSize)
	}
	if !cfg.ShowCoordinates {
		t.Error("ShowCoordinates should be true by default")
	}
	if cfg.LightColour == cfg.DarkColour {
		t.Errorf("LightColour and DarkColour are both %q", cfg.LightColour)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default Validate() = %v, want nil", err)
	}
}

// TestDiagramConfig_Validate verifies diagram config validation
func TestDiagramConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DiagramConfig)
		wantErr bool
	}{
		{"defaults", func(*DiagramConfig) {}, false},
		{"tiny squares", func(d *DiagramConfig) { d.SquareSize = 4 }, true},
		{"empty light colour", func(d *DiagramConfig) { d.LightColour = "" }, true},
		{"blank capture colour", func(d *DiagramConfig) { d.CaptureColour = "  " }, true},
		{"named colours", func(d *DiagramConfig) { d.LightColour, d.DarkColour = "white", "gray" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDiagramConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestPerftConfig_Validate verifies perft config validation
func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{"no perft", PerftConfig{Depth: 0, Workers: 1}, false},
		{"depth 4 on 8 workers", PerftConfig{Depth: 4, Workers: 8}, false},
		{"max depth", PerftConfig{Depth: MaxPerftDepth, Workers: 1}, false},
		{"negative depth", PerftConfig{Depth: -1, Workers: 1}, true},
		{"too deep", PerftConfig{Depth: MaxPerftDepth + 1, Workers: 1}, true},
		{"no workers", PerftConfig{Depth: 3, Workers: 0}, true},
		{"cache disabled", PerftConfig{Depth: 3, Workers: 1, CacheSize: 0}, false},
		{"negative cache", PerftConfig{Depth: 3, Workers: 1, CacheSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_Defaults verifies NewConfig wires every sub-config
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Rules == nil || cfg.Diagram == nil || cfg.Perft == nil {
		t.Fatal("NewConfig left a sub-config nil")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Perft.Workers < 1 {
		t.Errorf("Perft.Workers = %d, want >= 1", cfg.Perft.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestConfig_Validate verifies top-level validation reaches sub-configs
func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	cfg.Verbosity = -1
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("negative verbosity: Validate() = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfig()
	cfg.Perft.Depth = 99
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("deep perft: Validate() = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	cfg.SetLog(logBuf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != logBuf {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithJSONOutput(true).
		WithInsufficientMaterial(true).
		WithPerft(3, 2).
		WithSquareSize(40).
		WithCoordinates(false).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if !cfg.JSONFormat {
		t.Error("JSONFormat should be true")
	}
	if !cfg.Rules.DetectInsufficientMaterial {
		t.Error("Rules.DetectInsufficientMaterial should be true")
	}
	if cfg.Perft.Depth != 3 || cfg.Perft.Workers != 2 {
		t.Errorf("Perft = %+v, want depth 3 workers 2", *cfg.Perft)
	}
	if cfg.Diagram.SquareSize != 40 {
		t.Errorf("Diagram.SquareSize = %d, want 40", cfg.Diagram.SquareSize)
	}
	if cfg.Diagram.ShowCoordinates {
		t.Error("Diagram.ShowCoordinates should be false")
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
