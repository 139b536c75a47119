package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; deeper trees take hours.
const MaxPerftDepth = 7

// DefaultPerftCacheSize is the default transposition table capacity.
const DefaultPerftCacheSize = 1 << 20

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count (0 = no perft run)
	Depth int

	// Workers is the number of goroutines splitting the root moves
	Workers int

	// CacheSize caps the shared transposition table (0 = no cache)
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:   runtime.NumCPU(),
		CacheSize: DefaultPerftCacheSize,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d is below 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("perft cache size %d is negative: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
