package renderer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParallelism is returned for a negative worker count
	ErrInvalidParallelism = errors.New("invalid parallelism")
	// ErrInvalidConfig is returned when render limits are out of range
	ErrInvalidConfig = errors.New("invalid render config")
)

// Config contains configuration for rendering
type Config struct {
	NumWorkers     int     // Number of parallel workers (0 = derive from CPU cores)
	MaxDepth       int     // Maximum recursion depth of reflected and refracted rays
	MinK           float64 // Contribution below which recursion and shadow tests stop
	BundleSize     int     // Rays per glossy or diffuse-glass bundle, including the ideal ray
	BundleDistance float64 // Distance from a bundle's origin to its sampling disc
	Seed           int64   // Base seed for the per-worker random generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers:     0,
		MaxDepth:       10,
		MinK:           0.001,
		BundleSize:     16,
		BundleDistance: 100,
		Seed:           42,
	}
}

// Validate checks every field is in range
func (c Config) Validate() error {
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidParallelism, c.NumWorkers)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d must be at least 1", ErrInvalidConfig, c.MaxDepth)
	}
	if c.MinK <= 0 || c.MinK >= 1 {
		return fmt.Errorf("%w: min k %g must be in (0, 1)", ErrInvalidConfig, c.MinK)
	}
	if c.BundleSize < 1 {
		return fmt.Errorf("%w: bundle size %d must be at least 1", ErrInvalidConfig, c.BundleSize)
	}
	if c.BundleDistance <= 0 {
		return fmt.Errorf("%w: bundle distance %g must be positive", ErrInvalidConfig, c.BundleDistance)
	}
	return nil
}
