// Package config provides configuration types for the arrays-demo command.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the configuration for the arrays-demo command.
type Config struct {
	// Length is the number of elements in the demo fixed array.
	Length int

	// Seed seeds the pseudo-random fill. Zero means seed from the wall clock.
	Seed uint64

	// Dynamic also copies the values into an arena-backed DynamicArray and
	// reports its growth.
	Dynamic bool

	// ChunkSize is the arena chunk size in slots used with Dynamic.
	ChunkSize int

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Length:    10,
		Seed:      0,
		Dynamic:   false,
		ChunkSize: 64,
		Verbose:   false,
	}
}

// Validate reports whether the configuration can be run.
func (c *Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("%w: length %d is negative", ErrInvalid, c.Length)
	}
	if c.Dynamic && c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalid, c.ChunkSize)
	}
	return nil
}

// EffectiveSeed returns Seed, or a value derived from now when Seed is zero.
func (c *Config) EffectiveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
