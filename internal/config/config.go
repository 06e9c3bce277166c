// Package config holds the command-line configuration shared by cmd/det and
// cmd/gen, plus the zap logger they log through.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/PozhiloyPumba/Ilab-KI/builder"
)

// Element types accepted by cmd/gen.
const (
	ElemInt   = "int"
	ElemFloat = "float"
)

// MaxAttempts bounds how many times cmd/gen re-draws a fixture whose
// determinant check fails.
const MaxAttempts = 64

// seedGamma spreads attempt seeds apart (the 64-bit golden ratio constant).
const seedGamma uint64 = 0x9E3779B97F4A7C15

var (
	// ErrInvalidConfig is returned by Validate for unusable flag combinations.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config carries the flags common to both commands.
type Config struct {
	LogLevel LogLevel
	Zstd     bool
}

// Gen is the cmd/gen configuration.
type Gen struct {
	Config

	Size     int
	Det      int64
	Count    int
	Seed     int64
	Type     string
	Progress bool
	MaxCoef  int
}

// DefaultGen returns the flag defaults of cmd/gen.
func DefaultGen() Gen {
	return Gen{
		Config:  Config{LogLevel: LogLevelError},
		Size:    3,
		Det:     10,
		Count:   1,
		Type:    ElemInt,
		MaxCoef: builder.DefaultMaxCoef,
	}
}

// Validate reports the first unusable field.
func (g Gen) Validate() error {
	if g.Size < 1 {
		return fmt.Errorf("%w: n=%d, want >= 1", ErrInvalidConfig, g.Size)
	}
	if g.Count < 1 {
		return fmt.Errorf("%w: count=%d, want >= 1", ErrInvalidConfig, g.Count)
	}
	if g.Type != ElemInt && g.Type != ElemFloat {
		return fmt.Errorf("%w: type=%q, want %q or %q", ErrInvalidConfig, g.Type, ElemInt, ElemFloat)
	}
	if g.MaxCoef < 0 {
		return fmt.Errorf("%w: max-coef=%d, want >= 0", ErrInvalidConfig, g.MaxCoef)
	}
	if g.Seed != 0 && g.Count > 1 && g.Seed > math.MaxInt64-int64(g.Count) {
		return fmt.Errorf("%w: seed=%d leaves no room for %d fixtures", ErrInvalidConfig, g.Seed, g.Count)
	}

	return nil
}

// FixtureSeed returns the seed of fixture i, or 0 when generation is
// time-seeded.
func (g Gen) FixtureSeed(i int) int64 {
	if g.Seed == 0 {
		return 0
	}

	return g.Seed + int64(i)
}

// AttemptSeed returns the seed of re-draw attempt a of fixture i. Attempt 0
// is FixtureSeed(i); later attempts step by seedGamma with wraparound, so
// they stay deterministic for a fixed base seed and never collide with the
// other fixtures' first attempts in practice.
func (g Gen) AttemptSeed(i, attempt int) int64 {
	base := g.FixtureSeed(i)
	if attempt == 0 {
		return base
	}

	return int64(uint64(base) + uint64(attempt)*seedGamma)
}
