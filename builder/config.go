// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng     = nil (a fresh time-seeded source is drawn per call)
//   • maxCoef = DefaultMaxCoef

package builder

import (
	"math/rand"
	"time"
)

// DefaultMaxCoef bounds |k| of the random multiples used to disguise the
// triangular seed. Small values keep fixture entries readable.
const DefaultMaxCoef = 5

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "seed from the clock per call".
	rng *rand.Rand
	// Bound of the row/column combination multiples, >= 0.
	maxCoef int
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order; last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		maxCoef: DefaultMaxCoef,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded from the wall clock.
func rngFrom(cfg builderConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
