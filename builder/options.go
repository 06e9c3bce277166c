// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig instance
// before the matrix is built.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The stream is shared: consecutive calls
// with the same *rand.Rand continue drawing from it. *rand.Rand is not safe for
// concurrent use; give each goroutine its own.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and fixture generators to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxCoef bounds the random multiples k ∈ [-max, max] used when adding
// row 0 to the other rows and the last column to the other columns.
// 0 disables the disguise and returns the upper-triangular seed.
// Panics on negative values.
func WithMaxCoef(max int) BuilderOption {
	if max < 0 {
		panic("builder: WithMaxCoef(negative)")
	}
	return func(c *builderConfig) {
		c.maxCoef = max
	}
}
