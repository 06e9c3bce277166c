// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and panics on nil in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng is nil and rngFrom draws a fresh source.
	cfgDefault := newBuilderConfig()
	require.Nil(t, cfgDefault.rng)
	require.NotNil(t, rngFrom(cfgDefault))

	// 2. WithRand sets the shared stream.
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	require.Same(t, expRNG, cfgWithRand.rng)
	require.Same(t, expRNG, rngFrom(cfgWithRand))

	// 3. WithRand(nil) is a programmer error.
	require.Panics(t, func() { WithRand(nil) })

	// 4. WithSeed produces reproducible draws.
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	require.Equal(t, cfgSeed1.rng.Int63(), cfgSeed2.rng.Int63())
	require.Equal(t, cfgSeed1.rng.Int63(), cfgSeed2.rng.Int63())
}

// TestMaxCoefOption checks defaults, overrides (last wins) and validation.
func TestMaxCoefOption(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultMaxCoef, newBuilderConfig().maxCoef)
	require.Equal(t, 2, newBuilderConfig(WithMaxCoef(9), WithMaxCoef(2)).maxCoef)
	require.Equal(t, 0, newBuilderConfig(WithMaxCoef(0)).maxCoef)
	require.Panics(t, func() { WithMaxCoef(-1) })
}

// TestMulAdd covers the overflow guards of the int64 workspace.
func TestMulAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, k, b int64
		want    int64
		ok      bool
	}{
		{"plain", 3, 2, 5, 13, true},
		{"zero k", math.MaxInt64, 0, 7, math.MaxInt64, true},
		{"negative", -3, -2, 5, -13, true},
		{"product overflow", 0, 5, math.MaxInt64 / 2, 0, false},
		{"sum overflow", math.MaxInt64, 1, 1, 0, false},
		{"sum underflow", math.MinInt64, -1, 1, 0, false},
		{"min times minus one", 0, -1, math.MinInt64, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := mulAdd(tc.a, tc.k, tc.b)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

// TestExact checks lossless conversion detection per element kind.
func TestExact(t *testing.T) {
	t.Parallel()

	v8, ok := exact[int8](-128)
	require.True(t, ok)
	require.Equal(t, int8(-128), v8)

	_, ok = exact[int8](200)
	require.False(t, ok)

	_, ok = exact[uint64](-1)
	require.False(t, ok)

	u, ok := exact[uint16](65535)
	require.True(t, ok)
	require.Equal(t, uint16(65535), u)

	_, ok = exact[float32](1<<24 + 1)
	require.False(t, ok)

	f, ok := exact[float64](-(1 << 52))
	require.True(t, ok)
	require.Equal(t, float64(-(1 << 52)), f)
}
