// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_det.go - implementation of RandomWithDet(n, det).
//
// Canonical model:
//   - Seed: upper-triangular U with diag(1, …, 1, det) and strictly-upper
//     entries uniform in [-|det|, |det|]; det(U) = det by construction.
//   - Disguise: row_i += k_i·row_0 for i = 1..n-1, then col_j += k_j·col_{n-1}
//     for j = 0..n-2, each k uniform in [-maxCoef, maxCoef]. Both are
//     elementary "add a multiple" operations and leave det unchanged.
//
// Contract:
//   - n ≥ 1 (else ErrBadSize).
//   - Work happens in int64; any overflow → ErrOverflow.
//   - Every entry must convert to T exactly (else ErrUnrepresentable).
//   - Entries are integer-valued for every T, floats included.
//
// Determinism:
//   - Draw order: strictly-upper entries row-major, then the n-1 row
//     multiples, then the n-1 column multiples. Fixed seed → fixed matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).

package builder

import (
	"math"

	"github.com/PozhiloyPumba/Ilab-KI/matrix"
)

const (
	methodRandomWithDet = "RandomWithDet"
	minRandomDetSize    = 1
)

// RandomWithDet returns a random dense size×size matrix over T whose
// determinant is exactly det.
//
// The determinant is exact in exact (rational) arithmetic for every T: the
// entries are integers and the construction only adds multiples of rows and
// columns.
//
// matrix.Det computes through float64 and does NOT always reproduce det.
// Strictly-upper entries reach |det| and every disguise step adds up to
// maxCoef times a row or column, so entries grow to roughly maxCoef·|det|
// (and beyond for larger n) while the determinant stays at det. That
// cancellation makes the float64 result drift by a few units well below
// 2^53: at n=6, det=1000 with the default maxCoef most seeds give a value
// off by up to ~10. Small |det| or small n stay exact in practice; callers
// that need a verified fixture check matrix.Det and re-draw (see cmd/gen),
// or lower WithMaxCoef.
//
// Errors:
//   - ErrBadSize, ErrOverflow, ErrUnrepresentable (wrapped with context).
func RandomWithDet[T matrix.Number](size int, det int64, opts ...BuilderOption) (*matrix.Dense[T], error) {
	// 1) Validate parameters early (fail fast, no RNG draws on invalid input).
	if size < minRandomDetSize {
		return nil, builderErrorf(methodRandomWithDet, ErrBadSize, "n=%d < min=%d", size, minRandomDetSize)
	}
	if det == math.MinInt64 {
		return nil, builderErrorf(methodRandomWithDet, ErrOverflow, "|det| of %d", det)
	}
	absDet := det
	if absDet < 0 {
		absDet = -absDet
	}
	if absDet > (math.MaxInt64-1)/2 {
		return nil, builderErrorf(methodRandomWithDet, ErrOverflow, "sampling range [-%d, %d]", absDet, absDet)
	}

	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg)
	n := size
	span := 2*absDet + 1
	coefSpan := int64(2*cfg.maxCoef + 1)

	// 2) Upper-triangular seed.
	work := make([]int64, n*n)
	var i, j int
	for i = 0; i < n-1; i++ {
		work[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			work[i*n+j] = rng.Int63n(span) - absDet
		}
	}
	work[(n-1)*n+(n-1)] = det

	// 3) Disguise: rows first (multiples of row 0), then columns (multiples of
	// the last column).
	var k, v int64
	var ok bool
	for i = 1; i < n; i++ {
		k = rng.Int63n(coefSpan) - int64(cfg.maxCoef)
		for j = 0; j < n; j++ {
			if v, ok = mulAdd(work[i*n+j], k, work[j]); !ok {
				return nil, builderErrorf(methodRandomWithDet, ErrOverflow, "row %d += %d*row 0", i, k)
			}
			work[i*n+j] = v
		}
	}
	for j = 0; j < n-1; j++ {
		k = rng.Int63n(coefSpan) - int64(cfg.maxCoef)
		for i = 0; i < n; i++ {
			if v, ok = mulAdd(work[i*n+j], k, work[i*n+n-1]); !ok {
				return nil, builderErrorf(methodRandomWithDet, ErrOverflow, "col %d += %d*col %d", j, k, n-1)
			}
			work[i*n+j] = v
		}
	}

	// 4) Materialize into T through row views; every entry must round-trip.
	out, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, builderErrorf(methodRandomWithDet, err, "NewDense(%d,%d)", n, n)
	}
	var t T
	for i = 0; i < n; i++ {
		row, err := out.Row(i)
		if err != nil {
			return nil, builderErrorf(methodRandomWithDet, err, "Row(%d)", i)
		}
		for j = 0; j < n; j++ {
			if t, ok = exact[T](work[i*n+j]); !ok {
				return nil, builderErrorf(methodRandomWithDet, ErrUnrepresentable, "entry (%d,%d)=%d", i, j, work[i*n+j])
			}
			if err = row.Set(j, t); err != nil {
				return nil, builderErrorf(methodRandomWithDet, err, "Set(%d,%d)", i, j)
			}
		}
	}

	return out, nil
}

// mulAdd returns a + k*b, reporting false on int64 overflow.
func mulAdd(a, k, b int64) (int64, bool) {
	if k == 0 || b == 0 {
		return a, true
	}
	if (k == -1 && b == math.MinInt64) || (b == -1 && k == math.MinInt64) {
		return 0, false
	}
	p := k * b
	if p/b != k {
		return 0, false
	}
	s := a + p
	if (p > 0 && s < a) || (p < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// exact converts v to T and reports whether the conversion is lossless.
func exact[T matrix.Number](v int64) (T, bool) {
	t := T(v)

	return t, int64(t) == v && (v < 0) == (t < 0)
}
