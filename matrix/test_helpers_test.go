// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels and Det.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PozhiloyPumba/Ilab-KI/matrix"
)

// MustDense ALLOCATES an r×c zero matrix or fails the test.
func MustDense[T matrix.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows BUILDS a matrix from literal rows or fails the test.
func FromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES (i,j) or fails the test.
func MustSet[T matrix.Number](t testing.TB, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustDet returns Det(m) or fails the test.
func MustDet[T matrix.Number](t testing.TB, m *matrix.Dense[T]) T {
	t.Helper()
	d, err := matrix.Det(m)
	require.NoError(t, err)

	return d
}

// CompareExact asserts m equals the literal rows element by element.
func CompareExact[T matrix.Number](t testing.TB, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			require.Equal(t, w, MustAt(t, m, i, j), "at [%d,%d]", i, j)
		}
	}
}

// RandomFill fills m with uniform values in [-1, 1) from a seeded source.
func RandomFill(t testing.TB, m *matrix.Dense[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// RandomIntFill fills m with uniform integers in [-limit, limit].
func RandomIntFill(t testing.TB, m *matrix.Dense[int64], seed int64, limit int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Int63n(2*limit+1)-limit)
		}
	}
}

// swapRows returns a copy of m with physical rows a and b exchanged.
func swapRows[T matrix.Number](t testing.TB, m *matrix.Dense[T], a, b int) *matrix.Dense[T] {
	t.Helper()
	out := m.Clone()
	ra, err := out.Row(a)
	require.NoError(t, err)
	rb, err := out.Row(b)
	require.NoError(t, err)
	va, vb := ra.Values(), rb.Values()
	for j := range va {
		require.NoError(t, ra.Set(j, vb[j]))
		require.NoError(t, rb.Set(j, va[j]))
	}

	return out
}

// swapCols returns a copy of m with columns a and b exchanged.
func swapCols[T matrix.Number](t testing.TB, m *matrix.Dense[T], a, b int) *matrix.Dense[T] {
	t.Helper()
	out := m.Clone()
	for i := 0; i < out.Rows(); i++ {
		va, vb := MustAt(t, out, i, a), MustAt(t, out, i, b)
		MustSet(t, out, i, a, vb)
		MustSet(t, out, i, b, va)
	}

	return out
}

// addRowMultiple returns a copy of m with row dst += k·row src.
func addRowMultiple[T matrix.Number](t testing.TB, m *matrix.Dense[T], dst, src int, k T) *matrix.Dense[T] {
	t.Helper()
	out := m.Clone()
	for j := 0; j < out.Cols(); j++ {
		MustSet(t, out, dst, j, MustAt(t, out, dst, j)+k*MustAt(t, out, src, j))
	}

	return out
}
