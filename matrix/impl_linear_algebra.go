// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise and product kernels on Dense:
// addition, scalar division, transpose and matrix multiplication.
// All functions perform strict fail-fast validation and return wrapped
// sentinels on misuse. Functions allocate a fresh result; *InPlace methods
// mutate the receiver and nothing else.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opDivScalar = "DivScalar"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Single flat loop 0..n-1.
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := a.Clone()
	for idx := range out.data {
		out.data[idx] += b.data[idx]
	}

	return out, nil
}

// AddInPlace performs m += other.
// On error m is left untouched.
func (m *Dense[T]) AddInPlace(other *Dense[T]) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for idx := range m.data {
		m.data[idx] += other.data[idx]
	}

	return nil
}

// DivScalar divides every element of m by s into a fresh matrix.
// Integer element types use Go integer division (truncation toward zero).
//
// Errors:
//   - ErrNilMatrix, ErrDivideByZero when s == 0.
//
// Complexity: O(r*c).
func DivScalar[T Number](m *Dense[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDivScalar, ErrDivideByZero)
	}
	out := m.Clone()
	for idx := range out.data {
		out.data[idx] /= s
	}

	return out, nil
}

// DivScalarInPlace performs m /= s. On error m is left untouched.
func (m *Dense[T]) DivScalarInPlace(s T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDivScalar, err)
	}
	if s == 0 {
		return matrixErrorf(opDivScalar, ErrDivideByZero)
	}
	for idx := range m.data {
		m.data[idx] /= s
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → out.data[j*rows + i].
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.transposed(), nil
}

// TransposeInPlace replaces m by mᵀ. A transposed buffer is built and swapped
// in, so outstanding Row views keep the pre-transpose data.
func (m *Dense[T]) TransposeInPlace() {
	if m == nil {
		return
	}
	t := m.transposed()
	m.Swap(t)
}

// transposed builds mᵀ without validation (m must be non-nil).
func (m *Dense[T]) transposed() *Dense[T] {
	rows, cols := m.r, m.c
	out := &Dense[T]{r: cols, c: rows}
	if m.data == nil {
		return out
	}
	out.data = make([]T, len(m.data))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return out
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize Bᵀ once, then C[i,j] = Σ_k A[i,k]·Bᵀ[j,k] so that
//     both operands are walked row-major in the inner loop.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for C and Bᵀ.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, inner, bCols := a.r, a.c, b.c
	out, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if inner == 0 {
		return out, nil // empty inner dimension: all sums are zero
	}
	bt := b.transposed()

	var (
		i, j, k      int
		rowA, rowB   []T
		acc          T
		rowOffsetOut int
	)
	for i = 0; i < aRows; i++ {
		rowA = a.data[i*inner : (i+1)*inner]
		rowOffsetOut = i * bCols
		for j = 0; j < bCols; j++ {
			rowB = bt.data[j*inner : (j+1)*inner]
			acc = 0
			for k = 0; k < inner; k++ {
				acc += rowA[k] * rowB[k]
			}
			out.data[rowOffsetOut+j] = acc
		}
	}

	return out, nil
}

// MulInPlace replaces m by m × other. On error m is left untouched.
func (m *Dense[T]) MulInPlace(other *Dense[T]) error {
	res, err := Mul(m, other)
	if err != nil {
		return err
	}
	m.Swap(res)

	return nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
