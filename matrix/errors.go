// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly wrapped with an
// operation tag via %w) and tests check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// never formatted at the definition site; context is attached at the call site
// with fmt.Errorf("<Op>: %w", ErrX) so that errors.Is keeps matching.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (dimensions) -> index -> arithmetic (divide by zero).

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative
	// row or column count, or when rows*cols does not fit in an int.
	// Zero dimensions are legal and yield an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside [0, count).
	// Row views and At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add on different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Det).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDivideByZero is returned by scalar division when the divisor is the
	// additive identity of its type.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrNilMatrix indicates that a nil *Dense was passed to an operation that
	// reports errors (validators, Det, Add, Mul, Scan, Row, At, Set, CopyFrom...).
	// Methods without an error result treat a nil receiver as empty instead;
	// see impl_dense.go.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
