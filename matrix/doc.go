// Package matrix offers a dense, generically-typed matrix container and the
// determinant under full pivoting.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major r×c buffer for any integer or floating element type,
//     with bounds-checked Row views and explicit copy/move ownership.
//   - Elementwise and product kernels: Add, DivScalar, Transpose, Mul.
//   - Det: Gaussian elimination with virtual full pivoting. Integer matrices
//     are eliminated in a float64 shadow and rounded back.
//   - Scan/Dump for the whitespace text format, and ToGonum/FromGonum.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrDivideByZero, ...) wrapped with operation tags; match them
// with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
