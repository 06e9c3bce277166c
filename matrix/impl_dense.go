// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Make buffer ownership explicit: Clone/CopyFrom copy, Move/Swap transfer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Row/At/Set: O(1); Clone/Convert: O(r*c); Move/Swap: O(1).
//
// Nil receivers:
//   - Methods with an error result (Row, At, Set, CopyFrom) return ErrNilMatrix.
//   - The others treat a nil *Dense as an empty matrix: Rows/Cols are 0,
//     Empty is true, String is "", Move returns an empty matrix, Clone and
//     Convert return nil, TransposeInPlace is a no-op. Swap requires both
//     operands to be non-nil.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <err>" and keeps errors.Is working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid empty (0×0) matrix. A Dense owns its buffer
// exclusively; it is not safe for concurrent mutation.
type Dense[T Number] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of len rows*cols.
//
// Behavior highlights:
//   - rows==0 or cols==0 yields a valid, empty matrix (degenerate, not an error).
//   - A shape that fits in an int but not in memory still makes the runtime
//     abort in make(); Go offers no recoverable allocation failure.
//
// Errors:
//   - ErrInvalidDimensions (negative shape, or rows*cols overflows int).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if rows == 0 || cols == 0 {
		return &Dense[T]{r: rows, c: cols}, nil
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): element count overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills the buffer deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Complexity: O(r*c).
func NewFilled[T Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFromRows builds a matrix from a slice of equal-length rows (copied).
// An empty or nil input yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch if rows have different lengths.
//
// Complexity: O(r*c).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Empty reports whether the matrix holds no elements.
func (m *Dense[T]) Empty() bool { return m.Rows() == 0 || m.Cols() == 0 }

// Row returns a bounds-checked view over row i.
//
// Behavior highlights:
//   - The view aliases the matrix buffer: writes through it are visible in m.
//   - The view stays tied to the buffer it was taken from. After Move, Swap,
//     CopyFrom or TransposeInPlace on m it no longer reflects m; callers must
//     not keep views across those calls.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange if i < 0 or i >= Rows().
//
// Complexity: O(1), no allocation.
func (m *Dense[T]) Row(i int) (Row[T], error) {
	if m == nil {
		return Row[T]{}, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return Row[T]{}, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	base := i * m.c

	return Row[T]{cells: m.data[base : base+m.c : base+m.c]}, nil
}

// indexOf computes the row-major offset or returns ErrNilMatrix/ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer. Clone of nil is nil.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	out := &Dense[T]{r: m.r, c: m.c}
	if m.data != nil {
		out.data = make([]T, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// CopyFrom replaces the shape and contents of m with a deep copy of src.
// Self-assignment is a no-op. A fresh buffer is always allocated, so views
// previously taken from m keep pointing at the old buffer.
//
// Errors:
//   - ErrNilMatrix if m or src is nil.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("CopyFrom: %w", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	cp := src.Clone()
	m.r, m.c, m.data = cp.r, cp.c, cp.data

	return nil
}

// Move transfers buffer ownership to a new Dense and leaves m empty (0×0,
// nil buffer). The returned matrix is the only owner of the data.
// Complexity: O(1).
func (m *Dense[T]) Move() *Dense[T] {
	if m == nil {
		return &Dense[T]{}
	}
	out := &Dense[T]{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Swap exchanges shape and buffer with other. Complexity: O(1).
// Both m and other must be non-nil; there is no empty buffer to trade with nil.
func (m *Dense[T]) Swap(other *Dense[T]) {
	m.r, other.r = other.r, m.r
	m.c, other.c = other.c, m.c
	m.data, other.data = other.data, m.data
}

// Convert returns a deep copy of src with every element converted to U using
// Go's value conversion rules (float→int truncates toward zero).
//
// Behavior highlights:
//   - Used by Det to build the float64 shadow of integer matrices.
//   - Out-of-range float→int conversions are implementation-defined in Go;
//     callers that need a checked conversion must range-check first.
//
// Complexity: O(r*c).
func Convert[U, T Number](src *Dense[T]) *Dense[U] {
	if src == nil {
		return nil
	}
	out := &Dense[U]{r: src.r, c: src.c}
	if src.data == nil {
		return out
	}
	out.data = make([]U, len(src.data))
	for i, v := range src.data {
		out.data[i] = U(v)
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics: "[1, 2]\n[3, 4]\n".
// Not for hot paths; use Dump for the whitespace text format.
func (m *Dense[T]) String() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
