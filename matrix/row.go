// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Row is a lightweight, non-owning view of one matrix row.
// It is obtained from Dense.Row and must not outlive the buffer it was taken
// from (see Dense.Row for the invalidation rules).
type Row[T Number] struct {
	cells []T // aliases the owner's buffer; len == owner's Cols()
}

// Len returns the number of columns visible through the view.
func (r Row[T]) Len() int { return len(r.cells) }

// At returns the element in column j or ErrOutOfRange.
func (r Row[T]) At(j int) (T, error) {
	if j < 0 || j >= len(r.cells) {
		var zero T
		return zero, fmt.Errorf("Row.At(%d): %w", j, ErrOutOfRange)
	}

	return r.cells[j], nil
}

// Set writes v into column j or returns ErrOutOfRange.
// The write is visible in the owning matrix.
func (r Row[T]) Set(j int, v T) error {
	if j < 0 || j >= len(r.cells) {
		return fmt.Errorf("Row.Set(%d): %w", j, ErrOutOfRange)
	}
	r.cells[j] = v

	return nil
}

// Values returns a copy of the row.
func (r Row[T]) Values() []T {
	out := make([]T, len(r.cells))
	copy(out, r.cells)

	return out
}
