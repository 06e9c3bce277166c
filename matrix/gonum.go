// SPDX-License-Identifier: MIT

// Package matrix: converters between Dense and gonum's mat types, for callers
// that want gonum's factorizations on data held here (and for cross-checking
// Det against mat.Det in tests).
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense, converting each element to float64.
// An empty m yields an empty (zero-value) *mat.Dense, since gonum rejects
// zero-length shapes in mat.NewDense.
// Complexity: O(r*c).
func ToGonum[T Number](m *Dense[T]) *mat.Dense {
	if m == nil || m.Empty() {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into a new Dense[T], converting each
// element with Go's float64→T conversion rules.
// Complexity: O(r*c).
func FromGonum[T Number](src mat.Matrix) *Dense[T] {
	if src == nil {
		return &Dense[T]{}
	}
	if d, ok := src.(*mat.Dense); ok && d.IsEmpty() {
		return &Dense[T]{}
	}
	rows, cols := src.Dims()
	out, _ := NewDense[T](rows, cols) // Dims is never negative
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = T(src.At(i, j))
		}
	}

	return out
}
