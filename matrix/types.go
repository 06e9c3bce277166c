// SPDX-License-Identifier: MIT

// Package matrix: element constraint and numeric constants shared by the
// container and the determinant engine.
package matrix

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Dense may hold: every signed and
// unsigned integer type and every floating-point type, including named types
// built on top of them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Epsilon is the absolute pivot tolerance of Det: a pivot with |p| <= Epsilon
// makes the matrix singular and Det returns an exact zero.
//
// Notes:
//   - The tolerance is NOT scaled by the magnitude of the matrix. Matrices whose
//     entries are all tiny (e.g. 1e-10 * I) are reported singular, and badly
//     conditioned large matrices may pass. This is a known limitation.
const Epsilon = 1e-14

// isInteger reports whether T is an integer kind. Resolved once per call at the
// public entry points; never consulted inside hot loops.
func isInteger[T Number]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// abs returns |v| for any Number. For unsigned kinds it is the identity.
func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
