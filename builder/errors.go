// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates that the requested matrix size is smaller than 1.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrOverflow indicates that the target determinant is too large in magnitude
// for the int64 workspace: either the sampling range [-|det|, |det|] or an
// intermediate row/column combination does not fit.
var ErrOverflow = errors.New("builder: int64 overflow")

// ErrUnrepresentable indicates that a generated entry cannot be stored exactly
// in the requested element type (e.g. a negative entry for an unsigned type,
// or a magnitude beyond int8). Retrying with another seed or a smaller
// WithMaxCoef may succeed.
var ErrUnrepresentable = errors.New("builder: entry not representable in element type")

// builderErrorf wraps err with the constructor name and a formatted detail:
// "<Method>: <detail>: <err>". errors.Is keeps matching err.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
