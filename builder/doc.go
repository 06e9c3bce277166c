// Package builder provides reusable “functional‐options”‐style constructors of
// test fixtures for the matrix package.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the disguise coefficient bound.
//   - Constructors:
//     – RandomWithDet:  a random dense n×n matrix whose determinant is exactly
//     the requested integer.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrBadSize, ErrOverflow, ErrUnrepresentable)
//     wrapped with the constructor name; match them with errors.Is.
//   - Reproducible output for a fixed WithSeed; without it every call draws a
//     fresh time-seeded source and only the determinant is guaranteed.
package builder
