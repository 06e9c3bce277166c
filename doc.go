// Package ilabki is a small generic matrix library built around an exact
// integer determinant, plus a generator of matrices with a known determinant.
//
// What is inside?
//
//	matrix/   - Dense[T] over any Go integer or float type, Row views,
//	            Add/DivScalar/Transpose/Mul, Det by full-pivot elimination,
//	            text Scan/Dump and gonum interop
//	builder/  - RandomWithDet: random n×n matrices with a prescribed
//	            determinant (test fixtures)
//	cmd/det   - reads n and an n×n integer matrix from stdin, prints Det
//	cmd/gen   - writes fixtures for cmd/det
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{
//		{2, -3, 1},
//		{2, 0, -1},
//		{1, 4, 5},
//	})
//	d, _ := matrix.Det(m) // 49
//
// Integer matrices are eliminated on a float64 shadow and the result is
// rounded. That is exact only while the accumulated rounding error stays
// below 0.5, which depends on conditioning rather than on magnitude: large
// entries around a small determinant cancel, and Det can miss by a few units
// far below 2^53. Generated fixtures hit this quickly, because their entries
// grow to roughly maxCoef·|det|; cmd/gen re-draws fixtures that fail the
// check. Floating matrices keep their own precision; pivots with magnitude at
// or below matrix.Epsilon are treated as zero.
//
// Round trip with the CLIs:
//
//	go run ./cmd/gen -n 5 -det -7 -seed 1 | go run ./cmd/det
//	-7
package ilabki
