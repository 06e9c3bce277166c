// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Compute det(A) by Gaussian elimination with full pivoting.
//   - Pivot through a virtual permutation (two index slices) instead of moving
//     rows or columns of the working buffer.
//   - Choose the arithmetic once at the entry: floating kinds eliminate in T,
//     integer kinds eliminate in a float64 shadow and round back.
//
// Determinism:
//   - Fixed scan orders; on ties the first (lowest logical index) candidate wins.
//
// Limitations:
//   - Singularity is decided by the absolute Epsilon, not scaled by magnitude.
//   - The integer result is exact only while the float64 shadow's rounding
//     error stays below 0.5. Cancellation during elimination grows with the
//     entries relative to det(A), so ill-conditioned matrices (e.g. entries
//     around 1e4 with a determinant of 1e3 at n=6) can miss by a few units
//     long before any magnitude reaches 2^53.
//   - The rounded value is narrowed to T through int64 (uint64 at and above
//     2^63), i.e. with two's-complement wraparound: a determinant of -1 over
//     uint8 is 255. Magnitudes of 2^64 and beyond, and NaN, yield 0.

package matrix

import "math"

// permutation maps logical row/column positions onto physical ones.
// Swapping two logical rows or columns exchanges index entries only.
type permutation struct {
	rows []int // rows[i] = physical row shown at logical row i
	cols []int // cols[j] = physical column shown at logical column j
}

// newPermutation returns the identity ordering over an n×n matrix.
func newPermutation(n int) permutation {
	p := permutation{rows: make([]int, n), cols: make([]int, n)}
	for i := 0; i < n; i++ {
		p.rows[i] = i
		p.cols[i] = i
	}

	return p
}

func (p permutation) swapRows(i, j int) { p.rows[i], p.rows[j] = p.rows[j], p.rows[i] }

func (p permutation) swapCols(i, j int) { p.cols[i], p.cols[j] = p.cols[j], p.cols[i] }

// pivotView couples a private n×n row-major working buffer with its permutation.
type pivotView[T Number] struct {
	n    int
	data []T
	perm permutation
}

// at returns the address of logical element (i, j).
func (v *pivotView[T]) at(i, j int) *T {
	return &v.data[v.perm.rows[i]*v.n+v.perm.cols[j]]
}

// maxInCol returns the logical row r >= col maximizing |a(r, col)|.
func (v *pivotView[T]) maxInCol(col int) int {
	best := col
	for r := col + 1; r < v.n; r++ {
		if abs(*v.at(best, col)) < abs(*v.at(r, col)) {
			best = r
		}
	}

	return best
}

// maxInRow returns the logical column k >= row maximizing |a(row, k)|.
func (v *pivotView[T]) maxInRow(row int) int {
	best := row
	for k := row + 1; k < v.n; k++ {
		if abs(*v.at(row, best)) < abs(*v.at(row, k)) {
			best = k
		}
	}

	return best
}

// Det returns the determinant of the square matrix m.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: dispatch on the element kind (resolved once):
//     integer T → float64 shadow, eliminate, round, narrow through int64;
//     floating T → eliminate over a private copy in T, no rounding.
//
// Behavior highlights:
//   - m is never mutated; concurrent calls share no state.
//   - A singular matrix yields an exact zero, not an error.
//   - The 0×0 matrix has determinant 1 (empty product).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Det[T Number](m *Dense[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}
	if isInteger[T]() {
		shadow := Convert[float64](m)
		return roundToInteger[T](eliminate(shadow.data, shadow.r)), nil
	}
	work := m.Clone()

	return eliminate(work.data, work.r), nil
}

// Bounds of the exactly representable 64-bit ranges as float64.
const (
	twoTo63 = 1 << 63
	twoTo64 = 1 << 64
)

// roundToInteger rounds x to the nearest integer and narrows it to T with
// wraparound. Float→integer conversions are only well defined in range, so
// the value goes through int64 (or uint64) first and the final narrowing is
// an integer conversion, identical on every GOARCH.
func roundToInteger[T Number](x float64) T {
	r := math.Round(x)
	switch {
	case r >= -twoTo63 && r < twoTo63:
		return T(int64(r))
	case r >= twoTo63 && r < twoTo64:
		return T(uint64(r))
	default:
		return 0
	}
}

// eliminate runs virtual full-pivot Gaussian elimination over the n×n
// row-major buffer data (consumed in place) and returns the determinant.
// Only ever instantiated with floating-point T.
func eliminate[T Number](data []T, n int) T {
	v := &pivotView[T]{n: n, data: data, perm: newPermutation(n)}
	tol := Epsilon // typed float64 so the conversion below is legal for every T
	eps := T(tol)
	sign := 1

	var i, j, k, best int
	var pivot, factor T
	var pivotRow, row []T
	for i = 0; i < n; i++ {
		// Row pivot: bring the largest |a(r,i)|, r >= i, to logical row i.
		if best = v.maxInCol(i); best != i {
			v.perm.swapRows(i, best)
			sign = -sign
		}
		// Column pivot: bring the largest |a(i,k)|, k >= i, to logical column i.
		if best = v.maxInRow(i); best != i {
			v.perm.swapCols(i, best)
			sign = -sign
		}

		pivot = *v.at(i, i)
		if abs(pivot) <= eps {
			return 0
		}

		pivotRow = data[v.perm.rows[i]*n : (v.perm.rows[i]+1)*n]
		for j = i + 1; j < n; j++ {
			row = data[v.perm.rows[j]*n : (v.perm.rows[j]+1)*n]
			factor = row[v.perm.cols[i]] / pivot
			// Columns <= i of row j are left as is; they never feed the product.
			for k = i + 1; k < n; k++ {
				row[v.perm.cols[k]] -= factor * pivotRow[v.perm.cols[k]]
			}
		}
	}

	det := T(1)
	for i = 0; i < n; i++ {
		det *= *v.at(i, i)
	}
	if sign < 0 {
		det = -det
	}

	return det
}
