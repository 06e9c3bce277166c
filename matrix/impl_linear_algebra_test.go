// Package matrix_test contains unit tests for Add, DivScalar, Transpose and Mul.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PozhiloyPumba/Ilab-KI/matrix"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]int{{1, 2}, {3, 4}})
	b := FromRows(t, [][]int{{10, 20}, {30, 40}})

	s, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{11, 22}, {33, 44}}, s)
	// inputs are untouched
	CompareExact(t, [][]int{{1, 2}, {3, 4}}, a)

	require.NoError(t, a.AddInPlace(b))
	CompareExact(t, [][]int{{11, 22}, {33, 44}}, a)
}

func TestAdd_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense[float64](t, 2, 3)
	b := MustDense[float64](t, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.AddInPlace(b), matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDivScalar(t *testing.T) {
	t.Parallel()

	f := FromRows(t, [][]float64{{2, 4}, {6, 9}})
	q, err := matrix.DivScalar(f, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4.5}}, q)

	i := FromRows(t, [][]int{{7, -7}})
	require.NoError(t, i.DivScalarInPlace(2))
	CompareExact(t, [][]int{{3, -3}}, i)
}

func TestDivScalar_ByZero(t *testing.T) {
	t.Parallel()

	f := FromRows(t, [][]float64{{1}})
	_, err := matrix.DivScalar(f, 0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)

	i := FromRows(t, [][]uint{{5}})
	require.ErrorIs(t, i.DivScalarInPlace(0), matrix.ErrDivideByZero)
	CompareExact(t, [][]uint{{5}}, i)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr)
	CompareExact(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m)

	m.TransposeInPlace()
	require.True(t, matrix.Equal(m, tr))

	empty := MustDense[int](t, 0, 3)
	te, err := matrix.Transpose(empty)
	require.NoError(t, err)
	require.Equal(t, 3, te.Rows())
	require.Equal(t, 0, te.Cols())

	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{58, 64}, {139, 154}}, p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.NoError(t, a.MulInPlace(b))
	CompareExact(t, [][]int{{58, 64}, {139, 154}}, a)
}

func TestMul_IdentityAndEmptyInner(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := MustDense[float64](t, n, n)
			RandomFill(t, m, int64(n))
			id, err := matrix.Identity[float64](n)
			require.NoError(t, err)

			left, err := matrix.Mul(id, m)
			require.NoError(t, err)
			right, err := matrix.Mul(m, id)
			require.NoError(t, err)
			require.True(t, matrix.Equal(m, left))
			require.True(t, matrix.Equal(m, right))
		})
	}

	a := MustDense[int](t, 2, 0)
	b := MustDense[int](t, 0, 3)
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{0, 0, 0}, {0, 0, 0}}, p)
}

func TestMul_TransposeIdentity(t *testing.T) {
	t.Parallel()

	// (AB)ᵀ == BᵀAᵀ on integer data (exact).
	a := MustDense[int64](t, 3, 4)
	b := MustDense[int64](t, 4, 2)
	RandomIntFill(t, a, 1, 9)
	RandomIntFill(t, b, 2, 9)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abT, err := matrix.Transpose(ab)
	require.NoError(t, err)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	btat, err := matrix.Mul(bt, at)
	require.NoError(t, err)

	require.True(t, matrix.Equal(abT, btat))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]int{{1, 2}})
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, FromRows(t, [][]int{{1}, {2}})))
	require.False(t, matrix.Equal(a, FromRows(t, [][]int{{1, 3}})))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[int](nil, nil))
}
