// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denselu/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIsf(t, err, matrix.ErrInvalidDimensions, "%v", dims)
	}
}

// TestRowsColsShape verifies dimension accessors.
func TestRowsColsShape(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, []int{3, 4}, []int{r, c})
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	assert.Contains(t, m.Set(2, 0, 1).Error(), "Dense.Set(2,0)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetNaNInfPolicy: the default policy rejects non-finite values; the
// relaxed policy stores them.
func TestSetNaNInfPolicy(t *testing.T) {
	t.Parallel()

	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed := MustFromRows(t, [][]float64{{0}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
	v, err := relaxed.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	// Clone keeps the relaxed policy.
	require.NoError(t, relaxed.Clone().Set(0, 0, math.NaN()))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.IsType(t, &matrix.Dense{}, clone)
	require.NoError(t, clone.Set(0, 0, 3))

	assert.Equal(t, [][]float64{{1, 0}, {0, 2}}, MustRows(t, m))
	assert.Equal(t, [][]float64{{3, 0}, {0, 2}}, MustRows(t, clone))
}

// TestRawMatrixAliases: writes through the blas64 view land in the matrix.
func TestRawMatrixAliases(t *testing.T) {
	t.Parallel()

	m := Seq(t, 2, 3)
	g := m.RawMatrix()
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 3, g.Stride)
	require.Len(t, g.Data, 6)

	g.Data[1*g.Stride+2] = -1
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
}

// TestInduced covers ordering, duplicates and the error paths.
func TestInduced(t *testing.T) {
	t.Parallel()

	m := Seq(t, 3, 3)
	sub, err := m.Induced([]int{2, 0, 2}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{8}, {2}, {8}}, MustRows(t, sub))

	// Result never aliases the source.
	require.NoError(t, sub.Set(0, 0, 100))
	v, _ := m.At(2, 1)
	assert.Equal(t, 8.0, v)

	_, err = m.Induced(nil, []int{0})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.Induced([]int{3}, []int{0})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
