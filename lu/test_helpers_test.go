// SPDX-License-Identifier: MIT
// Package lu_test contains shared fixtures and property checks for the
// factorization tests.
//
// Purpose:
//   • Build small deterministic matrices and pivot-free random ones.
//   • Check the triangular-structure and reconstruction properties in one place.

package lu_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denselu/lu"
	"github.com/katalvlaran/denselu/matrix"
)

// decimal3 is the reconstruction tolerance of the reference comparisons.
const decimal3 = 1.5e-3

// tight is the tolerance for well-conditioned, pivot-free fixtures.
const tight = 1e-9

// factorizer is the common signature of the four entry points.
type factorizer func(a matrix.Matrix, opts ...lu.Option) (*matrix.Dense, *matrix.Dense, error)

// variant names a factorizer for table-driven tests.
type variant struct {
	name string
	fn   factorizer
}

// squareVariants lists the square-only factorizers.
var squareVariants = []variant{
	{"Gaussian", lu.Gaussian},
	{"OuterProduct", lu.OuterProduct},
	{"Gaxpy", lu.Gaxpy},
}

// allVariants adds Rectangular, which accepts square input as well.
var allVariants = append(append([]variant(nil), squareVariants...), variant{"Rectangular", lu.Rectangular})

// hide wraps any Matrix to hide its concrete type, forcing the generic
// (copying) input path.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustRows exports m as [][]float64 or fails the test.
func MustRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// RandPivotFree returns A = L·U for a random unit-lower L and an upper U whose
// diagonal stays in [1,2), together with the generating factors. Every leading
// principal minor of A is nonzero, so no pivoting is needed.
func RandPivotFree(t testing.TB, n int, seed int64) (a, l, u *matrix.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	lRows := make([][]float64, n)
	uRows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		lRows[i] = make([]float64, n)
		uRows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				lRows[i][j] = rng.Float64()*2 - 1
			case j == i:
				lRows[i][j] = 1
				uRows[i][j] = 1 + rng.Float64()
			default:
				uRows[i][j] = rng.Float64()*2 - 1
			}
		}
	}
	l = MustFromRows(t, lRows)
	u = MustFromRows(t, uRows)
	prod, err := matrix.Mul(l, u)
	require.NoError(t, err)

	return prod.(*matrix.Dense), l, u
}

// RequireUnitLower asserts exact zeros above the diagonal and exact ones on it.
func RequireUnitLower(t testing.TB, L matrix.Matrix) {
	t.Helper()
	rows := MustRows(t, L)
	for i := range rows {
		for j := range rows[i] {
			switch {
			case j == i:
				require.Equalf(t, 1.0, rows[i][j], "L[%d,%d] must be exactly 1", i, j)
			case j > i:
				require.Equalf(t, 0.0, rows[i][j], "L[%d,%d] must be exactly 0", i, j)
			}
		}
	}
}

// RequireUpper asserts exact zeros below the diagonal.
func RequireUpper(t testing.TB, U matrix.Matrix) {
	t.Helper()
	rows := MustRows(t, U)
	for i := range rows {
		for j := 0; j < i && j < len(rows[i]); j++ {
			require.Equalf(t, 0.0, rows[i][j], "U[%d,%d] must be exactly 0", i, j)
		}
	}
}

// RequireReconstructs asserts |(L·U)[i,j] − A[i,j]| ≤ delta everywhere.
func RequireReconstructs(t testing.TB, want [][]float64, L, U matrix.Matrix, delta float64) {
	t.Helper()
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	RequireAllClose(t, want, MustRows(t, prod), delta)
}

// RequireAllClose compares two row sets elementwise within delta.
func RequireAllClose(t testing.TB, want, got [][]float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Lenf(t, got[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], got[i][j], delta, "at [%d,%d]", i, j)
		}
	}
}

// rowsEqual reports whether two rows agree within delta.
func rowsEqual(a, b []float64, delta float64) bool {
	for j := range a {
		if math.Abs(a[j]-b[j]) > delta {
			return false
		}
	}

	return true
}
