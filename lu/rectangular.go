// SPDX-License-Identifier: MIT

package lu

import (
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/denselu/matrix"
)

// Rectangular factors an m×n matrix a into L (m×k, unit lower trapezoidal) and
// U (k×n, upper trapezoidal), k = min(m,n), assuming every leading principal
// submatrix used as a pivot block is nonsingular.
//
// The outer-product recurrence runs for steps s = 0..k-1 and stops as soon as
// no row remains below the pivot:
//   - wide or square (m ≤ n): steps 0..k-2, the last pivot is never a divisor
//     and therefore is not checked;
//   - tall (m > n): all k steps run, the last one only scales L's final column.
//
// A single row (1×n) yields L = [1], U = a. A single column (m×1) yields
// U = [a[0,0]] and L = a / a[0,0].
//
// A *matrix.Dense argument is overwritten with the interleaved factors unless
// WithPreserveInput is given.
//
// Errors:
//   - ErrSingularPivot: |A[s,s]| ≤ tol at a step that divides by it.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
func Rectangular(a matrix.Matrix, opts ...Option) (L, U *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	m, n, err := shapeOf(opRectangular, a)
	if err != nil {
		return nil, nil, err
	}
	w, err := workspace(opRectangular, a, o)
	if err != nil {
		return nil, nil, err
	}

	k := min(m, n)
	g := w.RawMatrix()
	data, ld := g.Data, g.Stride
	var (
		s, r        int
		below, rest int
		pivot       float64
	)
	for s = 0; s < k; s++ {
		below = m - s - 1
		if below == 0 {
			break
		}
		pivot = data[s*ld+s]
		if err = checkPivotAt(opRectangular, s, pivot, o.tol); err != nil {
			return nil, nil, err
		}

		for r = s + 1; r < m; r++ {
			data[r*ld+s] /= pivot
		}
		rest = n - s - 1
		if rest == 0 {
			continue
		}
		blas64.Ger(-1,
			blas64.Vector{N: below, Inc: ld, Data: data[(s+1)*ld+s:]},
			blas64.Vector{N: rest, Inc: 1, Data: data[s*ld+s+1:]},
			blas64.General{Rows: below, Cols: rest, Stride: ld, Data: data[(s+1)*ld+s+1:]},
		)
	}

	return split(opRectangular, g, k)
}
