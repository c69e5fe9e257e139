// SPDX-License-Identifier: MIT

package lu

import (
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/denselu/matrix"
)

// OuterProduct factors the n×n matrix a by right-looking Gaussian elimination.
//
// Algorithm Outline (in place, interleaved storage):
//
//	for i = 0..n-1:
//	  check A[i,i]
//	  A[i+1:, i]     /= A[i,i]                       (column i of L)
//	  A[i+1:, i+1:]  -= A[i+1:, i] · A[i, i+1:]      (rank-1 update, BLAS Ger)
//
// L is the unit diagonal plus the strictly-lower part of the final buffer, U
// its upper part. For n = 1 the result is L = [1], U = a after the pivot check.
//
// A *matrix.Dense argument is overwritten with the interleaved factors unless
// WithPreserveInput is given.
//
// Errors:
//   - ErrShapeMismatch: a is not square (nothing is written).
//   - ErrSingularPivot: |A[i,i]| ≤ tol at step i.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
func OuterProduct(a matrix.Matrix, opts ...Option) (L, U *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	n, err := squareOrder(opOuterProduct, a)
	if err != nil {
		return nil, nil, err
	}
	w, err := workspace(opOuterProduct, a, o)
	if err != nil {
		return nil, nil, err
	}

	g := w.RawMatrix()
	data, ld := g.Data, g.Stride
	var (
		i, r, rest int
		pivot      float64
	)
	for i = 0; i < n; i++ {
		pivot = data[i*ld+i]
		if err = checkPivotAt(opOuterProduct, i, pivot, o.tol); err != nil {
			return nil, nil, err
		}
		rest = n - i - 1
		if rest == 0 {
			break
		}

		for r = i + 1; r < n; r++ {
			data[r*ld+i] /= pivot
		}
		blas64.Ger(-1,
			blas64.Vector{N: rest, Inc: ld, Data: data[(i+1)*ld+i:]},
			blas64.Vector{N: rest, Inc: 1, Data: data[i*ld+i+1:]},
			blas64.General{Rows: rest, Cols: rest, Stride: ld, Data: data[(i+1)*ld+i+1:]},
		)
	}

	return split(opOuterProduct, g, n)
}
