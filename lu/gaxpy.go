// SPDX-License-Identifier: MIT

package lu

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/denselu/matrix"
)

// Gaxpy factors the n×n matrix a column by column.
//
// Algorithm Outline (column i, in place):
//  1. i = 0: v = A[:,0].
//  2. i > 0: solve L[:i,:i]·z = A[:i,i] by forward substitution (BLAS Trsv,
//     unit lower); z is U[:i,i]. Then v[i:] = A[i:,i] − L[i:,:i]·z (BLAS Gemv).
//  3. Check v[i]; U[i,i] = v[i]; L[i+1:,i] = v[i+1:] / v[i].
//
// Column i of the buffer is the work vector v, so the finished leading columns
// already hold L below the diagonal and U on and above it. Each column is
// touched only when it is reached, which suits column-major or streaming
// access patterns better than the trailing update of OuterProduct.
//
// A *matrix.Dense argument is overwritten with the interleaved factors unless
// WithPreserveInput is given.
//
// Errors:
//   - ErrShapeMismatch: a is not square (nothing is written).
//   - ErrSingularPivot: |v[i]| ≤ tol at column i.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
func Gaxpy(a matrix.Matrix, opts ...Option) (L, U *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	n, err := squareOrder(opGaxpy, a)
	if err != nil {
		return nil, nil, err
	}
	w, err := workspace(opGaxpy, a, o)
	if err != nil {
		return nil, nil, err
	}

	g := w.RawMatrix()
	data, ld := g.Data, g.Stride
	var (
		i, r  int
		pivot float64
		z     blas64.Vector
	)
	for i = 0; i < n; i++ {
		if i > 0 {
			// z overwrites A[:i,i] in place.
			z = blas64.Vector{N: i, Inc: ld, Data: data[i:]}
			blas64.Trsv(blas.NoTrans,
				blas64.Triangular{Uplo: blas.Lower, Diag: blas.Unit, N: i, Stride: ld, Data: data},
				z,
			)
			blas64.Gemv(blas.NoTrans, -1,
				blas64.General{Rows: n - i, Cols: i, Stride: ld, Data: data[i*ld:]},
				z,
				1, blas64.Vector{N: n - i, Inc: ld, Data: data[i*ld+i:]},
			)
		}

		pivot = data[i*ld+i]
		if err = checkPivotAt(opGaxpy, i, pivot, o.tol); err != nil {
			return nil, nil, err
		}
		for r = i + 1; r < n; r++ {
			data[r*ld+i] /= pivot
		}
	}

	return split(opGaxpy, g, n)
}
