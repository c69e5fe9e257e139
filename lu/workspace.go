// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/denselu/matrix"
)

// shapeOf validates a non-nil, non-empty input and returns its dimensions.
func shapeOf(op string, a matrix.Matrix) (rows, cols int, err error) {
	if err = matrix.ValidateNotNil(a); err != nil {
		return 0, 0, luErrorf(op, err)
	}
	if d, ok := a.(*matrix.Dense); ok && d == nil {
		return 0, 0, luErrorf(op, matrix.ErrNilMatrix)
	}
	rows, cols = a.Rows(), a.Cols()
	if rows <= 0 || cols <= 0 {
		return 0, 0, luErrorf(op, matrix.ErrInvalidDimensions)
	}

	return rows, cols, nil
}

// squareOrder is shapeOf plus the square requirement of the n×n variants.
func squareOrder(op string, a matrix.Matrix) (int, error) {
	rows, cols, err := shapeOf(op, a)
	if err != nil {
		return 0, err
	}
	if err = matrix.ValidateSquare(a); err != nil {
		// Both ErrShapeMismatch and matrix.ErrNonSquare match via errors.Is.
		return 0, luErrorf(op, fmt.Errorf("%w: %dx%d: %w", ErrShapeMismatch, rows, cols, err))
	}

	return rows, nil
}

// workspace returns the *Dense buffer an in-place variant eliminates in.
// A *Dense argument is used as is unless the caller asked to preserve it;
// everything else is copied.
func workspace(op string, a matrix.Matrix, o Options) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok && !o.preserveInput {
		return d, nil
	}
	w, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, luErrorf(op, err)
	}

	return w, nil
}

// split copies interleaved factors out of g into two owned buffers:
// L (rows×k) gets the strictly-lower part of g plus a unit diagonal,
// U (k×cols) gets the upper part including the diagonal. Everything else is
// left at exact zero, so the triangular structure holds bit for bit.
func split(op string, g blas64.General, k int) (*matrix.Dense, *matrix.Dense, error) {
	L, err := matrix.NewDense(g.Rows, k)
	if err != nil {
		return nil, nil, luErrorf(op, err)
	}
	U, err := matrix.NewDense(k, g.Cols)
	if err != nil {
		return nil, nil, luErrorf(op, err)
	}
	lr, ur := L.RawMatrix(), U.RawMatrix()

	var i, j int
	var row []float64
	for i = 0; i < g.Rows; i++ {
		row = g.Data[i*g.Stride : i*g.Stride+g.Cols]
		for j = 0; j < i && j < k; j++ {
			lr.Data[i*lr.Stride+j] = row[j]
		}
		if i < k {
			lr.Data[i*lr.Stride+i] = 1.0
			copy(ur.Data[i*ur.Stride+i:(i+1)*ur.Stride], row[i:])
		}
	}

	return L, U, nil
}
