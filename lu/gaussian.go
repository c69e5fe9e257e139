// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/denselu/matrix"
)

// Gaussian factors the n×n matrix a as a product of elementary lower-triangular
// transformations.
//
// Algorithm Outline:
//  1. L := I, A_0 := a.
//  2. For k = 0..n-1:
//     check the pivot A_k[k,k];
//     τ[i] = A_k[i,k] / A_k[k,k] for i > k, zero elsewhere;
//     M_k = I − τ·e_kᵀ;  A_{k+1} = M_k·A_k;  L = L + τ·e_kᵀ.
//  3. U = A_n.
//
// The input is never written: every step rebinds to a freshly multiplied
// matrix, so no WithPreserveInput is needed. Entries eliminated below a pivot
// are stored as exact zeros.
//
// Errors:
//   - ErrShapeMismatch: a is not square.
//   - ErrSingularPivot: |A_k[k,k]| ≤ tol at some step k.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNaNInf.
func Gaussian(a matrix.Matrix, opts ...Option) (L, U *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	n, err := squareOrder(opGaussian, a)
	if err != nil {
		return nil, nil, err
	}

	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, luErrorf(opGaussian, err)
	}
	acc, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, luErrorf(opGaussian, err)
	}
	tau, err := matrix.NewDense(n, 1)
	if err != nil {
		return nil, nil, luErrorf(opGaussian, err)
	}
	ek, err := matrix.NewDense(1, n)
	if err != nil {
		return nil, nil, luErrorf(opGaussian, err)
	}
	tauData, ekData := tau.RawMatrix().Data, ek.RawMatrix().Data

	var (
		cur          = a
		next, outer  matrix.Matrix
		m, sum       matrix.Matrix
		pivot, below float64
		i, k         int
	)
	for k = 0; k < n; k++ {
		if pivot, err = cur.At(k, k); err != nil {
			return nil, nil, luErrorf(opGaussian, err)
		}
		if err = checkPivotAt(opGaussian, k, pivot, o.tol); err != nil {
			return nil, nil, err
		}

		// Elimination vector τ and the k-th basis row e_kᵀ.
		for i = 0; i < n; i++ {
			tauData[i] = 0
			if i > k {
				if below, err = cur.At(i, k); err != nil {
					return nil, nil, luErrorf(opGaussian, err)
				}
				tauData[i] = below / pivot
			}
		}
		ekData[k] = 1

		// outer = τ·e_kᵀ is zero outside column k.
		if outer, err = matrix.Mul(tau, ek); err != nil {
			return nil, nil, luErrorf(opGaussian, err)
		}
		if m, err = matrix.Sub(I, outer); err != nil {
			return nil, nil, luErrorf(opGaussian, err)
		}
		if next, err = matrix.Mul(m, cur); err != nil {
			return nil, nil, luErrorf(opGaussian, err)
		}
		if sum, err = matrix.Add(acc, outer); err != nil {
			return nil, nil, luErrorf(opGaussian, err)
		}
		acc = sum.(*matrix.Dense)

		// Column k below the pivot is zero by construction; pin it exactly.
		for i = k + 1; i < n; i++ {
			if err = next.Set(i, k, 0); err != nil {
				return nil, nil, luErrorf(opGaussian, fmt.Errorf("step %d: %w", k, err))
			}
		}

		ekData[k] = 0
		cur = next
	}

	return acc, cur.(*matrix.Dense), nil
}
