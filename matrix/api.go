// SPDX-License-Identifier: MIT
// Package matrix: public constructors and conversion facades.
//
// Purpose:
//   - Provide thin, documented entry points for building matrices from Go values
//     and for moving data in and out of *Dense.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of underlying kernels.

package matrix

import "fmt"

const (
	ctxFromRows    = "NewFromRows"
	ctxDenseCopy   = "DenseCopyOf"
	ctxPermuteRows = "PermuteRows"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a *Dense from a slice of equal-length rows (copied).
//
// Implementation:
//   - Stage 1: resolve options; reject empty input and ragged rows.
//   - Stage 2: allocate with the resolved numeric policy and copy row by row through Set,
//     so the NaN/Inf policy applies to every ingested value.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrBadShape (ragged rows),
//     ErrNaNInf (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// ToRows copies m into a freshly allocated [][]float64 (row-major).
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]float64, m.Rows())
	var (
		i, j int
		err  error
	)
	for i = range out {
		out[i] = make([]float64, m.Cols())
		for j = range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// DenseCopyOf returns an independent *Dense holding the values of m.
//
// Behavior highlights:
//   - Fast path: *Dense input is cloned with a single copy().
//   - Fallback: any other Matrix is read through At in fixed i→j order.
//   - The numeric policy of a *Dense source is preserved; other sources get the default.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero-area source), errors from At.
func DenseCopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxDenseCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, matrixErrorf(ctxDenseCopy, ErrNilMatrix)
		}
		if d.r == 0 || d.c == 0 {
			return nil, matrixErrorf(ctxDenseCopy, ErrInvalidDimensions)
		}
		return d.Clone().(*Dense), nil
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(ctxDenseCopy, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxDenseCopy, err)
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// PermuteRows returns P·m where row i of the result is row perm[i] of m.
// It is the hook for an external partial-pivoting step: callers choose perm,
// then hand the permuted copy to a factorization that never reorders rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(perm) != rows), ErrBadPermutation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The source is never mutated.
func PermuteRows(m *Dense, perm []int) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxPermuteRows, ErrNilMatrix)
	}
	if err := ValidatePermutation(perm, m.r); err != nil {
		return nil, matrixErrorf(ctxPermuteRows, err)
	}
	cols := make([]int, m.c)
	for j := range cols {
		cols[j] = j
	}

	res, err := m.Induced(perm, cols)
	if err != nil {
		return nil, matrixErrorf(ctxPermuteRows, err)
	}

	return res, nil
}
