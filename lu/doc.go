// Package lu factors dense real matrices into a unit lower-triangular L and an
// upper-triangular U with L·U = A, without pivoting.
//
// 🚀 Four strategies, one contract:
//
//   - Gaussian:     elimination through explicit elementary matrices
//     M_k = I − τ·e_kᵀ, accumulated with matrix.Mul. Never mutates A.
//     Asymptotically wasteful; kept as a reference oracle.
//   - OuterProduct: right-looking elimination with a rank-1 (BLAS Ger) update
//     of the trailing block. The default path.
//   - Gaxpy:        column-oriented: each column of U comes from a unit
//     lower-triangular solve (BLAS Trsv) against the finished block of L,
//     followed by a matrix-vector (Gemv) update of the remaining column.
//   - Rectangular:  the outer-product recurrence bounded by k = min(m,n);
//     returns L (m×k) and U (k×n) for any m×n input.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	L, U, err := lu.OuterProduct(a, lu.WithPreserveInput())
//	if errors.Is(err, lu.ErrSingularPivot) {
//	  // permute rows upstream (matrix.PermuteRows) and retry
//	}
//
// Aliasing contract:
//
//	OuterProduct, Gaxpy and Rectangular factor a *matrix.Dense argument in
//	place: on return its buffer holds L (strictly below the diagonal) and U
//	interleaved, and the returned L and U are fresh copies. On failure the
//	buffer is left partially eliminated. Pass WithPreserveInput (or a clone)
//	when the original values are still needed. Inputs that are not *Dense are
//	always copied first.
//
// Pivots:
//
//	Every pivot is checked against PivotTolerance (1e-8, overridable with
//	WithPivotTolerance) right before it is used as a divisor; |p| ≤ tol or a
//	NaN pivot fails with ErrSingularPivot. No row is ever reordered: a matrix
//	whose leading principal minors vanish must be permuted by the caller.
//
// Complexity:
//
//   - Gaussian:     O(n⁴) with the generic Mul (O(n³) effective thanks to zero skipping)
//   - OuterProduct: O(n³)
//   - Gaxpy:        O(n³)
//   - Rectangular:  O(m·n·k)
package lu
