// Package denselu is a small dense LU factorization engine without pivoting.
//
// What is denselu?
//
//	A pure-Go library that factors a matrix A into a unit lower-triangular L
//	and an upper-triangular U with A = L·U, offering four interchangeable
//	strategies that produce the same factors:
//		• Gaussian       elementary transformations M_k = I − τ·e_kᵀ
//		• OuterProduct   in-place rank-1 updates (right-looking)
//		• Gaxpy          column-by-column triangular solve + update (left-looking)
//		• Rectangular    rank-1 updates for any m×n shape
//
// Everything is organized under two packages:
//
//	matrix/  Dense row-major storage, Add/Sub/Mul kernels, validators,
//	           row permutation and conversion facades
//	lu/      the four factorizations, the pivot predicate and options
//
// The BLAS level-2 primitives (Ger, Trsv, Gemv) come from gonum's blas64;
// examples/ holds a runnable comparison of the strategies and a demo of
// external row pivoting with matrix.PermuteRows.
//
//	go get github.com/katalvlaran/denselu
package denselu
