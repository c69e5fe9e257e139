// Package matrix is the dense storage and primitive-kernel layer of denselu.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over mutable two-dimensional float64 arrays
//     with bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation whose backing buffer can be exposed as a
//     gonum blas64.General (RawMatrix) so BLAS level-2 routines operate in place.
//   - Add, Sub and Mul kernels with a *Dense fast path and a generic fallback.
//   - Constructors and facades: NewDense, NewIdentity, NewFromRows, ToRows,
//     DenseCopyOf and PermuteRows (the hook for an external pivoting step).
//   - Central validators and a sentinel error set matched with errors.Is.
//
// Numeric policy: by default Set rejects NaN and ±Inf (ErrNaNInf). Use
// WithNoValidateNaNInf when ingesting raw data that is sanitized later.
//
// Writes through RawMatrix bypass the numeric policy; that path is reserved for
// kernels whose arithmetic is guarded elsewhere (see package lu).
package matrix
