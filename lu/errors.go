// SPDX-License-Identifier: MIT

package lu

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned by the square-only variants when Rows != Cols.
	// It is reported before any arithmetic touches the input.
	ErrShapeMismatch = errors.New("lu: square matrix required")

	// ErrSingularPivot is returned when a pivot magnitude is at or below the
	// pivot tolerance (or is NaN). No partial factors are returned with it.
	ErrSingularPivot = errors.New("lu: singular pivot")

	// ErrUnknownMethod is returned by Factor for a Method outside the declared set.
	ErrUnknownMethod = errors.New("lu: unknown method")
)

// Operation tags for uniform error wrapping.
const (
	opGaussian     = "Gaussian"
	opOuterProduct = "OuterProduct"
	opGaxpy        = "Gaxpy"
	opRectangular  = "Rectangular"
	opFactor       = "Factor"
)

// luErrorf wraps err with an operation tag, preserving it for errors.Is.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
