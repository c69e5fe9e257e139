// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/denselu/matrix"
)

// Method selects a factorization strategy for Factor.
type Method int

const (
	// MethodOuterProduct is right-looking elimination (default, zero value).
	MethodOuterProduct Method = iota

	// MethodGaussian is explicit elementary transformations; reference oracle.
	MethodGaussian

	// MethodGaxpy is column-oriented elimination built on triangular solves.
	MethodGaxpy

	// MethodRectangular is outer-product bounded by min(m,n); any shape.
	MethodRectangular
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodOuterProduct:
		return opOuterProduct
	case MethodGaussian:
		return opGaussian
	case MethodGaxpy:
		return opGaxpy
	case MethodRectangular:
		return opRectangular
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Factor dispatches to the factorizer named by method. It adds no behavior of
// its own: validation, aliasing and errors are those of the selected variant.
func Factor(a matrix.Matrix, method Method, opts ...Option) (L, U *matrix.Dense, err error) {
	switch method {
	case MethodOuterProduct:
		return OuterProduct(a, opts...)
	case MethodGaussian:
		return Gaussian(a, opts...)
	case MethodGaxpy:
		return Gaxpy(a, opts...)
	case MethodRectangular:
		return Rectangular(a, opts...)
	default:
		return nil, nil, luErrorf(opFactor, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
}
