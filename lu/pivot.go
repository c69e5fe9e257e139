// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"math"
)

// PivotTolerance is the absolute magnitude at or below which a pivot is
// treated as zero by every factorizer.
const PivotTolerance = 1e-8

// CheckPivot classifies p as a usable divisor. It returns ErrSingularPivot when
// |p| ≤ tol; NaN is never usable. Pure: no side effects.
func CheckPivot(p, tol float64) error {
	if math.Abs(p) > tol {
		return nil
	}

	return ErrSingularPivot
}

// checkPivotAt runs CheckPivot and tags a failure with the operation and step.
func checkPivotAt(op string, step int, p, tol float64) error {
	if err := CheckPivot(p, tol); err != nil {
		return luErrorf(op, fmt.Errorf("step %d: pivot %g (tol %g): %w", step, p, tol, err))
	}

	return nil
}
