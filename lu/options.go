// SPDX-License-Identifier: MIT

// Package lu: functional configuration shared by all factorizers.
//
// Defaults are documented constants; WithX constructors panic only on
// nonsensical parameters (programmer error), never on user data.
package lu

import "math"

// DefaultPreserveInput keeps the destructive variants factoring in the caller's buffer.
const DefaultPreserveInput = false

const panicPivotToleranceInvalid = "lu: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol           float64 // >= 0; PivotTolerance
	preserveInput bool    // DefaultPreserveInput
}

// WithPivotTolerance replaces PivotTolerance for one call.
// A pivot p is usable only when |p| > tol; tol = 0 rejects exact zeros only.
//
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPreserveInput makes every variant factor a private copy, leaving the
// caller's matrix untouched.
func WithPreserveInput() Option {
	return func(o *Options) { o.preserveInput = true }
}

// gatherOptions applies setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:           PivotTolerance,
		preserveInput: DefaultPreserveInput,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
