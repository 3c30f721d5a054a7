// SPDX-License-Identifier: MIT

// Package solve - functional options for both solvers.
//
// Defaults are the benchmark's fixed constants: tolerance 1e-6 on the
// successive-iterate difference, cap of 1000 sweeps, and an exact-zero pivot
// test. Constructors panic on nonsensical values (programmer error).
package solve

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is τ, the convergence threshold on ‖x_k − x_{k−1}‖₂.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps Gauss-Seidel sweeps.
	DefaultMaxIterations = 1000

	// DefaultPivotEpsilon rejects pivots with |p| ≤ eps. 0 ⇒ only exact zeros.
	DefaultPivotEpsilon = 0.0
)

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid = "solve: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "solve: WithMaxIterations: n must be >= 1"
	panicPivotEpsInvalid  = "solve: WithPivotEpsilon: eps must be finite and >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	Tolerance     float64 // Gauss-Seidel only
	MaxIterations int     // Gauss-Seidel only
	PivotEpsilon  float64 // both solvers
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		PivotEpsilon:  DefaultPivotEpsilon,
	}
}

// WithTolerance sets τ. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the sweep cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithPivotEpsilon sets the singular-pivot threshold. Panics unless eps is
// finite and ≥ 0.
func WithPivotEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicPivotEpsInvalid)
	}

	return func(o *Options) { o.PivotEpsilon = eps }
}

// gatherOptions applies user options over defaults in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// singular reports whether p must be rejected as a pivot. NaN is rejected too:
// the comparison !(|p| > eps) is false-safe.
func singular(p, eps float64) bool { return !(math.Abs(p) > eps) }
