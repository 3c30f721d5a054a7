// SPDX-License-Identifier: MIT

// Package solve - result types, algorithm identifiers and the error taxonomy.
//
// Policy:
//   - Hard numerical failures (zero pivot, bad shapes) are returned as errors.
//   - Exhausting the iteration budget is NOT an error: it is a Status carried by
//     Result alongside the best-effort iterate. Result.Err exposes it as the
//     ErrNotConverged sentinel for callers that prefer error handling.
package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gsbench/matrix"
)

var (
	// ErrSingularPivot is returned when a diagonal entry used as a divisor is
	// zero (|pivot| ≤ PivotEpsilon) during elimination or relaxation.
	// The concrete error is a *PivotError; match with errors.Is / errors.As.
	ErrSingularPivot = errors.New("solve: singular pivot")

	// ErrNotConverged reports that the iterative solver exhausted its
	// iteration cap without meeting the tolerance. Never returned by Solve
	// directly; see Result.Err.
	ErrNotConverged = errors.New("solve: iteration budget exhausted without convergence")

	// ErrDimensionMismatch aliases the matrix sentinel so callers of this
	// package need not import matrix to match shape failures.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilInput aliases matrix.ErrNilMatrix for nil A or b.
	ErrNilInput = matrix.ErrNilMatrix
)

// PivotError carries the location of a rejected pivot.
type PivotError struct {
	Row   int     // pivot row (== column) index
	Value float64 // offending pivot value at the time of use
}

// Error implements error.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%v: row %d (value %g)", ErrSingularPivot, e.Row, e.Value)
}

// Unwrap lets errors.Is(err, ErrSingularPivot) match.
func (e *PivotError) Unwrap() error { return ErrSingularPivot }

// Algorithm identifies a solver in timings, metrics and reports.
type Algorithm string

const (
	// GaussElimination is the direct method (no pivoting + back-substitution).
	GaussElimination Algorithm = "gauss"

	// GaussSeidel is the iterative relaxation method (ω = 1).
	GaussSeidel Algorithm = "gauss-seidel"
)

// Label returns the human-readable legend text.
func (a Algorithm) Label() string {
	switch a {
	case GaussElimination:
		return "Gauss Elimination"
	case GaussSeidel:
		return "Gauss-Seidel"
	default:
		return string(a)
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Status distinguishes a converged solve from an exhausted iteration budget.
type Status int

const (
	// StatusConverged: tolerance met (always the case for the direct solver).
	StatusConverged Status = iota

	// StatusNotConverged: iteration cap reached; X is the last iterate.
	StatusNotConverged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusNotConverged:
		return "not_converged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of a successful solver call.
type Result struct {
	// X is the solution (direct) or the final iterate (iterative).
	X []float64

	// Status tells converged from exhausted.
	Status Status

	// Iterations is the number of completed sweeps (0 for the direct solver).
	Iterations int

	// Delta is ‖x_k − x_{k−1}‖₂ of the last sweep (0 for the direct solver).
	Delta float64
}

// Converged reports Status == StatusConverged.
func (r Result) Converged() bool { return r.Status == StatusConverged }

// Err returns ErrNotConverged (with the sweep count) when the iteration budget
// was exhausted, nil otherwise.
func (r Result) Err() error {
	if r.Status == StatusNotConverged {
		return fmt.Errorf("after %d iterations (delta %g): %w", r.Iterations, r.Delta, ErrNotConverged)
	}

	return nil
}
