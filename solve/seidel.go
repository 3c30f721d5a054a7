// SPDX-License-Identifier: MIT

package solve

import (
	"github.com/katalvlaran/gsbench/matrix"
)

// Seidel approximates the solution of Ax=b with Gauss-Seidel relaxation
// (ω = 1, starting from x = 0).
//
// Each sweep updates x in place, so the lower sum already uses this sweep's
// values and the upper sum the previous sweep's:
//
//	x[i] = (b[i] − Σ_{k<i} a[i][k]·x_new[k] − Σ_{k>i} a[i][k]·x_old[k]) / a[i][i]
//
// After a full sweep, if ‖x_new − x_old‖₂ < Tolerance the result is
// StatusConverged. After MaxIterations sweeps without meeting the tolerance the
// last iterate is returned with StatusNotConverged (and a nil error).
// Divergent iterates are not cut short; the solver always runs to the cap.
//
// Ownership: a and b are owned by the call; this solver only reads them.
//
// Errors:
//   - ErrNilInput, ErrDimensionMismatch (wrapped).
//   - *PivotError (matches ErrSingularPivot) for a diagonal with |a[i][i]| ≤
//     PivotEpsilon. The diagonal never changes, so this is checked once.
//
// Complexity: O(iter·n²) time, O(n) extra space.
func Seidel(a *matrix.Dense, b []float64, opts ...Option) (Result, error) {
	n, err := matrix.ValidateSystem(a, b)
	if err != nil {
		return Result{}, solveErrorf(opSeidel, err)
	}
	o := gatherOptions(opts...)
	rows := rowViews(a)

	var i int
	for i = 0; i < n; i++ {
		if singular(rows[i][i], o.PivotEpsilon) {
			return Result{}, solveErrorf(opSeidel, &PivotError{Row: i, Value: rows[i][i]})
		}
	}

	var (
		x     = make([]float64, n) // current iterate, updated in place
		prev  = make([]float64, n) // previous sweep
		ri    []float64
		delta float64
		iter  int
	)
	for iter = 1; iter <= o.MaxIterations; iter++ {
		copy(prev, x)
		for i = 0; i < n; i++ {
			ri = rows[i]
			x[i] = (b[i] - matrix.DotRange(ri, x, 0, i) - matrix.DotRange(ri, x, i+1, n)) / ri[i]
		}
		// Lengths match by construction; the error path is unreachable.
		delta, _ = matrix.Distance(x, prev)
		if delta < o.Tolerance {
			return Result{X: x, Status: StatusConverged, Iterations: iter, Delta: delta}, nil
		}
	}

	return Result{X: x, Status: StatusNotConverged, Iterations: o.MaxIterations, Delta: delta}, nil
}
