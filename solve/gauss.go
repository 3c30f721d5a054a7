// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gsbench/matrix"
)

// Operation tags for uniform error wrapping.
const (
	opGauss  = "GaussElimination"
	opSeidel = "GaussSeidel"
)

// solveErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowViews returns no-copy row slices of a. Callers validated a beforehand,
// so every index is in range.
func rowViews(a *matrix.Dense) [][]float64 {
	n := a.Rows()
	rows := make([][]float64, n)

	var i int
	for i = 0; i < n; i++ {
		rows[i], _ = a.Row(i)
	}

	return rows
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Gauss solves Ax=b by Gaussian elimination without pivoting followed by
// back-substitution.
//
// Ownership: a and b are consumed. Both are mutated in place (a becomes upper
// triangular, b the transformed right-hand side). Pass clones when the
// originals must survive.
//
// Implementation:
//   - Stage 1: validate shapes (square a, len(b) == n).
//   - Stage 2: forward elimination; for pivot row i and every row j>i,
//     factor = a[j][i]/a[i][i], row_j -= factor*row_i over columns ≥ i,
//     b[j] -= factor*b[i].
//   - Stage 3: back-substitution x[i] = (b[i] − Σ_{k>i} a[i][k]·x[k]) / a[i][i],
//     from i = n−1 down to 0.
//
// Errors:
//   - ErrNilInput, ErrDimensionMismatch (wrapped).
//   - *PivotError (matches ErrSingularPivot) when |a[i][i]| ≤ PivotEpsilon at
//     the time it is used, or when a pivot is so small that a row factor or a
//     solution component overflows. No Inf/NaN ever escapes in X.
//
// Complexity: O(n³) time, O(n) extra space (the solution vector).
func Gauss(a *matrix.Dense, b []float64, opts ...Option) (Result, error) {
	n, err := matrix.ValidateSystem(a, b)
	if err != nil {
		return Result{}, solveErrorf(opGauss, err)
	}
	o := gatherOptions(opts...)
	rows := rowViews(a)

	var (
		i, j, k int
		ri, rj  []float64
		pivot   float64
		factor  float64
	)

	// Forward elimination.
	for i = 0; i < n; i++ {
		ri = rows[i]
		pivot = ri[i]
		if singular(pivot, o.PivotEpsilon) {
			return Result{}, solveErrorf(opGauss, &PivotError{Row: i, Value: pivot})
		}
		for j = i + 1; j < n; j++ {
			rj = rows[j]
			factor = rj[i] / pivot
			if !finite(factor) {
				return Result{}, solveErrorf(opGauss, &PivotError{Row: i, Value: pivot})
			}
			if factor == 0 {
				continue // row already eliminated in this column
			}
			for k = i; k < n; k++ {
				rj[k] -= factor * ri[k]
			}
			b[j] -= factor * b[i]
		}
	}

	// Back-substitution; every diagonal was checked above.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		ri = rows[i]
		x[i] = (b[i] - matrix.DotRange(ri, x, i+1, n)) / ri[i]
		if !finite(x[i]) {
			return Result{}, solveErrorf(opGauss, &PivotError{Row: i, Value: ri[i]})
		}
	}

	return Result{X: x, Status: StatusConverged}, nil
}
