// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gsbench/matrix"
)

const opResidual = "Residual"

// Residual returns ‖Ax − b‖₂, a method-independent accuracy measure.
//
// The computation goes through gonum/mat over zero-copy views of a, x and b,
// so a must be the ORIGINAL matrix, not a solver's consumed copy.
//
// Errors: ErrNilInput, ErrDimensionMismatch (wrapped).
// Complexity: O(n²) time, O(n) extra space.
func Residual(a *matrix.Dense, x, b []float64) (float64, error) {
	n, err := matrix.ValidateSystem(a, b)
	if err != nil {
		return 0, solveErrorf(opResidual, err)
	}
	if err = matrix.ValidateVecLen(x, n); err != nil {
		return 0, solveErrorf(opResidual, fmt.Errorf("x: %w", err))
	}

	av := mat.NewDense(n, n, a.RawData())
	xv := mat.NewVecDense(n, x)
	bv := mat.NewVecDense(n, b)

	var r mat.VecDense
	r.MulVec(av, xv)
	r.SubVec(&r, bv)

	return mat.Norm(&r, 2), nil
}
