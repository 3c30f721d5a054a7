// Package solve implements the two dense linear solvers under benchmark.
//
// 🚀 What's inside?
//
//   - Gauss: Gaussian elimination WITHOUT pivoting + back-substitution.
//     Exact up to rounding; O(n³).
//   - Seidel: Gauss-Seidel relaxation (ω = 1) from x = 0, stopping when
//     ‖x_k − x_{k−1}‖₂ < τ (default 1e-6) or after 1000 sweeps; O(iter·n²).
//   - Residual: ‖Ax − b‖₂ via gonum/mat, for verification.
//
// ✨ Outcome model:
//
//	Result{X, Status, Iterations, Delta}
//
// Status is StatusConverged or StatusNotConverged; the iterative solver never
// hides an exhausted budget behind a plain vector. Zero pivots surface as
// ErrSingularPivot (concrete *PivotError) instead of Inf/NaN.
//
// ⚙️ Usage:
//
//	res, err := solve.Seidel(a.Clone(), matrix.CloneVec(b))
//	switch {
//	case errors.Is(err, solve.ErrSingularPivot):
//	    // zero diagonal
//	case err != nil:
//	    // shape problem
//	case !res.Converged():
//	    // best-effort iterate in res.X; res.Err() wraps ErrNotConverged
//	}
//
// Convergence of Gauss-Seidel is only guaranteed for diagonally dominant or
// symmetric positive-definite systems.
package solve
