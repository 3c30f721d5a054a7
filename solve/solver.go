// SPDX-License-Identifier: MIT

package solve

import "github.com/katalvlaran/gsbench/matrix"

// Solver is the harness-facing contract: Solve consumes an exclusively owned
// (a, b) pair and may mutate it.
type Solver interface {
	Algorithm() Algorithm
	Solve(a *matrix.Dense, b []float64) (Result, error)
}

// direct adapts Gauss to Solver with fixed options.
type direct struct{ opts []Option }

// iterative adapts Seidel to Solver with fixed options.
type iterative struct{ opts []Option }

var (
	_ Solver = direct{}
	_ Solver = iterative{}
)

// NewDirect returns the Gaussian-elimination Solver.
// Option values are validated at construction (panics on nonsense).
func NewDirect(opts ...Option) Solver { return direct{opts: opts} }

// NewIterative returns the Gauss-Seidel Solver.
func NewIterative(opts ...Option) Solver { return iterative{opts: opts} }

func (direct) Algorithm() Algorithm { return GaussElimination }

func (s direct) Solve(a *matrix.Dense, b []float64) (Result, error) {
	return Gauss(a, b, s.opts...)
}

func (iterative) Algorithm() Algorithm { return GaussSeidel }

func (s iterative) Solve(a *matrix.Dense, b []float64) (Result, error) {
	return Seidel(a, b, s.opts...)
}
