package solve_test

import (
	"testing"

	"github.com/katalvlaran/gsbench/matrix"
)

// mustDenseFrom builds a Dense from a literal or fails the test.
func mustDenseFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}
