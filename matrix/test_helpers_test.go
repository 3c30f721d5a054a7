// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

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

// mustAt reads m(i,j) or fails the test.
func mustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
