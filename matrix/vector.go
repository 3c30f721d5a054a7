// SPDX-License-Identifier: MIT

// Package matrix - vector kernels shared by the solvers.
//
// Vectors are plain []float64. Every helper is deterministic (fixed i-order
// accumulation) and returns sentinel errors instead of panicking.
package matrix

import (
	"fmt"
	"math"
)

// Operation tags for uniform error wrapping.
const (
	opDot      = "Dot"
	opSub      = "Sub"
	opDistance = "Distance"
)

// vectorErrorf wraps err with an operation tag, preserving the sentinel via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns Σ a[i]·b[i] over the half-open range [start, end).
// start == end yields 0.
//
// Errors:
//   - ErrOutOfRange if start < 0, start > end, or end exceeds len(a) or len(b).
//
// Complexity: O(end-start).
func Dot(a, b []float64, start, end int) (float64, error) {
	if start < 0 || start > end || end > len(a) || end > len(b) {
		return 0, vectorErrorf(opDot, ErrOutOfRange)
	}

	return dot(a, b, start, end), nil
}

// dot is the unchecked kernel behind Dot. Callers guarantee the range.
func dot(a, b []float64, start, end int) float64 {
	var acc float64
	var i int
	for i = start; i < end; i++ {
		acc += a[i] * b[i]
	}

	return acc
}

// DotRange is the unchecked form of Dot for hot loops whose bounds are
// established once up front (elimination and relaxation sweeps).
// Out-of-range arguments panic like any slice index.
func DotRange(a, b []float64, start, end int) float64 { return dot(a, b, start, end) }

// Sub returns a fresh vector a − b.
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: O(n) time and memory.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, vectorErrorf(opSub, ErrDimensionMismatch)
	}
	out := make([]float64, len(a))

	var i int
	for i = range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Norm returns the Euclidean norm ‖a‖₂. Empty input yields 0.
// Complexity: O(n).
func Norm(a []float64) float64 {
	var acc float64
	for _, v := range a {
		acc += v * v
	}

	return math.Sqrt(acc)
}

// Distance returns ‖a − b‖₂ without allocating the difference vector.
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: O(n), no allocations.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, vectorErrorf(opDistance, ErrDimensionMismatch)
	}
	var acc float64
	var d float64
	var i int
	for i = range a {
		d = a[i] - b[i]
		acc += d * d
	}

	return math.Sqrt(acc), nil
}

// CloneVec returns an independent copy of a (nil stays nil).
func CloneVec(a []float64) []float64 {
	if a == nil {
		return nil
	}
	out := make([]float64, len(a))
	copy(out, a)

	return out
}
