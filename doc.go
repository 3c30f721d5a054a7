// Package gsbench measures how a direct solver and an iterative solver scale
// on random dense linear systems Ax = b.
//
// 🚀 What is gsbench?
//
//	A small benchmark toolkit that brings together:
//		• Random systems: seeded uniform [0,1) draws, optionally diagonally dominant
//		• Direct solver: Gaussian elimination without pivoting
//		• Iterative solver: Gauss-Seidel with a tolerance and a sweep cap
//		• Harness: trials per size, means in an ordered size → seconds mapping
//		• Reports: a table and a bar chart for the terminal, Prometheus metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      — Dense row-major storage, vector kernels, the random Generator
//	solve/       — Gauss, Seidel, the Solver interface and the residual check
//	bench/       — Config (YAML), the timing Harness, Timings and Metrics
//	report/      — lipgloss Table and Chart rendering
//	cmd/gsbench/ — the cobra command line
//
// Quick start:
//
//	go run ./cmd/gsbench --sizes 100,400,700 --trials 3 --dominant
//
// Without --dominant the matrices are plain uniform draws: Gauss-Seidel is
// then expected to exhaust its sweeps, and those trials are flagged in the
// report rather than hidden.
package gsbench
