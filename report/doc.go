// Package report prints benchmark results to a terminal.
//
// It consumes only what the harness exposes to a renderer, the ordered
// size → mean-seconds mappings (*bench.Timings), and draws:
//
//   - Table: one row per size, one column per algorithm, plus notes on
//     failed or non-converged trials;
//   - Chart: horizontal bars scaled to the maximum mean across all series,
//     with a red/blue legend.
//
// Styling uses lipgloss; colour is dropped automatically when the output is
// not a terminal.
package report
