// Package bench is the benchmarking harness: it drives the two solvers over a
// list of problem sizes, times every call and aggregates mean wall-clock time
// per size and algorithm.
//
// Pipeline, per size n (ascending) and per trial:
//
//	Generator.System(n) ─► (A, b)
//	                        ├─ clone ─► Gauss   ─┐ timed
//	                        └─ clone ─► Seidel  ─┘ timed
//	TrialTiming ─► accumulator ─► Entry{Mean = Total/Samples} ─► Timings (ordered by size)
//
// Failure policy:
//   - a solver error (zero pivot, bad shape) marks the trial TrialFailed; it is
//     logged, counted in Entry.Failed and excluded from the mean;
//   - an exhausted Gauss-Seidel budget marks the trial TrialNotConverged; its
//     time is real cost, so it is averaged, and counted in Entry.NotConverged.
//
// Execution is strictly sequential. Configuration comes from Config
// (DefaultConfig reproduces the baseline: sizes 100…2000, 5 trials) or from a
// YAML file via LoadConfig. Metrics go to Prometheus collectors, logs to slog.
package bench
