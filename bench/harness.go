// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gsbench/matrix"
	"github.com/katalvlaran/gsbench/solve"
)

// ---------- Internal panic messages ----------

const (
	panicNilLogger    = "bench: WithLogger: logger must be non-nil"
	panicNilClock     = "bench: WithClock: now must be non-nil"
	panicNilGenerator = "bench: WithGenerator: generator must be non-nil"
	panicNoSolvers    = "bench: WithSolvers: at least one non-nil solver required"
	panicNilMetrics   = "bench: WithMetrics: metrics must be non-nil"
)

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(h *Harness) { h.log = l }
}

// WithClock replaces time.Now. The clock must be monotonic for real runs;
// tests inject a fake to make durations exact.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicNilClock)
	}

	return func(h *Harness) { h.now = now }
}

// WithGenerator replaces the generator built from Config.Seed and
// Config.DiagonallyDominant.
func WithGenerator(g *matrix.Generator) Option {
	if g == nil {
		panic(panicNilGenerator)
	}

	return func(h *Harness) { h.gen = g }
}

// WithSolvers replaces the default pair (direct, iterative). Solvers run in
// the given order within each trial.
func WithSolvers(solvers ...solve.Solver) Option {
	if len(solvers) == 0 || slices.Contains(solvers, nil) {
		panic(panicNoSolvers)
	}
	s := slices.Clone(solvers)

	return func(h *Harness) { h.solvers = s }
}

// WithMetrics feeds m instead of a private Metrics instance.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic(panicNilMetrics)
	}

	return func(h *Harness) { h.metrics = m }
}

// WithTrialHook calls fn after every solver call, in execution order.
// A nil fn disables the hook.
func WithTrialHook(fn func(TrialTiming)) Option {
	return func(h *Harness) { h.onTrial = fn }
}

// Harness drives the benchmark: sizes ascending, trials sequentially, solvers
// in order within a trial. It is single-use per Run call and not safe for
// concurrent Runs.
type Harness struct {
	cfg     Config
	sizes   []int
	gen     *matrix.Generator
	solvers []solve.Solver
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
	onTrial func(TrialTiming)
}

// New validates cfg and assembles a Harness. cfg is copied.
//
// Defaults: generator from cfg.Seed/cfg.DiagonallyDominant, solvers
// (Gauss, Seidel) configured from cfg, slog.Default(), time.Now, and a
// private Metrics registry.
func New(cfg *Config, opts ...Option) (*Harness, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Harness{
		cfg:   *cfg,
		sizes: slices.Clone(cfg.Sizes),
		log:   slog.Default(),
		now:   time.Now,
	}
	h.cfg.Sizes = slices.Clone(cfg.Sizes)
	slices.Sort(h.sizes)

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	if h.gen == nil {
		gopts := []matrix.GeneratorOption{matrix.WithSeed(cfg.Seed)}
		if cfg.DiagonallyDominant {
			gopts = append(gopts, matrix.WithDiagonalDominance())
		}
		h.gen = matrix.NewGenerator(gopts...)
	}
	if h.solvers == nil {
		sopts := cfg.SolverOptions()
		h.solvers = []solve.Solver{solve.NewDirect(sopts...), solve.NewIterative(sopts...)}
	}
	if h.metrics == nil {
		m, err := NewMetrics(nil)
		if err != nil {
			return nil, err
		}
		h.metrics = m
	}

	return h, nil
}

// Metrics returns the collectors this harness feeds.
func (h *Harness) Metrics() *Metrics { return h.metrics }

// Results is the harness's externally visible artifact.
type Results struct {
	RunID  string
	Config Config
	Series []*Timings // one per solver, in solver order
}

// Timings returns the mapping for alg, or nil.
func (r *Results) Timings(alg solve.Algorithm) *Timings {
	for _, t := range r.Series {
		if t.Algorithm() == alg {
			return t
		}
	}

	return nil
}

// Direct returns the Gaussian-elimination mapping (nil if not run).
func (r *Results) Direct() *Timings { return r.Timings(solve.GaussElimination) }

// Iterative returns the Gauss-Seidel mapping (nil if not run).
func (r *Results) Iterative() *Timings { return r.Timings(solve.GaussSeidel) }

// Run executes the benchmark.
//
// For each size (ascending) and each trial, a fresh (A, b) is generated; every
// solver gets its own clone, and only the Solve call is timed. Per size, each
// algorithm's mean over counted trials is Put into its Timings.
//
// ctx is checked before every trial; a running solver is never interrupted.
// On cancellation the sizes completed so far are returned with ctx's error.
func (h *Harness) Run(ctx context.Context) (*Results, error) {
	res := &Results{
		RunID:  uuid.NewString(),
		Config: h.cfg,
		Series: make([]*Timings, len(h.solvers)),
	}
	res.Config.Sizes = slices.Clone(h.cfg.Sizes)
	for i, s := range h.solvers {
		res.Series[i] = NewTimings(s.Algorithm())
	}
	log := h.log.With(slog.String("run_id", res.RunID))
	log.Info("benchmark started",
		slog.Any("sizes", h.sizes),
		slog.Int("trials", h.cfg.Trials),
		slog.Int64("seed", h.cfg.Seed),
		slog.Bool("diagonally_dominant", h.gen.DiagonallyDominant()),
	)

	for _, n := range h.sizes {
		accs := make([]accumulator, len(h.solvers))
		for trial := 0; trial < h.cfg.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				log.Warn("benchmark interrupted", slog.Int("size", n), slog.Int("trial", trial))
				return res, fmt.Errorf("bench: run interrupted: %w", err)
			}
			a, b, err := h.gen.System(n)
			if err != nil {
				return res, fmt.Errorf("bench: generate n=%d: %w", n, err)
			}
			for i, s := range h.solvers {
				tt := h.runTrial(log, s, a, b, n, trial)
				accs[i].add(tt)
				h.metrics.observe(tt)
				if h.onTrial != nil {
					h.onTrial(tt)
				}
			}
		}
		for i, s := range h.solvers {
			e := accs[i].entry(n)
			res.Series[i].Put(e)
			log.Info("size complete",
				slog.Int("size", n),
				slog.String("algorithm", s.Algorithm().Label()),
				slog.Float64("mean_seconds", e.Mean),
				slog.Int("samples", e.Samples),
				slog.Int("failed", e.Failed),
				slog.Int("not_converged", e.NotConverged),
			)
		}
	}

	log.Info("benchmark finished")

	return res, nil
}

// runTrial times one solver call on private clones of (a, b).
func (h *Harness) runTrial(log *slog.Logger, s solve.Solver, a *matrix.Dense, b []float64, n, trial int) TrialTiming {
	aw := a.Clone()
	bw := matrix.CloneVec(b)

	start := h.now()
	out, err := s.Solve(aw, bw)
	elapsed := h.now().Sub(start)

	tt := TrialTiming{
		Algorithm: s.Algorithm(),
		Size:      n,
		Trial:     trial,
		Elapsed:   elapsed,
		Status:    TrialOK,
		Residual:  math.NaN(),
	}
	attrs := []any{
		slog.String("algorithm", s.Algorithm().String()),
		slog.Int("size", n),
		slog.Int("trial", trial),
	}

	switch {
	case err != nil:
		tt.Status = TrialFailed
		tt.Err = err
		var pe *solve.PivotError
		if errors.As(err, &pe) {
			attrs = append(attrs, slog.Int("pivot_row", pe.Row))
		}
		log.Warn("trial failed", append(attrs, slog.String("error", err.Error()))...)
		return tt
	case !out.Converged():
		tt.Status = TrialNotConverged
		attrs = append(attrs, slog.Int("iterations", out.Iterations), slog.Float64("delta", out.Delta))
	}

	if h.cfg.Verify {
		// a and b are the pristine originals; the solver only saw clones.
		r, rerr := solve.Residual(a, out.X, b)
		if rerr == nil {
			tt.Residual = r
			attrs = append(attrs, slog.Float64("residual", r))
		}
	}
	log.Debug("trial done", append(attrs,
		slog.Duration("elapsed", elapsed),
		slog.String("status", tt.Status.String()),
	)...)

	return tt
}
