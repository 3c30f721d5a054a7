// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gsbench/bench"
	"github.com/katalvlaran/gsbench/report"
	"github.com/katalvlaran/gsbench/solve"
)

// version is overridden at link time (-ldflags "-X main.version=...").
var version = "dev"

// flags collects raw flag values; only flags the user set override the
// config file (see applyFlags).
type flags struct {
	configPath  string
	sizes       []int
	trials      int
	seed        int64
	dominant    bool
	verify      bool
	tolerance   float64
	maxIter     int
	pivotEps    float64
	logLevel    string
	logJSON     bool
	metricsAddr string
	chartWidth  int
	noChart     bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "gsbench",
		Short: "Benchmark Gaussian elimination vs. Gauss-Seidel on random dense systems",
		Long: `gsbench times a direct solver (Gaussian elimination without pivoting)
and an iterative solver (Gauss-Seidel, tolerance 1e-6, 1000 sweeps) on freshly
generated random systems and prints the mean wall-clock time per problem size.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	registerFlags(cmd.Flags(), f)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// registerFlags binds every command-line flag to f.
func registerFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file (flags override it)")
	fs.IntSliceVar(&f.sizes, "sizes", bench.DefaultSizes, "problem sizes n")
	fs.IntVarP(&f.trials, "trials", "t", bench.DefaultTrials, "trials per size")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = fixed default stream)")
	fs.BoolVar(&f.dominant, "dominant", false, "generate strictly diagonally dominant matrices")
	fs.BoolVar(&f.verify, "verify", false, "compute the residual ‖Ax−b‖ of every trial")
	fs.Float64Var(&f.tolerance, "tolerance", solve.DefaultTolerance, "Gauss-Seidel convergence tolerance")
	fs.IntVar(&f.maxIter, "max-iter", solve.DefaultMaxIterations, "Gauss-Seidel iteration cap")
	fs.Float64Var(&f.pivotEps, "pivot-eps", solve.DefaultPivotEpsilon, "reject pivots with |p| <= eps")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&f.logJSON, "log-json", false, "JSON logs even on a terminal (the default off a terminal)")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running (e.g. :9090)")
	fs.IntVar(&f.chartWidth, "chart-width", report.DefaultChartWidth, "bar length of the largest mean")
	fs.BoolVar(&f.noChart, "no-chart", false, "print only the table")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gsbench version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gsbench", version)
		},
	}
}

// loadConfig resolves defaults → file → flags.
func loadConfig(cmd *cobra.Command, f *flags) (*bench.Config, error) {
	cfg := bench.DefaultConfig()
	if f.configPath != "" {
		fileCfg, err := bench.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, f *flags, cfg *bench.Config) {
	changed := cmd.Flags().Changed
	if changed("sizes") {
		cfg.Sizes = append([]int(nil), f.sizes...)
	}
	if changed("trials") {
		cfg.Trials = f.trials
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("dominant") {
		cfg.DiagonallyDominant = f.dominant
	}
	if changed("verify") {
		cfg.Verify = f.verify
	}
	if changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if changed("max-iter") {
		cfg.MaxIterations = f.maxIter
	}
	if changed("pivot-eps") {
		cfg.PivotEpsilon = f.pivotEps
	}
}

// newLogger builds a slog logger on w at the named level: text for a
// terminal, JSON otherwise.
func newLogger(w io.Writer, level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func run(cmd *cobra.Command, f *flags) error {
	stderr := cmd.ErrOrStderr()
	logger, err := newLogger(stderr, f.logLevel, f.logJSON || !isTerminal(stderr))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		logger.Error("configuration rejected", slog.String("error", err.Error()))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	if err != nil {
		return err
	}
	h, err := bench.New(cfg, bench.WithLogger(logger), bench.WithMetrics(metrics))
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	var srv *http.Server
	if f.metricsAddr != "" {
		srv = newMetricsServer(f.metricsAddr, reg)
		g.Go(func() error {
			logger.Info("serving metrics", slog.String("addr", f.metricsAddr))
			if lerr := srv.ListenAndServe(); lerr != nil && !errors.Is(lerr, http.ErrServerClosed) {
				return fmt.Errorf("metrics listener: %w", lerr)
			}
			return nil
		})
	}
	var res *bench.Results
	g.Go(func() error {
		if srv != nil {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()
		}
		var rerr error
		res, rerr = h.Run(gctx)
		return rerr
	})

	if err = g.Wait(); err != nil {
		logger.Error("benchmark aborted", slog.String("error", err.Error()))
		// Interrupted runs still print the sizes that completed.
		if !errors.Is(err, context.Canceled) || res == nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if rerr := report.Table(out, res.Series...); rerr != nil {
		return rerr
	}
	if !f.noChart {
		fmt.Fprintln(out)
		if rerr := report.Chart(out, f.chartWidth, res.Series...); rerr != nil {
			return rerr
		}
	}

	return err
}

// newMetricsServer exposes reg on /metrics.
func newMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
