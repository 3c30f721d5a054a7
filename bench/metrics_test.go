package bench_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsbench/bench"
	"github.com/katalvlaran/gsbench/solve"
)

func TestMetrics_CountTrials(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := bench.NewMetrics(reg)
	require.NoError(t, err)
	require.Nil(t, m.Gatherer())

	failing := &stubSolver{alg: solve.GaussElimination, fn: func(call int) (solve.Result, error) {
		if call == 0 {
			return solve.Result{}, errStub
		}
		return solve.Result{X: []float64{0, 0}}, nil
	}}
	h, err := bench.New(smallConfig(2),
		bench.WithLogger(quietLogger()),
		bench.WithSolvers(failing),
		bench.WithMetrics(m),
	)
	require.NoError(t, err)
	_, err = h.Run(context.Background())
	require.NoError(t, err)

	// two status series for the trials counter, one size series for the histogram
	n, err := testutil.GatherAndCount(reg, "gsbench_solver_trials_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	n, err = testutil.GatherAndCount(reg, "gsbench_solver_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "gsbench_solver_duration_seconds" {
			continue
		}
		require.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
	}
}

// TestNewMetrics_Reuse registers twice on the same registry without error.
func TestNewMetrics_Reuse(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := bench.NewMetrics(reg)
	require.NoError(t, err)
	_, err = bench.NewMetrics(reg)
	require.NoError(t, err)

	m, err := bench.NewMetrics(nil)
	require.NoError(t, err)
	require.NotNil(t, m.Gatherer())
}
