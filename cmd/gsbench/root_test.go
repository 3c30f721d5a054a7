package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsbench/bench"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "gsbench dev\n", out)
}

func TestRun_SmallBenchmark(t *testing.T) {
	out, _, err := execute(t, "--sizes", "3,5", "--trials", "2", "--dominant", "--verify", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "Gauss Elimination (s)")
	require.Contains(t, out, "Gauss-Seidel (s)")
	require.Contains(t, out, "n=3")
	require.Contains(t, out, "n=5")
	require.Contains(t, out, "scale:")
}

func TestRun_NoChart(t *testing.T) {
	out, _, err := execute(t, "--sizes", "2", "-t", "1", "--dominant", "--no-chart", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "Size")
	require.NotContains(t, out, "scale:")
}

func TestRun_RejectsBadInput(t *testing.T) {
	_, _, err := execute(t, "--trials", "0", "--log-level", "error")
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, _, err = execute(t, "--log-level", "chatty")
	require.ErrorContains(t, err, "invalid --log-level")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadConfig_FlagsOverrideFile: only explicitly set flags win over the file.
func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [10, 20]\ntrials: 4\nseed: 9\n"), 0o600))

	cmd := &cobra.Command{}
	f := &flags{}
	registerFlags(cmd.Flags(), f)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--trials", "2", "--max-iter", "50"}))

	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	require.Equal(t, []int{10, 20}, cfg.Sizes) // from the file
	require.Equal(t, int64(9), cfg.Seed)       // from the file
	require.Equal(t, 2, cfg.Trials)            // flag wins
	require.Equal(t, 50, cfg.MaxIterations)    // flag wins
	require.False(t, cfg.DiagonallyDominant)   // untouched default
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "warn", false)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	l, err = newLogger(&buf, "debug", true)
	require.NoError(t, err)
	l.Debug("structured")
	require.Contains(t, buf.String(), `"msg":"structured"`)

	require.False(t, isTerminal(&buf))
}
