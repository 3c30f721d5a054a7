// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gsbench/solve"
)

// ErrInvalidConfig indicates an invalid benchmark configuration.
var ErrInvalidConfig = errors.New("bench: invalid configuration")

// DefaultSizes is the baseline list of problem sizes.
var DefaultSizes = []int{100, 400, 500, 700, 1000, 1500, 2000}

// DefaultTrials is the baseline number of trials per size.
const DefaultTrials = 5

// Config holds the benchmark configuration.
//
// Use DefaultConfig() to get the baseline run, then override specific fields
// (or load a YAML file with LoadConfig). Zero values are NOT defaults; always
// start from DefaultConfig.
type Config struct {
	// Sizes are the problem orders n; processed in ascending order.
	Sizes []int `yaml:"sizes"`

	// Trials is the number of fresh random systems per size.
	Trials int `yaml:"trials"`

	// Seed selects the deterministic random stream (0 ⇒ fixed default stream).
	Seed int64 `yaml:"seed"`

	// DiagonallyDominant forces strictly diagonally dominant matrices.
	DiagonallyDominant bool `yaml:"diagonally_dominant"`

	// Tolerance is the Gauss-Seidel convergence threshold τ.
	Tolerance float64 `yaml:"tolerance"`

	// MaxIterations caps Gauss-Seidel sweeps.
	MaxIterations int `yaml:"max_iterations"`

	// PivotEpsilon rejects pivots with |p| ≤ eps (both solvers).
	PivotEpsilon float64 `yaml:"pivot_epsilon"`

	// Verify computes ‖Ax − b‖ for every successful trial (outside the timer).
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns the baseline configuration. Never nil.
func DefaultConfig() *Config {
	return &Config{
		Sizes:         append([]int(nil), DefaultSizes...),
		Trials:        DefaultTrials,
		Seed:          0,
		Tolerance:     solve.DefaultTolerance,
		MaxIterations: solve.DefaultMaxIterations,
		PivotEpsilon:  solve.DefaultPivotEpsilon,
	}
}

// Validate checks every field; the error wraps ErrInvalidConfig and names the
// offending field.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: sizes must not be empty", ErrInvalidConfig)
	}
	seen := make(map[int]struct{}, len(c.Sizes))
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d must be >= 1", ErrInvalidConfig, n)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: duplicate size %d", ErrInvalidConfig, n)
		}
		seen[n] = struct{}{}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1", ErrInvalidConfig)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be finite and > 0", ErrInvalidConfig)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be >= 1", ErrInvalidConfig)
	}
	if c.PivotEpsilon < 0 || math.IsNaN(c.PivotEpsilon) || math.IsInf(c.PivotEpsilon, 0) {
		return fmt.Errorf("%w: pivot_epsilon must be finite and >= 0", ErrInvalidConfig)
	}

	return nil
}

// SolverOptions maps the numeric fields onto solve options.
// Call only on a validated Config (the option constructors panic on nonsense).
func (c *Config) SolverOptions() []solve.Option {
	return []solve.Option{
		solve.WithTolerance(c.Tolerance),
		solve.WithMaxIterations(c.MaxIterations),
		solve.WithPivotEpsilon(c.PivotEpsilon),
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys absent from the file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bench: open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("bench: %s: %w", path, err)
	}

	return cfg, nil
}

// DecodeConfig decodes YAML from r over DefaultConfig and validates it.
// An empty document yields the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
