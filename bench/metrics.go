// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus naming.
const (
	metricsNamespace = "gsbench"
	metricsSubsystem = "solver"
)

// Metrics holds the Prometheus collectors fed by the harness.
//
//   - gsbench_solver_duration_seconds{algorithm,size}: histogram of counted trials.
//   - gsbench_solver_trials_total{algorithm,status}: every trial, by TrialStatus.
type Metrics struct {
	duration *prometheus.HistogramVec
	trials   *prometheus.CounterVec
	registry prometheus.Gatherer // non-nil only for the private registry
}

// NewMetrics builds the collectors and registers them on reg.
// reg == nil ⇒ a private registry, available via Gatherer().
// An already-registered identical collector set is reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "duration_seconds",
			Help:      "Wall-clock time of a single solver call in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 18),
		}, []string{"algorithm", "size"}),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "trials_total",
			Help:      "Solver calls by outcome",
		}, []string{"algorithm", "status"}),
	}

	if reg == nil {
		private := prometheus.NewRegistry()
		reg = private
		m.registry = private
	}

	var err error
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.trials, err = register(reg, m.trials); err != nil {
		return nil, err
	}

	return m, nil
}

// register registers c on reg, returning the existing collector when an equal
// one is already present.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// Gatherer returns the private registry, or nil when an external Registerer
// was supplied.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// observe records one trial.
func (m *Metrics) observe(t TrialTiming) {
	alg := t.Algorithm.String()
	m.trials.WithLabelValues(alg, t.Status.String()).Inc()
	if t.Status != TrialFailed {
		m.duration.WithLabelValues(alg, strconv.Itoa(t.Size)).Observe(t.Seconds())
	}
}
