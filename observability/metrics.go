package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics wraps the Prometheus collectors recording reducer activity:
// commands processed, invariant violations surfaced, step latency, and the
// current state revision. One instance is shared across every adapter that
// drives core.Engine.Step.
type EngineMetrics struct {
	commands    *prometheus.CounterVec
	violations  *prometheus.CounterVec
	stepLatency *prometheus.HistogramVec
	revision    prometheus.Gauge
}

var (
	engineMetricsOnce sync.Once
	engineRegistry    *EngineMetrics
)

// Engine returns the lazily-initialised, process-wide engine metrics
// registry.
func Engine() *EngineMetrics {
	engineMetricsOnce.Do(func() {
		engineRegistry = &EngineMetrics{
			commands: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "guildhall",
				Subsystem: "engine",
				Name:      "commands_total",
				Help:      "Total commands processed by the reducer, segmented by kind and outcome.",
			}, []string{"kind", "outcome"}),
			violations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "guildhall",
				Subsystem: "engine",
				Name:      "invariant_violations_total",
				Help:      "Count of invariant violations surfaced after a Step, segmented by invariant id.",
			}, []string{"id"}),
			stepLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "guildhall",
				Subsystem: "engine",
				Name:      "step_duration_seconds",
				Help:      "Latency distribution of Engine.Step calls, segmented by command kind.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"kind"}),
			revision: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "guildhall",
				Subsystem: "engine",
				Name:      "state_revision",
				Help:      "Current state revision counter after the most recent Step.",
			}),
		}
		prometheus.MustRegister(
			engineRegistry.commands,
			engineRegistry.violations,
			engineRegistry.stepLatency,
			engineRegistry.revision,
		)
	})
	return engineRegistry
}

// ObserveStep records the outcome of a single reducer Step: whether it was
// accepted or rejected (derived from the presence of a command.rejected
// event), its latency, any invariant violations it surfaced, and the
// resulting revision number.
func (m *EngineMetrics) ObserveStep(kind string, rejected bool, violationIDs []string, revision uint64, d time.Duration) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "unknown"
	}
	outcome := "accepted"
	if rejected {
		outcome = "rejected"
	}
	m.commands.WithLabelValues(kind, outcome).Inc()
	m.stepLatency.WithLabelValues(kind).Observe(d.Seconds())
	for _, id := range violationIDs {
		m.violations.WithLabelValues(id).Inc()
	}
	m.revision.Set(float64(revision))
}
