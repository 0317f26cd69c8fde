// Package observability exposes Prometheus metrics for the tracking bridge.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FixesApplied counts position fixes accepted into the registry.
	FixesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "markertrack",
		Name:      "fixes_applied_total",
		Help:      "Number of position fixes accepted into the registry.",
	})

	// FixesRejected counts fixes rejected as malformed.
	FixesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "markertrack",
		Name:      "fixes_rejected_total",
		Help:      "Number of position fixes rejected as malformed.",
	})

	// ActiveEntities tracks the number of entities currently in the registry.
	ActiveEntities = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "markertrack",
		Name:      "active_entities",
		Help:      "Number of entities currently tracked.",
	})

	// LivenessTransitions counts liveness state changes by source and target state.
	LivenessTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "markertrack",
		Name:      "liveness_transitions_total",
		Help:      "Liveness state transitions.",
	}, []string{"from", "to"})

	// TickDuration observes wall time spent computing one registry tick.
	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "markertrack",
		Name:      "tick_duration_seconds",
		Help:      "Time spent computing one registry tick.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	})
)
