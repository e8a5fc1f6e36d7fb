package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the safety API.
type Metrics struct {
	Evaluations        *prometheus.CounterVec // label: risk_level
	Overloads          prometheus.Counter
	HistoryWriteErrors prometheus.Counter
}

// NewMetrics creates and registers all collectors with the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoist",
			Name:      "evaluations_total",
			Help:      "Completed lift safety evaluations by risk level.",
		}, []string{"risk_level"}),
		Overloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hoist",
			Name:      "overloads_total",
			Help:      "Evaluations where the factored load exceeded crane capacity.",
		}),
		HistoryWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hoist",
			Name:      "history_write_errors_total",
			Help:      "Failed evaluation history inserts.",
		}),
	}

	prometheus.MustRegister(
		m.Evaluations,
		m.Overloads,
		m.HistoryWriteErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default registry
// so parallel tests do not trip duplicate registration.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Evaluations:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hoist", Name: "evaluations_total"}, []string{"risk_level"}),
		Overloads:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hoist", Name: "overloads_total"}),
		HistoryWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hoist", Name: "history_write_errors_total"}),
	}
}
