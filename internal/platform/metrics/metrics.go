package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ConsentEvents  *prometheus.CounterVec
	GenerationsRun prometheus.Counter
	WhatIfsRun     prometheus.Counter
	RequestLatency *prometheus.HistogramVec
}

// New creates all Prometheus metrics against the given registerer. Pass
// prometheus.DefaultRegisterer in main and a fresh registry in tests so
// repeated construction never collides.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ConsentEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "consentlens_consent_events_total",
			Help: "Total consent events appended, by action",
		}, []string{"action"}),
		GenerationsRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "consentlens_generations_total",
			Help: "Total real (ledgered) generation runs",
		}),
		WhatIfsRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "consentlens_whatifs_total",
			Help: "Total what-if analyses computed",
		}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "consentlens_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// IncrementConsentEvent counts one appended consent event.
func (m *Metrics) IncrementConsentEvent(action string) {
	m.ConsentEvents.WithLabelValues(action).Inc()
}

// ObserveRequestLatency records one HTTP request's duration for a route.
func (m *Metrics) ObserveRequestLatency(route string, d time.Duration) {
	m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
}
