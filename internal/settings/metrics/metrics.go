package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the settings service. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Operations      *prometheus.CounterVec
	DefaultsCreated prometheus.Counter
	EndpointLatency *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "partsdash_settings_operations_total",
			Help: "Settings operations, labeled by operation and outcome",
		}, []string{"operation", "outcome"}),
		DefaultsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "partsdash_settings_defaults_created_total",
			Help: "Default settings documents created (first read or reset)",
		}),
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "partsdash_endpoint_latency_seconds",
			Help:    "Latency of HTTP endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// ObserveOperation counts one operation with outcome "ok" or "error".
func (m *Metrics) ObserveOperation(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) IncrementDefaultsCreated() {
	if m == nil {
		return
	}
	m.DefaultsCreated.Inc()
}

func (m *Metrics) ObserveEndpointLatency(endpoint string, seconds float64) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(endpoint).Observe(seconds)
}
