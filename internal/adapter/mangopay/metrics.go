package mangopay

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for processor API calls.
type Metrics struct {
	// Calls by resource kind, HTTP method and outcome ("ok", "api_error", "transport_error")
	Requests *prometheus.CounterVec

	// Call latency by resource kind and HTTP method
	Latency *prometheus.HistogramVec

	// OAuth token requests by source ("cache", "remote")
	TokenRequests *prometheus.CounterVec
}

// NewMetrics registers the processor metrics on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mangopay_sync_remote_requests_total",
			Help: "Total payment processor API calls by kind, method and outcome",
		}, []string{"kind", "method", "outcome"}),

		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mangopay_sync_remote_request_duration_seconds",
			Help:    "Duration of payment processor API calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind", "method"}),

		TokenRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mangopay_sync_oauth_tokens_total",
			Help: "OAuth access token lookups by source",
		}, []string{"source"}),
	}
}

// ObserveRequest records one API call.
func (m *Metrics) ObserveRequest(kind, method, outcome string, d time.Duration) {
	if m != nil {
		m.Requests.WithLabelValues(kind, method, outcome).Inc()
		m.Latency.WithLabelValues(kind, method).Observe(d.Seconds())
	}
}

// IncrementToken records where an access token came from.
func (m *Metrics) IncrementToken(source string) {
	if m != nil {
		m.TokenRequests.WithLabelValues(source).Inc()
	}
}
