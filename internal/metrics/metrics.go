// README: Prometheus collectors for LLM calls and HTTP traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess      = "success"
	OutcomeError        = "error"
	OutcomeTimeout      = "timeout"
	OutcomeUnauthorized = "unauthorized"
)

var (
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_llm_requests_total",
			Help: "Total number of completion requests sent to the LLM provider",
		},
		[]string{"provider", "operation", "outcome"},
	)

	LLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travel_llm_request_duration_seconds",
			Help:    "Latency of completion requests in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"provider", "operation"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "travel_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)
)

// ObserveLLM records one completion call.
func ObserveLLM(provider, operation, outcome string, elapsed time.Duration) {
	LLMRequests.WithLabelValues(provider, operation, outcome).Inc()
	LLMDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}
