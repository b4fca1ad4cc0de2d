package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cineverse_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cineverse_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Proxy response cache
	ProxyCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cineverse_proxy_cache_lookups_total",
			Help: "Proxy response cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	// TMDb upstream
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cineverse_upstream_requests_total",
			Help: "Outbound TMDb requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"}, // success, http_error, transport_error, rejected
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cineverse_upstream_request_duration_seconds",
			Help:    "Outbound TMDb request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cineverse_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cineverse_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

func RecordCacheLookup(hit bool) {
	if hit {
		ProxyCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	ProxyCacheLookups.WithLabelValues("miss").Inc()
}

// BreakerStateValue maps a gobreaker state onto the gauge scale.
func BreakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
