// Package metrics declares the Prometheus collectors shared across layers.
// Collectors register themselves on import via promauto; the /metrics route
// exposes the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream NHL API client.

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhl_upstream_requests_total",
			Help: "Upstream NHL API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"}, // outcome: success, http_error, transport_error, rejected
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nhl_upstream_request_duration_seconds",
			Help:    "Upstream NHL API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nhl_upstream_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	BreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhl_upstream_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Domain operations.

	ComparisonsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "player_comparisons_total",
			Help: "Multi-player comparisons computed",
		},
	)

	PlaceholderPlayers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "placeholder_players_total",
			Help: "Players resolved from unavailable upstream data",
		},
	)

	// HTTP surface.

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
