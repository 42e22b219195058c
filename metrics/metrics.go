// Package metrics exports Prometheus collectors for the HTTP layer and the
// chatbot:
//   - http_request_total: counter with method, path and status labels
//   - http_request_duration_seconds: histogram with method and path labels
//   - http_request_in_flight: gauge of concurrent requests
//   - rate_limiter_buckets_total: gauge of tracked client buckets
//   - chatbot_intent_total: counter of resolved intents
//   - external_lookup_total: counter of reference-site outcomes
//   - external_lookup_duration_seconds: histogram of reference-site latency
//
// All collectors are registered with the default registry at init.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Number of per-client rate limiter buckets",
		},
	)

	ChatbotIntents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_intent_total",
			Help: "Chat messages by resolved intent",
		},
		[]string{"intent"},
	)

	ExternalLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_lookup_total",
			Help: "External reference lookups by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	ExternalLookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_lookup_duration_seconds",
			Help:    "External reference lookup latency",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(ChatbotIntents)
	prometheus.MustRegister(ExternalLookups)
	prometheus.MustRegister(ExternalLookupDuration)
}
