package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_intents_total",
			Help: "Total number of classified submissions by mode, intent and command",
		},
		[]string{"mode", "intent", "command"},
	)

	SideEffectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_side_effects_total",
			Help: "Total number of side effects requested by mode and kind",
		},
		[]string{"mode", "kind"},
	)

	RecognitionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_recognition_events_total",
			Help: "Total number of voice recognition events by kind",
		},
		[]string{"kind"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
