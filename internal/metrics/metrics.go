package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rescue_requests_total",
			Help: "Total pipeline requests by intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rescue_upstream_duration_seconds",
			Help: "Duration of generation calls to the model service",
		},
		[]string{"intent"},
	)

	RequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rescue_requests_in_flight",
			Help: "Outstanding pipeline requests per intent",
		},
		[]string{"intent"},
	)

	FallbackReports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rescue_fallback_reports_total",
			Help: "Report generations that substituted the fallback report",
		},
	)
)
