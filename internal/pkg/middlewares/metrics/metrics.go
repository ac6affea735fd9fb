package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shipping_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the shipping API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_http_requests_total",
			Help: "Total number of HTTP requests handled by the shipping API",
		},
		[]string{"method", "route", "status"},
	)
)
