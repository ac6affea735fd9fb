package ghtk

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CarrierRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_gateway_retries_total",
			Help: "Total number of carrier gateway retry attempts",
		},
		[]string{"carrier", "method", "reason"},
	)

	CarrierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_gateway_request_duration_seconds",
			Help:    "Duration of carrier gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"carrier", "method", "outcome"},
	)
)
