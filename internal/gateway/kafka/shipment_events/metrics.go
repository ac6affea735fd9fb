package shipment_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PublishDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "shipment_events_publish_duration_seconds",
		Help:    "Duration of shipment status event publishing",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"topic", "outcome"},
)
