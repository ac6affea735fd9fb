package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RejectedRequestsTotal считает запросы, отклонённые token bucket.
var RejectedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shipping_http_rate_limited_total",
		Help: "Requests to the shipping API rejected with 429 by the token bucket",
	},
	[]string{"method", "route"},
)
