package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Гауги только кэш для дашбордов, источник правды всегда таблицы.
var (
	ShipmentsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shipments_by_status",
			Help: "Number of shipment orders per status at last refresh",
		},
		[]string{"status"},
	)

	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orders_by_status",
			Help: "Number of orders per status at last refresh",
		},
		[]string{"status"},
	)
)
