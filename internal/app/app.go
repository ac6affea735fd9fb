package app

import (
	"shipping/internal/handlers/kafka-consumer/carrier_status_changed"
	"shipping/internal/handlers/rest/carrier_callback_post"
	"shipping/internal/handlers/rest/carrier_register_post"
	"shipping/internal/handlers/rest/order_status_put"
	"shipping/internal/handlers/rest/orders_ready_get"
	"shipping/internal/handlers/rest/shipment_get"
	"shipping/internal/handlers/rest/shipment_logs_get"
	"shipping/internal/handlers/rest/shipment_post"
	"shipping/internal/handlers/rest/shipment_route_post"
	"shipping/internal/handlers/rest/shipment_shipper_put"
	"shipping/internal/handlers/rest/shipment_status_put"
	"shipping/internal/handlers/rest/shipments_get"
	"shipping/internal/handlers/rest/statistics_get"
	"shipping/internal/handlers/rest/sub_shipment_status_put"
	"shipping/pkg/background"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceShipment   ServiceShipment
	ServiceRoute      ServiceRoute
	ServiceCarrier    ServiceCarrier
	ServiceStatistics ServiceStatistics
	BackgroundWorkers *background.Worker
}

type KafkaWorkerApp struct {
	ServiceCarrier ServiceCarrier
}

type ServiceOrder interface {
	order_status_put.Service
	orders_ready_get.Service
}

type ServiceShipment interface {
	shipment_post.Service
	shipments_get.Service
	shipment_get.Service
	shipment_status_put.Service
	shipment_shipper_put.Service
	shipment_logs_get.Service
}

type ServiceRoute interface {
	shipment_route_post.Service
	sub_shipment_status_put.Service
}

type ServiceCarrier interface {
	carrier_register_post.Service
	carrier_callback_post.Service
	carrier_status_changed.Service
}

type ServiceStatistics interface {
	statistics_get.Service
}
