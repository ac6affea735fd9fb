//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipping/internal/pkg/config"
	carrierService "shipping/internal/service/carrier"
	orderService "shipping/internal/service/order"
	routeService "shipping/internal/service/route"
	shipmentService "shipping/internal/service/shipment"
	statisticsService "shipping/internal/service/statistics"
	"shipping/pkg/logger"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideShipmentRepository,
	provideSubShipmentRepository,
	provideShipmentLogRepository,
	provideDirectoryRepository,
)

var serviceSet = wire.NewSet(
	provideDeliveryEstimate,
	provideCarrierStatusMapper,
	provideCarrierGateway,
	provideShipmentEventsPublisher,

	provideStatisticsService,
	provideOrderService,
	provideShipmentService,
	provideRouteService,
	provideCarrierService,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideOrderReconcileTask,
		provideCarrierStatusSyncTask,
		provideStatisticsRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceRoute), new(*routeService.Service)),
		wire.Bind(new(ServiceCarrier), new(*carrierService.Service)),
		wire.Bind(new(ServiceStatistics), new(*statisticsService.Service)),

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-carrier-status)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		wire.Bind(new(ServiceCarrier), new(*carrierService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return &KafkaWorkerApp{}, nil
}
