package app

import (
	"context"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipping/internal/gateway/http/ghtk"
	"shipping/internal/gateway/kafka/shipment_events"
	"shipping/internal/handlers/tasks/carrier_status_sync"
	"shipping/internal/handlers/tasks/order_reconcile"
	"shipping/internal/handlers/tasks/statistics_refresh"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/factory/carrier_status"
	"shipping/internal/pkg/factory/delivery_estimate"
	directoryRepo "shipping/internal/repository/directory"
	orderRepo "shipping/internal/repository/order"
	shipmentRepo "shipping/internal/repository/shipment"
	shipmentLogRepo "shipping/internal/repository/shipment_log"
	subShipmentRepo "shipping/internal/repository/sub_shipment"
	carrierService "shipping/internal/service/carrier"
	orderService "shipping/internal/service/order"
	routeService "shipping/internal/service/route"
	shipmentService "shipping/internal/service/shipment"
	statisticsService "shipping/internal/service/statistics"
	"shipping/pkg/background"
	"shipping/pkg/logger"
	"shipping/pkg/querier"
	"shipping/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideSubShipmentRepository(querier *querier.Querier) *subShipmentRepo.Repository {
	return subShipmentRepo.New(querier)
}

func provideShipmentLogRepository(querier *querier.Querier) *shipmentLogRepo.Repository {
	return shipmentLogRepo.New(querier)
}

func provideDirectoryRepository(querier *querier.Querier) *directoryRepo.Repository {
	return directoryRepo.New(querier)
}

func provideDeliveryEstimate(cfg *config.Config) *delivery_estimate.DeliveryTimeFactory {
	return delivery_estimate.New(
		cfg.DeliveryEstimate.TransitDays,
		cfg.DeliveryEstimate.DeliveryHour,
		cfg.DeliveryEstimate.Location,
	)
}

func provideCarrierStatusMapper() *carrier_status.Mapper {
	return carrier_status.New()
}

func provideCarrierGateway(cfg *config.Config) *ghtk.Gateway {
	client := &http.Client{Timeout: cfg.Carrier.RequestTimeout}

	return ghtk.New(client, ghtk.Config{
		BaseURL:      cfg.Carrier.BaseURL,
		Token:        cfg.Carrier.Token,
		ClientSource: cfg.Carrier.ClientSource,
	})
}

func provideShipmentEventsPublisher(producer sarama.SyncProducer, cfg *config.Config) *shipment_events.Publisher {
	return shipment_events.New(producer, cfg.Kafka.Producer.Topic)
}

func provideStatisticsService(
	shipments *shipmentRepo.Repository,
	orders *orderRepo.Repository,
) *statisticsService.Service {
	return statisticsService.New(shipments, orders)
}

func provideOrderService(
	repository *orderRepo.Repository,
	txManager *tx.Manager,
	stats *statisticsService.Service,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(repository, txManager, stats, log)
}

func provideShipmentService(
	repository *shipmentRepo.Repository,
	legs *subShipmentRepo.Repository,
	logs *shipmentLogRepo.Repository,
	directory *directoryRepo.Repository,
	orders *orderService.Service,
	estimator *delivery_estimate.DeliveryTimeFactory,
	publisher *shipment_events.Publisher,
	stats *statisticsService.Service,
	txManager *tx.Manager,
	log logger.Logger,
) *shipmentService.Service {
	return shipmentService.New(
		repository,
		legs,
		logs,
		directory,
		orders,
		estimator,
		publisher,
		stats,
		txManager,
		log,
	)
}

func provideRouteService(
	legs *subShipmentRepo.Repository,
	shipments *shipmentService.Service,
	directory *directoryRepo.Repository,
	txManager *tx.Manager,
	log logger.Logger,
) *routeService.Service {
	return routeService.New(legs, shipments, directory, txManager, log)
}

func provideCarrierService(
	shipments *shipmentService.Service,
	router *routeService.Service,
	orders *orderService.Service,
	directory *directoryRepo.Repository,
	gateway *ghtk.Gateway,
	mapper *carrier_status.Mapper,
	txManager *tx.Manager,
	log logger.Logger,
	cfg *config.Config,
) *carrierService.Service {
	return carrierService.New(
		shipments,
		router,
		orders,
		directory,
		gateway,
		mapper,
		txManager,
		log,
		cfg.Carrier.RequestTimeout,
	)
}

func provideOrderReconcileTask(
	log logger.Logger,
	service *shipmentService.Service,
	cfg *config.Config,
) *order_reconcile.OrderReconcile {
	return order_reconcile.NewOrderReconcile(log, service, cfg.Tasks.OrderReconcileInterval)
}

func provideCarrierStatusSyncTask(
	log logger.Logger,
	service *carrierService.Service,
	cfg *config.Config,
) *carrier_status_sync.CarrierStatusSync {
	return carrier_status_sync.NewCarrierStatusSync(log, service, cfg.Tasks.CarrierStatusSyncInterval)
}

func provideStatisticsRefreshTask(
	service *statisticsService.Service,
	cfg *config.Config,
) *statistics_refresh.StatisticsRefresh {
	return statistics_refresh.NewStatisticsRefresh(service, cfg.Tasks.StatisticsRefreshInterval)
}

func provideTaskList(
	orderReconcileTask *order_reconcile.OrderReconcile,
	carrierStatusSyncTask *carrier_status_sync.CarrierStatusSync,
	statisticsRefreshTask *statistics_refresh.StatisticsRefresh,
) []background.Task {
	return []background.Task{
		orderReconcileTask,
		carrierStatusSyncTask,
		statisticsRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
