//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.ShipmentOrder, error)
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.ShipmentOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.ShipmentOrder, error)
	List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.ShipmentOrder, error)
	ListTrackable(ctx context.Context, limit uint64) ([]entities.ShipmentOrder, error)
	ListDeliveredWithUnmirroredOrder(ctx context.Context, limit uint64) ([]entities.ShipmentOrder, error)
}

type LegRepository interface {
	ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]entities.SubShipmentOrder, error)
	CountByShipmentID(ctx context.Context, shipmentID uuid.UUID) (int, error)
}

type LogRepository interface {
	Create(ctx context.Context, entry entities.ShipmentLog) (*entities.ShipmentLog, error)
	ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]entities.ShipmentLog, error)
}

type Directory interface {
	GetWarehouse(ctx context.Context, id uuid.UUID) (*entities.Warehouse, error)
	GetShipper(ctx context.Context, id uuid.UUID) (*entities.Shipper, error)
	GetShop(ctx context.Context, id uuid.UUID) (*entities.Shop, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	Advance(ctx context.Context, id uuid.UUID, target entities.OrderStatusType) (*entities.Order, error)
}

type DeliveryEstimator interface {
	EstimateDelivery(base time.Time) time.Time
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.ShipmentStatusChanged) error
}

type StatisticsRefresher interface {
	Refresh(ctx context.Context) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
