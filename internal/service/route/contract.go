//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type LegRepository interface {
	CreateBatch(ctx context.Context, legs []entities.SubShipmentOrder) ([]entities.SubShipmentOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SubShipmentOrder, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.SubShipmentOrder, error)
	ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]entities.SubShipmentOrder, error)
	CountByShipmentID(ctx context.Context, shipmentID uuid.UUID) (int, error)
	Update(ctx context.Context, legModify entities.SubShipmentModify) (*entities.SubShipmentOrder, error)
}

// ShipmentManager часть сервиса отправлений, нужная роутеру внутри его транзакций.
type ShipmentManager interface {
	LockForUpdate(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error)
	ApplyDerivedStatus(ctx context.Context, id uuid.UUID, status entities.ShipmentStatusType) (*entities.ShipmentOrder, error)
	AppendLog(ctx context.Context, shipmentID uuid.UUID, legID *uuid.UUID, status entities.ShipmentStatusType, note string) error
	NotifyStatusChanged(ctx context.Context, shipment *entities.ShipmentOrder)
}

type Directory interface {
	GetWarehouse(ctx context.Context, id uuid.UUID) (*entities.Warehouse, error)
	GetShipper(ctx context.Context, id uuid.UUID) (*entities.Shipper, error)
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
