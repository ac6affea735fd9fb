//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carrier_test
package carrier

import (
	"context"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

// ShipmentManager методы сервиса отправлений, которые выполняются внутри транзакции перевозчика.
type ShipmentManager interface {
	LockForUpdate(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error)
	IsRelayed(ctx context.Context, id uuid.UUID) (bool, error)
	ApplyStatus(ctx context.Context, current *entities.ShipmentOrder, target entities.ShipmentStatusType, note string) (*entities.ShipmentOrder, error)
	StoreRegistration(ctx context.Context, registration entities.CarrierRegistration) (*entities.ShipmentOrder, error)
	SetCarrierStatusCode(ctx context.Context, id uuid.UUID, code string) error
	NotifyStatusChanged(ctx context.Context, shipment *entities.ShipmentOrder)
	ListTrackable(ctx context.Context, limit uint64) ([]entities.ShipmentOrder, error)
}

type Router interface {
	ListLegs(ctx context.Context, shipmentID uuid.UUID) ([]entities.SubShipmentOrder, error)
	CurrentLeg(ctx context.Context, shipmentID uuid.UUID) (*entities.SubShipmentOrder, error)
	PreviousLeg(ctx context.Context, leg *entities.SubShipmentOrder) (*entities.SubShipmentOrder, error)
	ApplyLegStatus(
		ctx context.Context,
		leg *entities.SubShipmentOrder,
		target entities.ShipmentStatusType,
	) (*entities.ShipmentOrder, *entities.SubShipmentOrder, error)
}

type OrderReader interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
}

type Directory interface {
	GetWarehouse(ctx context.Context, id uuid.UUID) (*entities.Warehouse, error)
}

// Gateway исходящий клиент перевозчика.
type Gateway interface {
	Register(ctx context.Context, req entities.CarrierPickupRequest) (*entities.CarrierRegistration, error)
	FetchStatus(ctx context.Context, trackingCode string) (string, error)
}

type StatusMapper interface {
	Map(code string) (entities.ShipmentStatusType, error)
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
