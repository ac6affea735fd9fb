//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_shipper_put_test
package shipment_shipper_put

import (
	"context"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignShipper(ctx context.Context, id, shipperID uuid.UUID) (*entities.ShipmentOrder, error)
}
