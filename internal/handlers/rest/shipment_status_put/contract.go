//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_put_test
package shipment_status_put

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
	UpdateStatus(ctx context.Context, id uuid.UUID, target entities.ShipmentStatusType) (*entities.ShipmentOrder, error)
}
