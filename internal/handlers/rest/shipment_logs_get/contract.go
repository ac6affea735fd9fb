//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_logs_get_test
package shipment_logs_get

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
	ListLogs(ctx context.Context, id uuid.UUID) ([]entities.ShipmentLog, error)
}
