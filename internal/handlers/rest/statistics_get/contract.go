//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statistics_get_test
package statistics_get

import (
	"context"

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
	ShipmentStatistics(ctx context.Context) (*entities.ShipmentStatistics, error)
	OrderStatistics(ctx context.Context) (*entities.OrderStatistics, error)
}
