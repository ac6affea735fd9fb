//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatusType) (*entities.Order, error)
	ListReadyForShipment(ctx context.Context) ([]entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type StatisticsRefresher interface {
	Refresh(ctx context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
