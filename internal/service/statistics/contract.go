//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statistics_test
package statistics

import (
	"context"

	"shipping/internal/entities"
)

type ShipmentRepository interface {
	ListStatuses(ctx context.Context) ([]entities.ShipmentStatusType, error)
}

type OrderRepository interface {
	ListStatuses(ctx context.Context) ([]entities.OrderStatusType, error)
}
