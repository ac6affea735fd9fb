//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_route_post_test
package shipment_route_post

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
	PlanRoute(ctx context.Context, shipmentID uuid.UUID, plan entities.RoutePlan) ([]entities.SubShipmentOrder, error)
}
