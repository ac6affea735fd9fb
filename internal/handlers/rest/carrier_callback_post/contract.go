//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carrier_callback_post_test
package carrier_callback_post

import (
	"context"

	"github.com/google/uuid"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OnCarrierCallback(ctx context.Context, shipmentID uuid.UUID, code string) error
}
