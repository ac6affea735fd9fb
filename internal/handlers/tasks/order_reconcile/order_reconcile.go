package order_reconcile

import (
	"context"
	"time"

	"shipping/pkg/logger"
)

type Service interface {
	ReconcileDelivered(ctx context.Context) (int, error)
}

// OrderReconcile догоняет заказы, которые не перевелись в DELIVERED вслед за отправлением.
type OrderReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderReconcile(log logger.Logger, service Service, interval time.Duration) *OrderReconcile {
	return &OrderReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderReconcile) TTL() time.Duration {
	return o.interval
}

func (o *OrderReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	fixed, err := o.service.ReconcileDelivered(ctxWithTimeout)

	if fixed > 0 {
		o.log.With(
			logger.NewField("orders_fixed", fixed),
		).Info("order reconcile")
	}

	return err
}

func (o *OrderReconcile) Info() string {
	return "order reconcile"
}
