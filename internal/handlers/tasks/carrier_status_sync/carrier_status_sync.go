package carrier_status_sync

import (
	"context"
	"time"

	"shipping/pkg/logger"
)

type Service interface {
	SyncStatuses(ctx context.Context) (int, error)
}

// CarrierStatusSync опрашивает перевозчика на случай потерянных вебхуков.
type CarrierStatusSync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCarrierStatusSync(log logger.Logger, service Service, interval time.Duration) *CarrierStatusSync {
	return &CarrierStatusSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CarrierStatusSync) TTL() time.Duration {
	return c.interval
}

func (c *CarrierStatusSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	synced, err := c.service.SyncStatuses(ctxWithTimeout)

	if synced > 0 {
		c.log.With(
			logger.NewField("shipments_synced", synced),
		).Info("carrier status sync")
	}

	return err
}

func (c *CarrierStatusSync) Info() string {
	return "carrier status sync"
}
