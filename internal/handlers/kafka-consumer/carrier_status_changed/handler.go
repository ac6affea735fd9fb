package carrier_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/dto"
	"shipping/internal/service/route"
	"shipping/internal/service/shipment"
	"shipping/pkg/logger"
	"shipping/pkg/statemachine"
)

type Handler struct {
	carrierService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, carrierService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		carrierService:           carrierService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("carrier.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("carrier.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// true означает, что сообщение не закоммичено и его нужно перечитать в новой сессии.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.CarrierCallback
	err := json.Unmarshal(message.Value, &event)
	if err == nil {
		err = dto.Validate(event)
	}
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("carrier.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.PartnerID),
		logger.NewField("label", event.LabelID),
		logger.NewField("carrier_status", event.StatusID.String()),
		logger.NewField("offset", message.Offset),
	)

	err = h.carrierService.OnCarrierCallback(ctx, event.PartnerID, event.StatusID.String())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("carrier.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipment.ErrShipmentNotFound), errors.Is(err, route.ErrLegNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("carrier.status.changed handler unknown shipment")

		case errors.Is(err, statemachine.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("carrier.status.changed handler transition rejected")

		default:
			// без коммита: сообщение перечитается после перезапуска сессии
			msgLog.With(
				logger.NewField("error", err),
			).Error("carrier.status.changed handler failed to apply status, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("carrier.status.changed: processed")
	sess.MarkMessage(message, "")
	return false
}
