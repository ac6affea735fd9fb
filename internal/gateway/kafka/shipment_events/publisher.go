package shipment_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/entities"
)

type statusChangedEvent struct {
	ShipmentID   string    `json:"shipment_id"`
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	TrackingCode string    `json:"tracking_code,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher struct {
	producer syncProducer
	topic    string
}

func New(producer syncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged пишет событие с ключом shipment_id, чтобы события одной отправки шли в одну партицию.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.ShipmentStatusChanged) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish shipment %s: %w", event.ShipmentID, err)
	}

	payload, err := json.Marshal(statusChangedEvent{
		ShipmentID:   event.ShipmentID.String(),
		OrderID:      event.OrderID.String(),
		Status:       event.Status.String(),
		TrackingCode: event.TrackingCode,
		OccurredAt:   event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal shipment event: %w", err)
	}

	start := time.Now()
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ShipmentID.String()),
		Value: sarama.ByteEncoder(payload),
	})
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	PublishDuration.WithLabelValues(p.topic, outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("publish shipment %s: %w", event.ShipmentID, err)
	}
	return nil
}
