package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
)

// NewSyncProducer поднимает синхронного продюсера с подтверждением от всех реплик.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig, err := newBaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("producer config: %w", err)
	}
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Idempotent = cfg.Producer.Idempotent
	saramaConfig.Producer.Retry.Max = cfg.Producer.RetryMax
	if cfg.Producer.Idempotent {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Producer.Topic),
	)

	if err := waitReady(ctx, kafkaLog, brokers, saramaConfig, nil); err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}
