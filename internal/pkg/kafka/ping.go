package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/IBM/sarama"
	"shipping/pkg/logger"
	retrierconfig "shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

const (
	readyInitialInterval = time.Second
	readyMaxInterval     = 30 * time.Second
	readyMaxElapsedTime  = 2 * time.Minute
	readyRandomization   = 0.5
	readyMultiplier      = 2
)

var errTopicMissing = errors.New("kafka topic not found")

// waitReady ждёт брокеров и, если передан topics, проверяет что топики уже заведены.
func waitReady(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topics []string) error {
	probe := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: readyInitialInterval,
		MaxInterval:     readyMaxInterval,
		MaxElapsedTime:  readyMaxElapsedTime,
		Randomization:   readyRandomization,
		Multiplier:      readyMultiplier,
		OnRetry: func(err error, next time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("next_attempt_in", next),
			).Warn("Kafka not ready, retrying")
		},
	})

	var attempts int
	err := probe.ExecuteWithContext(ctx, func(context.Context) error {
		attempts++
		return checkBrokers(log, brokers, cfg, topics)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempts),
		).Error("Kafka is unreachable")
		return fmt.Errorf("wait for kafka: %w", err)
	}

	log.With(logger.NewField("attempts", attempts)).Info("Kafka is ready")
	return nil
}

func checkBrokers(log logger.Logger, brokers []string, cfg *sarama.Config, topics []string) error {
	client, err := sarama.NewClient(brokers, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Warn("close probe client", logger.NewField("error", closeErr))
		}
	}()

	existing, err := client.Topics()
	if err != nil {
		return err
	}
	for _, topic := range topics {
		if !slices.Contains(existing, topic) {
			return fmt.Errorf("%w: %s", errTopicMissing, topic)
		}
	}
	return nil
}
