package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
)

// Consumer - группа потребителей sarama над одним обработчиком.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func newBaseConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	return saramaConfig, nil
}

// newConsumerConfig читает с самого старого смещения: пропуск статусов перевозчика хуже повторной обработки.
func newConsumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := newBaseConfig(cfg)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	saramaConfig.Consumer.Return.Errors = false
	return saramaConfig, nil
}

func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	brokers []string,
	groupID string,
	topics []string,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	saramaConfig, err := newConsumerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("consumer config: %w", err)
	}

	consumerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	if err := waitReady(ctx, consumerLog, brokers, saramaConfig, topics); err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group %s: %w", groupID, err)
	}

	return &Consumer{
		log:     consumerLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx или закрытия группы. Consume возвращается на каждой
// ребалансировке, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	for {
		err := c.group.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			c.log.Warn("Consumer group closed")
			return nil
		case err != nil:
			c.log.Error("Consume failed", logger.NewField("error", err))
			return fmt.Errorf("consume %v: %w", c.topics, err)
		case ctx.Err() != nil:
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}
