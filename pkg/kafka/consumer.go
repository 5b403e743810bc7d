package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// ConsumerConfig holds configuration for a Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

// consumerImpl implements IConsumer.
type consumerImpl struct {
	group sarama.ConsumerGroup
}

// NewConsumer creates a new Kafka consumer group.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("group ID is required")
	}

	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &consumerImpl{group: group}, nil
}

func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.group.Consume(ctx, topics, handler)
}

func (c *consumerImpl) Close() error {
	return c.group.Close()
}

func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}
