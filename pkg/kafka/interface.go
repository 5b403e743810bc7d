package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for publishing messages.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// IConsumer defines the interface for a Kafka consumer group.
// Wraps sarama.ConsumerGroup for easier testing and management.
type IConsumer interface {
	// ConsumeWithContext starts consuming from topics. Blocks until the
	// context is cancelled or the session ends (e.g. on rebalance).
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	// Close closes the consumer group.
	Close() error
	// Errors returns a channel of errors from the consumer.
	Errors() <-chan error
}
