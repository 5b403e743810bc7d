package consumer

import (
	"fmt"

	"engagement-srv/config"
	"engagement-srv/internal/scoring/repository"
	pkgKafka "engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
)

// Config holds the configuration for the scoring consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	Repo        repository.PostgresRepository
}

// Consumer manages Kafka consumer groups for the scoring domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	repo        repository.PostgresRepository

	scoreHistoryGroup pkgKafka.IConsumer
}

// New creates a new scoring consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		repo:        cfg.Repo,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.scoreHistoryGroup != nil {
		if err := c.scoreHistoryGroup.Close(); err != nil {
			return fmt.Errorf("failed to close score history group: %w", err)
		}
	}

	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
