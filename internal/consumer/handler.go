package consumer

import (
	"context"
	"fmt"

	scoringConsumer "engagement-srv/internal/scoring/delivery/kafka/consumer"
	scoringPostgre "engagement-srv/internal/scoring/repository/postgre"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	scoringConsumer *scoringConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Initialize scoring domain
	postgreRepo := scoringPostgre.New(srv.postgresDB, srv.l)
	scoringCons, err := scoringConsumer.New(scoringConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		Repo:        postgreRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring consumer: %w", err)
	}

	srv.l.Infof(ctx, "Scoring domain initialized")

	return &domainConsumers{
		scoringConsumer: scoringCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	// Start scoring consumer
	if err := consumers.scoringConsumer.ConsumeScoreCalculated(ctx); err != nil {
		return fmt.Errorf("failed to start scoring consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	// Close scoring consumer
	if consumers.scoringConsumer != nil {
		if err := consumers.scoringConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing scoring consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
