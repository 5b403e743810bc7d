package consumer

import (
	"context"

	kafkaDelivery "engagement-srv/internal/scoring/delivery/kafka"
)

// ConsumeScoreCalculated starts consuming score calculated messages and
// persisting them as score history.
func (c *Consumer) ConsumeScoreCalculated(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupScoreHistory)
	if err != nil {
		return err
	}
	c.scoreHistoryGroup = group

	handler := &scoreCalculatedHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicScoreCalculated}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicScoreCalculated)

	return nil
}
