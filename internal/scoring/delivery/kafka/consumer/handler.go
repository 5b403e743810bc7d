package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type scoreCalculatedHandler struct {
	consumer *Consumer
}

func (h *scoreCalculatedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scoreCalculatedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scoreCalculatedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleScoreCalculatedMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "scoring.delivery.kafka.consumer.ConsumeScoreCalculated: Failed to process score message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
