package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"engagement-srv/internal/model"
	kafkaDelivery "engagement-srv/internal/scoring/delivery/kafka"
	"engagement-srv/internal/scoring/repository"
)

// handleScoreCalculatedMessage persists one score calculated message as a
// history row. Duplicate deliveries are absorbed by the insert's conflict
// clause.
func (c *Consumer) handleScoreCalculatedMessage(msg *sarama.ConsumerMessage) error {
	var m kafkaDelivery.ScoreCalculatedMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return fmt.Errorf("unmarshal score calculated message: %w", err)
	}

	if m.ID == "" || m.UserID == "" {
		return fmt.Errorf("score calculated message missing id or user_id")
	}
	if !model.Platform(m.Platform).IsValid() {
		return fmt.Errorf("score calculated message has invalid platform %q", m.Platform)
	}

	ctx := context.Background()
	return c.repo.InsertHistory(ctx, repository.InsertHistoryOptions{
		ID:               m.ID,
		UserID:           m.UserID,
		Platform:         model.Platform(m.Platform),
		OverallScore:     m.OverallScore,
		EngagementScore:  m.EngagementScore,
		ConsistencyScore: m.ConsistencyScore,
		TrendScore:       m.TrendScore,
		CommunityScore:   m.CommunityScore,
		CalculatedAt:     m.CalculatedAt,
	})
}
