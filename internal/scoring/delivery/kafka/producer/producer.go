package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"engagement-srv/internal/model"
	kafkaDelivery "engagement-srv/internal/scoring/delivery/kafka"
)

// PublishScoreCalculated publishes one completed calculation. The message is
// keyed by user so per-user history stays ordered.
func (p *implProducer) PublishScoreCalculated(ctx context.Context, userID string, score model.PlatformScore) error {
	msg := kafkaDelivery.ScoreCalculatedMessage{
		ID:               score.ID,
		UserID:           userID,
		Platform:         string(score.Platform),
		OverallScore:     score.OverallScore,
		EngagementScore:  score.EngagementScore,
		ConsistencyScore: score.ConsistencyScore,
		TrendScore:       score.TrendScore,
		CommunityScore:   score.CommunityScore,
		CalculatedAt:     score.CalculatedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal score calculated: %w", err)
	}

	key := []byte(userID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish score calculated: %w", err)
	}

	p.l.Debugf(ctx, "Published score %s for user %s on %s", score.ID, userID, score.Platform)
	return nil
}
