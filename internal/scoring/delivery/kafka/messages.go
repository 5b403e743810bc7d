package kafka

import (
	"time"
)

// ============================================
// Kafka Topics
// ============================================

const (
	// TopicScoreCalculated carries completed score calculations.
	TopicScoreCalculated = "engagement.scores"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupScoreHistory = "engagement-score-history"
)

// ScoreCalculatedMessage - Kafka message cho engagement.scores
type ScoreCalculatedMessage struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Platform         string    `json:"platform"`
	OverallScore     int       `json:"overall_score"`
	EngagementScore  int       `json:"engagement_score"`
	ConsistencyScore int       `json:"consistency_score"`
	TrendScore       int       `json:"trend_score"`
	CommunityScore   int       `json:"community_score"`
	CalculatedAt     time.Time `json:"calculated_at"`
}
