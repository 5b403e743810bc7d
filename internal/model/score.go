package model

import "time"

// FactorImpact marks how a score factor influenced a sub-score.
type FactorImpact string

const (
	ImpactPositive FactorImpact = "positive"
	ImpactNeutral  FactorImpact = "neutral"
	ImpactNegative FactorImpact = "negative"
)

// ScoreFactor explains one input's contribution to a sub-score.
// Produced once per calculation, never mutated.
type ScoreFactor struct {
	Name        string       `json:"name"`
	Impact      FactorImpact `json:"impact"`
	Weight      float64      `json:"weight"` // 0-1
	Description string       `json:"description"`
}

// PlatformScore is one completed favorability calculation.
// Invariant: OverallScore == round(0.35e + 0.25c + 0.20t + 0.20m) over the
// four sub-scores, each in [0,100].
type PlatformScore struct {
	ID               string        `json:"id"`
	Platform         Platform      `json:"platform"`
	OverallScore     int           `json:"overall_score"`
	EngagementScore  int           `json:"engagement_score"`
	ConsistencyScore int           `json:"consistency_score"`
	TrendScore       int           `json:"trend_score"`
	CommunityScore   int           `json:"community_score"`
	CalculatedAt     time.Time     `json:"calculated_at"`
	Factors          []ScoreFactor `json:"factors"`
}

// RecommendationPriority orders recommendations.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// ScoreCategory names the sub-score a recommendation targets.
type ScoreCategory string

const (
	CategoryEngagement  ScoreCategory = "engagement"
	CategoryConsistency ScoreCategory = "consistency"
	CategoryTrend       ScoreCategory = "trend"
	CategoryCommunity   ScoreCategory = "community"
)

// ScoreRecommendation is a prioritized improvement suggestion derived from a
// calculation. ExpectedImpact is in (0,10].
type ScoreRecommendation struct {
	ID             string                 `json:"id"`
	Priority       RecommendationPriority `json:"priority"`
	Category       ScoreCategory          `json:"category"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	ExpectedImpact float64                `json:"expected_impact"`
	ActionItems    []string               `json:"action_items"`
}

// ScoreHistoryEntry is one day of score history, either stored from a real
// calculation or synthesized for display.
type ScoreHistoryEntry struct {
	Date             time.Time `json:"date"`
	OverallScore     int       `json:"overall_score"`
	EngagementScore  int       `json:"engagement_score"`
	ConsistencyScore int       `json:"consistency_score"`
	TrendScore       int       `json:"trend_score"`
	CommunityScore   int       `json:"community_score"`
}

// ScoreRank is the letter grade for an overall score.
type ScoreRank struct {
	Rank  string `json:"rank"`
	Color string `json:"color"`
	Label string `json:"label"`
}
