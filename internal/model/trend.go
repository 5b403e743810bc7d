package model

import "time"

// TrendSentiment is the dominant sentiment around a trending topic.
type TrendSentiment string

const (
	SentimentPositive TrendSentiment = "positive"
	SentimentNegative TrendSentiment = "negative"
	SentimentMixed    TrendSentiment = "mixed"
	SentimentNeutral  TrendSentiment = "neutral"
)

// TrendingTopic is one trending topic on a platform, generated by the LLM or
// drawn from the static tables. Read-only after creation.
type TrendingTopic struct {
	ID                  string         `json:"id"`
	Platform            Platform       `json:"platform"`
	Name                string         `json:"name"`
	Category            TrendCategory  `json:"category"`
	Description         string         `json:"description"`
	Sentiment           TrendSentiment `json:"sentiment"`
	RecommendationScore float64        `json:"recommendation_score"` // 0-100
	RelatedHashtags     []string       `json:"related_hashtags"`
	EstimatedReach      int            `json:"estimated_reach"`
}

// HashtagAnalysis is presentation-layer filler derived from a trend set.
// Popularity, competition, and reach are pseudo-random and not reproducible.
type HashtagAnalysis struct {
	Hashtag        string `json:"hashtag"`
	Popularity     int    `json:"popularity"`  // 0-100
	Competition    string `json:"competition"` // low | medium | high
	EstimatedReach int    `json:"estimated_reach"`
}

// BuzzPattern describes a content pattern known to buzz on a platform.
// Static lookup data, no computation.
type BuzzPattern struct {
	Platform      Platform `json:"platform"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Examples      []string `json:"examples"`
	Effectiveness int      `json:"effectiveness"` // 0-100
}

// OptimalPostTiming is a static per-platform posting window.
type OptimalPostTiming struct {
	Platform Platform `json:"platform"`
	DayLabel string   `json:"day_label"`
	Hours    []int    `json:"hours"`
	Reason   string   `json:"reason"`
}

// TrendDetectionResponse groups everything the trend endpoint returns for one
// (platform, category, limit) key. Cached as a unit for 30 minutes.
type TrendDetectionResponse struct {
	Platform       Platform            `json:"platform"`
	Category       TrendCategory       `json:"category,omitempty"`
	Topics         []TrendingTopic     `json:"topics"`
	Hashtags       []HashtagAnalysis   `json:"hashtags,omitempty"`
	BuzzPatterns   []BuzzPattern       `json:"buzz_patterns,omitempty"`
	OptimalTimings []OptimalPostTiming `json:"optimal_timings,omitempty"`
	Source         string              `json:"source"`   // claude | mock
	Degraded       bool                `json:"degraded"` // true when the LLM path fell back to mock data
	DetectedAt     time.Time           `json:"detected_at"`
}

// CommentApproach maps a trend sentiment to a commenting stance.
type CommentApproach string

const (
	ApproachAgree           CommentApproach = "agree"
	ApproachAddValue        CommentApproach = "add_value"
	ApproachQuestion        CommentApproach = "question"
	ApproachShareExperience CommentApproach = "share_experience"
)

// CommentRecommendation suggests how to comment on one trending topic.
type CommentRecommendation struct {
	TopicID           string          `json:"topic_id"`
	TopicName         string          `json:"topic_name"`
	SuggestedApproach CommentApproach `json:"suggested_approach"`
	RiskLevel         string          `json:"risk_level"` // low | medium | high
	TemplateComments  []string        `json:"template_comments"`
}
