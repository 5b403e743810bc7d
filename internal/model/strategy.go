package model

import "time"

// Mode is the posting mode for a day or a post draft.
type Mode string

const (
	ModeImpression Mode = "impression" // audience-pleasing
	ModeExpression Mode = "expression" // self-expression
)

// CommentStrategy configures proactive commenting. Updated by partial merge.
type CommentStrategy struct {
	Enabled             bool `json:"enabled"`
	TargetTrendingPosts bool `json:"target_trending_posts"`
	MaxCommentsPerDay   int  `json:"max_comments_per_day"`
	AvoidNegative       bool `json:"avoid_negative"`
}

// EngagementStrategy is one user's 90/10 posting strategy.
// Invariants: ImpressionRatio + ExpressionRatio == 1; ImpressionRatio is
// clamped to [0.5, 1] by every setter.
type EngagementStrategy struct {
	ImpressionRatio      float64         `json:"impression_ratio"`
	ExpressionRatio      float64         `json:"expression_ratio"`
	WeeklyExpressionDays []int           `json:"weekly_expression_days"` // 0=Sunday .. 6=Saturday
	CommentStrategy      CommentStrategy `json:"comment_strategy"`
}

// RatioHealthStatus classifies an impression ratio.
type RatioHealthStatus string

const (
	RatioHealthy    RatioHealthStatus = "healthy"
	RatioWarning    RatioHealthStatus = "warning"
	RatioCritical   RatioHealthStatus = "critical"
	RatioAcceptable RatioHealthStatus = "acceptable"
)

// RatioHealth is the evaluation of an impression ratio.
type RatioHealth struct {
	Status  RatioHealthStatus `json:"status"`
	Message string            `json:"message"`
}

// ScheduleEntry is one day of the 7-day posting calendar.
type ScheduleEntry struct {
	Date            time.Time `json:"date"`
	DayOfWeek       int       `json:"day_of_week"` // 0=Sunday .. 6=Saturday
	DayLabel        string    `json:"day_label"`
	RecommendedMode Mode      `json:"recommended_mode"`
	IsExpressionDay bool      `json:"is_expression_day"`
}
