package strategy

import "engagement-srv/internal/model"

// Impression ratio bounds enforced by every setter.
const (
	MinImpressionRatio = 0.5
	MaxImpressionRatio = 1.0
)

// UpdateCommentStrategyInput carries a partial comment strategy update.
type UpdateCommentStrategyInput struct {
	Enabled             *bool
	TargetTrendingPosts *bool
	MaxCommentsPerDay   *int
	AvoidNegative       *bool
}

// DefaultStrategy is the strategy a user starts with: 90% audience-pleasing
// content with self-expression reserved for the weekend.
func DefaultStrategy() model.EngagementStrategy {
	return model.EngagementStrategy{
		ImpressionRatio:      0.9,
		ExpressionRatio:      0.1,
		WeeklyExpressionDays: []int{0, 6},
		CommentStrategy: model.CommentStrategy{
			Enabled:             true,
			TargetTrendingPosts: true,
			MaxCommentsPerDay:   5,
			AvoidNegative:       true,
		},
	}
}
