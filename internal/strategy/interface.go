package strategy

import (
	"context"
	"time"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the user's strategy, falling back to the default when none
	// has been stored yet.
	Get(ctx context.Context, sc model.Scope) (model.EngagementStrategy, error)

	// UpdateRatio sets the impression ratio. The ratio is clamped to
	// [0.5, 1.0] and the expression ratio is derived as its complement.
	UpdateRatio(ctx context.Context, sc model.Scope, ratio float64) (model.EngagementStrategy, error)

	// UpdateExpressionDays replaces the weekly expression days.
	UpdateExpressionDays(ctx context.Context, sc model.Scope, days []int) (model.EngagementStrategy, error)

	// UpdateCommentStrategy merges the supplied fields into the comment
	// strategy. Nil fields keep their current value.
	UpdateCommentStrategy(ctx context.Context, sc model.Scope, input UpdateCommentStrategyInput) (model.EngagementStrategy, error)

	// Health evaluates the user's current impression ratio, or the given
	// ratio when non-nil.
	Health(ctx context.Context, sc model.Scope, ratio *float64) (model.RatioHealth, error)

	// Schedule builds the 7-day posting calendar. A zero start means today.
	Schedule(ctx context.Context, sc model.Scope, start time.Time) ([]model.ScheduleEntry, error)

	// Today returns today's schedule entry.
	Today(ctx context.Context, sc model.Scope) (model.ScheduleEntry, error)

	// Export serializes the strategy into an encrypted portable blob.
	Export(ctx context.Context, sc model.Scope) (string, error)

	// Import restores a strategy from an exported blob.
	Import(ctx context.Context, sc model.Scope, blob string) (model.EngagementStrategy, error)
}
