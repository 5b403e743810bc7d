package trend

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Detect returns the trend set for one (platform, category, limit) key,
	// serving from cache when a fresh entry exists.
	Detect(ctx context.Context, sc model.Scope, input DetectInput) (DetectOutput, error)

	// CommentStrategies derives commenting suggestions from the detected
	// trends for the same key.
	CommentStrategies(ctx context.Context, sc model.Scope, input DetectInput) ([]model.CommentRecommendation, error)

	// InvalidateCache drops cached trend sets, for one platform or all of
	// them when platform is empty.
	InvalidateCache(ctx context.Context, platform model.Platform) error
}
