package scoring

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Calculate scores one behavior snapshot for a platform and returns the
	// score together with its rank, recommendations, and a synthesized
	// 7-day history for display.
	Calculate(ctx context.Context, sc model.Scope, input CalculateInput) (CalculateOutput, error)

	// History returns stored score history, newest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) ([]model.ScoreHistoryEntry, error)
}

// EventProducer publishes completed calculations for asynchronous persistence.
type EventProducer interface {
	PublishScoreCalculated(ctx context.Context, userID string, score model.PlatformScore) error
}
