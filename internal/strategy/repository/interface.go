package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetStrategy(ctx context.Context, userID string) (model.EngagementStrategy, error)
	SaveStrategy(ctx context.Context, userID string, s model.EngagementStrategy) error
}
