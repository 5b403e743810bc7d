package repository

import "context"

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetTrends(ctx context.Context, cacheKey string) ([]byte, error)
	SaveTrends(ctx context.Context, cacheKey string, data []byte) error

	// InvalidateTrends deletes cached trend sets matching the platform, or
	// every trend key when platform is empty.
	InvalidateTrends(ctx context.Context, platform string) error
}
