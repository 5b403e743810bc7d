package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TrendCacheTTL keeps trend sets warm long enough to absorb dashboard
// refreshes without letting them go stale.
const TrendCacheTTL = 30 * time.Minute

func (r *implCacheRepository) GetTrends(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := r.redis.GetClient().Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveTrends(ctx context.Context, cacheKey string, data []byte) error {
	if err := r.redis.GetClient().Set(ctx, cacheKey, data, TrendCacheTTL).Err(); err != nil {
		r.l.Errorf(ctx, "trend.repository.redis.SaveTrends: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateTrends(ctx context.Context, platform string) error {
	pattern := "trends:*"
	if platform != "" {
		pattern = fmt.Sprintf("trends:%s:*", platform)
	}
	client := r.redis.GetClient()

	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			r.l.Errorf(ctx, "trend.repository.redis.InvalidateTrends: Failed to scan cache: %v", err)
			return err
		}
		if len(keys) > 0 {
			pipe := client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
				r.l.Errorf(ctx, "trend.repository.redis.InvalidateTrends: Failed to execute pipeline: %v", err)
				return err
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}
