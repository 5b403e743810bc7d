package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"engagement-srv/internal/model"
	"engagement-srv/internal/strategy/repository"
	pkgRedis "engagement-srv/pkg/redis"
)

func strategyKey(userID string) string {
	return fmt.Sprintf("strategy:%s", userID)
}

// GetStrategy loads the stored strategy. Strategies never expire; absence
// means the user has not customized anything yet.
func (r *implCacheRepository) GetStrategy(ctx context.Context, userID string) (model.EngagementStrategy, error) {
	data, err := r.redis.GetClient().Get(ctx, strategyKey(userID)).Result()
	if err != nil {
		if pkgRedis.IsNil(err) {
			return model.EngagementStrategy{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "strategy.repository.redis.GetStrategy: Failed to load strategy: %v", err)
		return model.EngagementStrategy{}, err
	}

	var s model.EngagementStrategy
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		r.l.Errorf(ctx, "strategy.repository.redis.GetStrategy: Failed to unmarshal strategy: %v", err)
		return model.EngagementStrategy{}, err
	}
	return s, nil
}

func (r *implCacheRepository) SaveStrategy(ctx context.Context, userID string, s model.EngagementStrategy) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, strategyKey(userID), data, 0).Err(); err != nil {
		r.l.Errorf(ctx, "strategy.repository.redis.SaveStrategy: Failed to save strategy: %v", err)
		return repository.ErrFailedToSave
	}
	return nil
}
