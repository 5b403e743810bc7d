package redis

import (
	"engagement-srv/internal/strategy/repository"
	"engagement-srv/pkg/log"
	pkgRedis "engagement-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
