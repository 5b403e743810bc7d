package usecase

import (
	"engagement-srv/internal/trend"
	"engagement-srv/internal/trend/repository"
	"engagement-srv/pkg/claude"
	"engagement-srv/pkg/log"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	claude    claude.IClaude
	cacheRepo repository.CacheRepository
	l         log.Logger
}

// New - Factory function. A nil claude client disables the LLM path and
// serves the static tables only.
func New(
	claudeClient claude.IClaude,
	cacheRepo repository.CacheRepository,
	l log.Logger,
) trend.UseCase {
	return &implUseCase{
		claude:    claudeClient,
		cacheRepo: cacheRepo,
		l:         l,
	}
}
