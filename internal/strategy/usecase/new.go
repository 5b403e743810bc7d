package usecase

import (
	"engagement-srv/internal/strategy"
	"engagement-srv/internal/strategy/repository"
	"engagement-srv/pkg/encrypter"
	"engagement-srv/pkg/log"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	cacheRepo repository.CacheRepository
	enc       encrypter.Encrypter
	l         log.Logger
}

// New - Factory function
func New(
	cacheRepo repository.CacheRepository,
	enc encrypter.Encrypter,
	l log.Logger,
) strategy.UseCase {
	return &implUseCase{
		cacheRepo: cacheRepo,
		enc:       enc,
		l:         l,
	}
}
