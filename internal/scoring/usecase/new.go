package usecase

import (
	"engagement-srv/internal/scoring"
	"engagement-srv/internal/scoring/repository"
	"engagement-srv/pkg/log"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	repo     repository.PostgresRepository
	producer scoring.EventProducer
	l        log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	producer scoring.EventProducer,
	l log.Logger,
) scoring.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}
