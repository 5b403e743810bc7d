package usecase

import (
	"engagement-srv/internal/classifier"
	"engagement-srv/pkg/log"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	l log.Logger
}

// New - Factory function
func New(l log.Logger) classifier.UseCase {
	return &implUseCase{l: l}
}
