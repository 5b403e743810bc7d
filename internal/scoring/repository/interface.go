package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	InsertHistory(ctx context.Context, opt InsertHistoryOptions) error
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.ScoreHistoryEntry, error)
}
