package classifier

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify decides whether a post draft reads as audience-pleasing
	// (impression) or self-expression content.
	Classify(ctx context.Context, sc model.Scope, content string) (ClassifyOutput, error)
}
