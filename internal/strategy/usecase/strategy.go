package usecase

import (
	"context"
	"errors"

	"engagement-srv/internal/model"
	"engagement-srv/internal/strategy"
	"engagement-srv/internal/strategy/repository"
)

func (uc implUseCase) Get(ctx context.Context, sc model.Scope) (model.EngagementStrategy, error) {
	s, err := uc.cacheRepo.GetStrategy(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return strategy.DefaultStrategy(), nil
		}
		uc.l.Errorf(ctx, "strategy.usecase.Get.GetStrategy: %v", err)
		return model.EngagementStrategy{}, strategy.ErrStorageFailed
	}
	return s, nil
}

func (uc implUseCase) UpdateRatio(ctx context.Context, sc model.Scope, ratio float64) (model.EngagementStrategy, error) {
	s, err := uc.Get(ctx, sc)
	if err != nil {
		return model.EngagementStrategy{}, err
	}

	s.ImpressionRatio = clampRatio(ratio)
	s.ExpressionRatio = 1 - s.ImpressionRatio

	return uc.save(ctx, sc.UserID, s)
}

func (uc implUseCase) UpdateExpressionDays(ctx context.Context, sc model.Scope, days []int) (model.EngagementStrategy, error) {
	seen := map[int]bool{}
	normalized := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return model.EngagementStrategy{}, strategy.ErrInvalidDays
		}
		if !seen[d] {
			seen[d] = true
			normalized = append(normalized, d)
		}
	}

	s, err := uc.Get(ctx, sc)
	if err != nil {
		return model.EngagementStrategy{}, err
	}

	s.WeeklyExpressionDays = normalized
	return uc.save(ctx, sc.UserID, s)
}

func (uc implUseCase) UpdateCommentStrategy(ctx context.Context, sc model.Scope, input strategy.UpdateCommentStrategyInput) (model.EngagementStrategy, error) {
	if input.MaxCommentsPerDay != nil && *input.MaxCommentsPerDay < 0 {
		return model.EngagementStrategy{}, strategy.ErrInvalidComment
	}

	s, err := uc.Get(ctx, sc)
	if err != nil {
		return model.EngagementStrategy{}, err
	}

	if input.Enabled != nil {
		s.CommentStrategy.Enabled = *input.Enabled
	}
	if input.TargetTrendingPosts != nil {
		s.CommentStrategy.TargetTrendingPosts = *input.TargetTrendingPosts
	}
	if input.MaxCommentsPerDay != nil {
		s.CommentStrategy.MaxCommentsPerDay = *input.MaxCommentsPerDay
	}
	if input.AvoidNegative != nil {
		s.CommentStrategy.AvoidNegative = *input.AvoidNegative
	}

	return uc.save(ctx, sc.UserID, s)
}

func (uc implUseCase) save(ctx context.Context, userID string, s model.EngagementStrategy) (model.EngagementStrategy, error) {
	if err := uc.cacheRepo.SaveStrategy(ctx, userID, s); err != nil {
		uc.l.Errorf(ctx, "strategy.usecase.save.SaveStrategy: %v", err)
		return model.EngagementStrategy{}, strategy.ErrStorageFailed
	}
	return s, nil
}

func clampRatio(r float64) float64 {
	if r < strategy.MinImpressionRatio {
		return strategy.MinImpressionRatio
	}
	if r > strategy.MaxImpressionRatio {
		return strategy.MaxImpressionRatio
	}
	return r
}
