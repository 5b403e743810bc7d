package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
)

func (uc implUseCase) Calculate(ctx context.Context, sc model.Scope, input scoring.CalculateInput) (scoring.CalculateOutput, error) {
	if !input.Platform.IsValid() {
		return scoring.CalculateOutput{}, scoring.ErrInvalidPlatform
	}

	behavior := fillBehavior(input.Behavior)

	e, eFactors := engagementScore(behavior)
	c, cFactors := consistencyScore(behavior)
	t, tFactors := trendScore(behavior)
	m, mFactors := communityScore(behavior)

	overall := int(math.Round(
		scoring.WeightEngagement*float64(e) +
			scoring.WeightConsistency*float64(c) +
			scoring.WeightTrend*float64(t) +
			scoring.WeightCommunity*float64(m),
	))

	factors := make([]model.ScoreFactor, 0, len(eFactors)+len(cFactors)+len(tFactors)+len(mFactors))
	factors = append(factors, eFactors...)
	factors = append(factors, cFactors...)
	factors = append(factors, tFactors...)
	factors = append(factors, mFactors...)

	score := model.PlatformScore{
		ID:               uuid.New().String(),
		Platform:         input.Platform,
		OverallScore:     overall,
		EngagementScore:  e,
		ConsistencyScore: c,
		TrendScore:       t,
		CommunityScore:   m,
		CalculatedAt:     time.Now(),
		Factors:          factors,
	}

	if uc.producer != nil {
		if err := uc.producer.PublishScoreCalculated(ctx, sc.UserID, score); err != nil {
			// Persistence is best-effort; the response does not depend on it.
			uc.l.Warnf(ctx, "scoring.usecase.Calculate.PublishScoreCalculated: %v", err)
		}
	}

	return scoring.CalculateOutput{
		Score:           score,
		Rank:            scoring.GetRank(overall),
		Recommendations: buildRecommendations(score, behavior),
		History:         synthesizeHistory(score),
		Behavior:        behavior,
	}, nil
}
