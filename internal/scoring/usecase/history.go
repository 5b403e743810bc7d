package usecase

import (
	"context"
	"math"
	"math/rand"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
	"engagement-srv/internal/scoring/repository"
)

func (uc implUseCase) History(ctx context.Context, sc model.Scope, input scoring.HistoryInput) ([]model.ScoreHistoryEntry, error) {
	if !input.Platform.IsValid() {
		return nil, scoring.ErrInvalidPlatform
	}
	if input.Days <= 0 || input.Days > 90 {
		return nil, scoring.ErrInvalidDays
	}

	entries, err := uc.repo.ListHistory(ctx, repository.ListHistoryOptions{
		UserID:   sc.UserID,
		Platform: input.Platform,
		Since:    time.Now().AddDate(0, 0, -input.Days),
	})
	if err != nil {
		uc.l.Errorf(ctx, "scoring.usecase.History.ListHistory: %v", err)
		return nil, scoring.ErrHistoryFailed
	}

	return entries, nil
}

// synthesizeHistory fabricates a 7-day trajectory ending at the current score.
// Older entries decay by 15 points per week plus a small jitter, floored at 0,
// so the chart shows a plausible climb towards today. Synthesized entries are
// display-only and never persisted.
func synthesizeHistory(score model.PlatformScore) []model.ScoreHistoryEntry {
	now := time.Now()
	entries := make([]model.ScoreHistoryEntry, 0, 7)

	for daysAgo := 6; daysAgo >= 0; daysAgo-- {
		offset := float64(daysAgo) / 7 * 15
		jitter := 0
		if daysAgo > 0 {
			jitter = rand.Intn(7) - 3
		}

		e := decayed(score.EngagementScore, offset, jitter)
		c := decayed(score.ConsistencyScore, offset, jitter)
		t := decayed(score.TrendScore, offset, jitter)
		m := decayed(score.CommunityScore, offset, jitter)

		overall := int(math.Round(
			scoring.WeightEngagement*float64(e) +
				scoring.WeightConsistency*float64(c) +
				scoring.WeightTrend*float64(t) +
				scoring.WeightCommunity*float64(m),
		))

		entries = append(entries, model.ScoreHistoryEntry{
			Date:             now.AddDate(0, 0, -daysAgo),
			OverallScore:     overall,
			EngagementScore:  e,
			ConsistencyScore: c,
			TrendScore:       t,
			CommunityScore:   m,
		})
	}

	return entries
}

func decayed(score int, offset float64, jitter int) int {
	v := int(math.Round(float64(score) - offset + float64(jitter)))
	if v < 0 {
		return 0
	}
	return v
}
