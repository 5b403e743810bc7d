package usecase

import (
	"context"
	"time"

	"engagement-srv/internal/model"
)

// dayLabels are indexed by time.Weekday (Sunday = 0).
var dayLabels = []string{"日", "月", "火", "水", "木", "金", "土"}

func (uc implUseCase) Schedule(ctx context.Context, sc model.Scope, start time.Time) ([]model.ScheduleEntry, error) {
	s, err := uc.Get(ctx, sc)
	if err != nil {
		return nil, err
	}
	if start.IsZero() {
		start = time.Now()
	}
	return buildSchedule(start, s), nil
}

func (uc implUseCase) Today(ctx context.Context, sc model.Scope) (model.ScheduleEntry, error) {
	s, err := uc.Get(ctx, sc)
	if err != nil {
		return model.ScheduleEntry{}, err
	}
	return buildSchedule(time.Now(), s)[0], nil
}

// buildSchedule lays out 7 consecutive days starting at from's date.
func buildSchedule(from time.Time, s model.EngagementStrategy) []model.ScheduleEntry {
	expression := map[int]bool{}
	for _, d := range s.WeeklyExpressionDays {
		expression[d] = true
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	entries := make([]model.ScheduleEntry, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		dow := int(date.Weekday())

		mode := model.ModeImpression
		if expression[dow] {
			mode = model.ModeExpression
		}

		entries = append(entries, model.ScheduleEntry{
			Date:            date,
			DayOfWeek:       dow,
			DayLabel:        dayLabels[dow],
			RecommendedMode: mode,
			IsExpressionDay: expression[dow],
		})
	}

	return entries
}
