package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/strategy"
)

// =====================================================
// Request DTOs
// =====================================================

type updateRatioReq struct {
	ImpressionRatio float64 `json:"impression_ratio" binding:"min=0,max=1"`
}

type updateExpressionDaysReq struct {
	Days []int `json:"days" binding:"required,max=7,dive,min=0,max=6"`
}

type updateCommentStrategyReq struct {
	Enabled             *bool `json:"enabled,omitempty"`
	TargetTrendingPosts *bool `json:"target_trending_posts,omitempty"`
	MaxCommentsPerDay   *int  `json:"max_comments_per_day,omitempty" binding:"omitempty,min=0,max=100"`
	AvoidNegative       *bool `json:"avoid_negative,omitempty"`
}

func (r updateCommentStrategyReq) toInput() strategy.UpdateCommentStrategyInput {
	return strategy.UpdateCommentStrategyInput{
		Enabled:             r.Enabled,
		TargetTrendingPosts: r.TargetTrendingPosts,
		MaxCommentsPerDay:   r.MaxCommentsPerDay,
		AvoidNegative:       r.AvoidNegative,
	}
}

type scheduleReq struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
}

type healthReq struct {
	// Ratio overrides the stored impression ratio when given.
	Ratio *float64 `form:"ratio" binding:"omitempty,min=0,max=1"`
}

type importReq struct {
	Blob string `json:"blob" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type commentStrategyResp struct {
	Enabled             bool `json:"enabled"`
	TargetTrendingPosts bool `json:"target_trending_posts"`
	MaxCommentsPerDay   int  `json:"max_comments_per_day"`
	AvoidNegative       bool `json:"avoid_negative"`
}

type strategyResp struct {
	ImpressionRatio      float64             `json:"impression_ratio"`
	ExpressionRatio      float64             `json:"expression_ratio"`
	WeeklyExpressionDays []int               `json:"weekly_expression_days"`
	CommentStrategy      commentStrategyResp `json:"comment_strategy"`
}

type ratioHealthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type scheduleEntryResp struct {
	Date            time.Time `json:"date"`
	DayOfWeek       int       `json:"day_of_week"`
	DayLabel        string    `json:"day_label"`
	RecommendedMode string    `json:"recommended_mode"`
	IsExpressionDay bool      `json:"is_expression_day"`
}

type scheduleResp struct {
	Entries []scheduleEntryResp `json:"entries"`
}

type exportResp struct {
	Blob string `json:"blob"`
}

func newStrategyResp(s model.EngagementStrategy) strategyResp {
	return strategyResp{
		ImpressionRatio:      s.ImpressionRatio,
		ExpressionRatio:      s.ExpressionRatio,
		WeeklyExpressionDays: s.WeeklyExpressionDays,
		CommentStrategy: commentStrategyResp{
			Enabled:             s.CommentStrategy.Enabled,
			TargetTrendingPosts: s.CommentStrategy.TargetTrendingPosts,
			MaxCommentsPerDay:   s.CommentStrategy.MaxCommentsPerDay,
			AvoidNegative:       s.CommentStrategy.AvoidNegative,
		},
	}
}

func newScheduleEntryResp(e model.ScheduleEntry) scheduleEntryResp {
	return scheduleEntryResp{
		Date:            e.Date,
		DayOfWeek:       e.DayOfWeek,
		DayLabel:        e.DayLabel,
		RecommendedMode: string(e.RecommendedMode),
		IsExpressionDay: e.IsExpressionDay,
	}
}

func newScheduleResp(entries []model.ScheduleEntry) scheduleResp {
	list := make([]scheduleEntryResp, 0, len(entries))
	for _, e := range entries {
		list = append(list, newScheduleEntryResp(e))
	}
	return scheduleResp{Entries: list}
}
