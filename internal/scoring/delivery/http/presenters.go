package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
)

// =====================================================
// Request DTOs
// =====================================================

type calculateReq struct {
	Platform string       `json:"platform" binding:"required,oneof=twitter instagram tiktok"`
	Behavior *behaviorReq `json:"behavior,omitempty"`
}

type behaviorReq struct {
	LikesGiven      *int `json:"likes_given,omitempty" binding:"omitempty,min=0"`
	CommentsGiven   *int `json:"comments_given,omitempty" binding:"omitempty,min=0"`
	SharesGiven     *int `json:"shares_given,omitempty" binding:"omitempty,min=0"`
	RepliesReceived *int `json:"replies_received,omitempty" binding:"omitempty,min=0"`

	PostsThisWeek   *int  `json:"posts_this_week,omitempty" binding:"omitempty,min=0"`
	PostsLastWeek   *int  `json:"posts_last_week,omitempty" binding:"omitempty,min=0"`
	AvgPostsPerWeek *int  `json:"avg_posts_per_week,omitempty" binding:"omitempty,min=0"`
	PostTimes       []int `json:"post_times,omitempty" binding:"omitempty,dive,min=0,max=23"`

	TrendingHashtagsUsed  *int `json:"trending_hashtags_used,omitempty" binding:"omitempty,min=0"`
	TrendingTopicsEngaged *int `json:"trending_topics_engaged,omitempty" binding:"omitempty,min=0"`
	EarlyTrendEngagement  *int `json:"early_trend_engagement,omitempty" binding:"omitempty,min=0"`

	FollowersGained  *int `json:"followers_gained,omitempty" binding:"omitempty,min=0"`
	MentionsReceived *int `json:"mentions_received,omitempty" binding:"omitempty,min=0"`
	SavedByOthers    *int `json:"saved_by_others,omitempty" binding:"omitempty,min=0"`
	ProfileVisits    *int `json:"profile_visits,omitempty" binding:"omitempty,min=0"`
}

func (r calculateReq) toInput() scoring.CalculateInput {
	input := scoring.CalculateInput{
		Platform: model.Platform(r.Platform),
	}
	if r.Behavior != nil {
		input.Behavior = scoring.BehaviorInput{
			LikesGiven:      r.Behavior.LikesGiven,
			CommentsGiven:   r.Behavior.CommentsGiven,
			SharesGiven:     r.Behavior.SharesGiven,
			RepliesReceived: r.Behavior.RepliesReceived,

			PostsThisWeek:   r.Behavior.PostsThisWeek,
			PostsLastWeek:   r.Behavior.PostsLastWeek,
			AvgPostsPerWeek: r.Behavior.AvgPostsPerWeek,
			PostTimes:       r.Behavior.PostTimes,

			TrendingHashtagsUsed:  r.Behavior.TrendingHashtagsUsed,
			TrendingTopicsEngaged: r.Behavior.TrendingTopicsEngaged,
			EarlyTrendEngagement:  r.Behavior.EarlyTrendEngagement,

			FollowersGained:  r.Behavior.FollowersGained,
			MentionsReceived: r.Behavior.MentionsReceived,
			SavedByOthers:    r.Behavior.SavedByOthers,
			ProfileVisits:    r.Behavior.ProfileVisits,
		}
	}
	return input
}

type historyReq struct {
	Platform string `form:"platform" binding:"required,oneof=twitter instagram tiktok"`
	Days     int    `form:"days" binding:"omitempty,min=1,max=90"`
}

func (r historyReq) toInput() scoring.HistoryInput {
	return scoring.HistoryInput{
		Platform: model.Platform(r.Platform),
		Days:     r.Days,
	}
}

type rankReq struct {
	Score int `form:"score" binding:"min=0,max=100"`
}

// =====================================================
// Response DTOs
// =====================================================

type scoreFactorResp struct {
	Name        string  `json:"name"`
	Impact      string  `json:"impact"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

type platformScoreResp struct {
	ID               string            `json:"id"`
	Platform         string            `json:"platform"`
	OverallScore     int               `json:"overall_score"`
	EngagementScore  int               `json:"engagement_score"`
	ConsistencyScore int               `json:"consistency_score"`
	TrendScore       int               `json:"trend_score"`
	CommunityScore   int               `json:"community_score"`
	CalculatedAt     time.Time         `json:"calculated_at"`
	Factors          []scoreFactorResp `json:"factors"`
}

type rankResp struct {
	Rank  string `json:"rank"`
	Color string `json:"color"`
	Label string `json:"label"`
}

type recommendationResp struct {
	ID             string   `json:"id"`
	Priority       string   `json:"priority"`
	Category       string   `json:"category"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ExpectedImpact float64  `json:"expected_impact"`
	ActionItems    []string `json:"action_items"`
}

type historyEntryResp struct {
	Date             time.Time `json:"date"`
	OverallScore     int       `json:"overall_score"`
	EngagementScore  int       `json:"engagement_score"`
	ConsistencyScore int       `json:"consistency_score"`
	TrendScore       int       `json:"trend_score"`
	CommunityScore   int       `json:"community_score"`
}

type calculateResp struct {
	Score           platformScoreResp      `json:"score"`
	Rank            rankResp               `json:"rank"`
	Recommendations []recommendationResp   `json:"recommendations"`
	History         []historyEntryResp     `json:"history"`
	Behavior        model.UserBehaviorData `json:"behavior"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Total   int                `json:"total"`
}

func (h *handler) newCalculateResp(o scoring.CalculateOutput) calculateResp {
	factors := make([]scoreFactorResp, 0, len(o.Score.Factors))
	for _, f := range o.Score.Factors {
		factors = append(factors, scoreFactorResp{
			Name:        f.Name,
			Impact:      string(f.Impact),
			Weight:      f.Weight,
			Description: f.Description,
		})
	}

	recs := make([]recommendationResp, 0, len(o.Recommendations))
	for _, rec := range o.Recommendations {
		recs = append(recs, recommendationResp{
			ID:             rec.ID,
			Priority:       string(rec.Priority),
			Category:       string(rec.Category),
			Title:          rec.Title,
			Description:    rec.Description,
			ExpectedImpact: rec.ExpectedImpact,
			ActionItems:    rec.ActionItems,
		})
	}

	return calculateResp{
		Score: platformScoreResp{
			ID:               o.Score.ID,
			Platform:         string(o.Score.Platform),
			OverallScore:     o.Score.OverallScore,
			EngagementScore:  o.Score.EngagementScore,
			ConsistencyScore: o.Score.ConsistencyScore,
			TrendScore:       o.Score.TrendScore,
			CommunityScore:   o.Score.CommunityScore,
			CalculatedAt:     o.Score.CalculatedAt,
			Factors:          factors,
		},
		Rank: rankResp{
			Rank:  o.Rank.Rank,
			Color: o.Rank.Color,
			Label: o.Rank.Label,
		},
		Recommendations: recs,
		History:         newHistoryEntries(o.History),
		Behavior:        o.Behavior,
	}
}

func (h *handler) newHistoryResp(entries []model.ScoreHistoryEntry) historyResp {
	list := newHistoryEntries(entries)
	return historyResp{Entries: list, Total: len(list)}
}

func (h *handler) newRankResp(score int) rankResp {
	rank := scoring.GetRank(score)
	return rankResp{Rank: rank.Rank, Color: rank.Color, Label: rank.Label}
}

func newHistoryEntries(entries []model.ScoreHistoryEntry) []historyEntryResp {
	list := make([]historyEntryResp, 0, len(entries))
	for _, e := range entries {
		list = append(list, historyEntryResp{
			Date:             e.Date,
			OverallScore:     e.OverallScore,
			EngagementScore:  e.EngagementScore,
			ConsistencyScore: e.ConsistencyScore,
			TrendScore:       e.TrendScore,
			CommunityScore:   e.CommunityScore,
		})
	}
	return list
}
