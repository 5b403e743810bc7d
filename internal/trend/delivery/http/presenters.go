package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/trend"
)

// =====================================================
// Request DTOs
// =====================================================

type detectReq struct {
	Platform            string `form:"platform" binding:"required,oneof=twitter instagram tiktok"`
	Category            string `form:"category" binding:"omitempty,oneof=tech entertainment lifestyle business sports fashion food travel"`
	Limit               int    `form:"limit" binding:"omitempty,min=1,max=50"`
	IncludeHashtags     *bool  `form:"include_hashtags"`
	IncludeBuzzPatterns *bool  `form:"include_buzz_patterns"`
	Action              string `form:"action" binding:"omitempty,oneof=comment-strategies"`
}

func (r detectReq) toInput() trend.DetectInput {
	return trend.DetectInput{
		Platform:            model.Platform(r.Platform),
		Category:            model.TrendCategory(r.Category),
		Limit:               r.Limit,
		IncludeHashtags:     r.IncludeHashtags,
		IncludeBuzzPatterns: r.IncludeBuzzPatterns,
	}
}

type invalidateReq struct {
	Platform string `form:"platform" binding:"omitempty,oneof=twitter instagram tiktok"`
}

func (r invalidateReq) toPlatform() model.Platform {
	return model.Platform(r.Platform)
}

// =====================================================
// Response DTOs
// =====================================================

type topicResp struct {
	ID                  string   `json:"id"`
	Platform            string   `json:"platform"`
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	Sentiment           string   `json:"sentiment"`
	RecommendationScore float64  `json:"recommendation_score"`
	RelatedHashtags     []string `json:"related_hashtags"`
	EstimatedReach      int      `json:"estimated_reach"`
}

type hashtagResp struct {
	Hashtag        string `json:"hashtag"`
	Popularity     int    `json:"popularity"`
	Competition    string `json:"competition"`
	EstimatedReach int    `json:"estimated_reach"`
}

type buzzPatternResp struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Examples      []string `json:"examples"`
	Effectiveness int      `json:"effectiveness"`
}

type timingResp struct {
	DayLabel string `json:"day_label"`
	Hours    []int  `json:"hours"`
	Reason   string `json:"reason"`
}

type detectResp struct {
	Platform       string            `json:"platform"`
	Category       string            `json:"category,omitempty"`
	Topics         []topicResp       `json:"topics"`
	Hashtags       []hashtagResp     `json:"hashtags"`
	BuzzPatterns   []buzzPatternResp `json:"buzz_patterns"`
	OptimalTimings []timingResp      `json:"optimal_timings"`
	Source         string            `json:"source"`
	Degraded       bool              `json:"degraded"`
	CacheHit       bool              `json:"cache_hit"`
	DetectedAt     time.Time         `json:"detected_at"`
}

type commentRecommendationResp struct {
	TopicID           string   `json:"topic_id"`
	TopicName         string   `json:"topic_name"`
	SuggestedApproach string   `json:"suggested_approach"`
	RiskLevel         string   `json:"risk_level"`
	TemplateComments  []string `json:"template_comments"`
}

type commentStrategiesResp struct {
	Recommendations []commentRecommendationResp `json:"recommendations"`
}

type invalidateResp struct {
	Invalidated bool `json:"invalidated"`
}

func newDetectResp(out trend.DetectOutput) detectResp {
	r := out.Response

	topics := make([]topicResp, 0, len(r.Topics))
	for _, t := range r.Topics {
		topics = append(topics, topicResp{
			ID:                  t.ID,
			Platform:            string(t.Platform),
			Name:                t.Name,
			Category:            string(t.Category),
			Description:         t.Description,
			Sentiment:           string(t.Sentiment),
			RecommendationScore: t.RecommendationScore,
			RelatedHashtags:     t.RelatedHashtags,
			EstimatedReach:      t.EstimatedReach,
		})
	}

	hashtags := make([]hashtagResp, 0, len(r.Hashtags))
	for _, h := range r.Hashtags {
		hashtags = append(hashtags, hashtagResp{
			Hashtag:        h.Hashtag,
			Popularity:     h.Popularity,
			Competition:    h.Competition,
			EstimatedReach: h.EstimatedReach,
		})
	}

	patterns := make([]buzzPatternResp, 0, len(r.BuzzPatterns))
	for _, p := range r.BuzzPatterns {
		patterns = append(patterns, buzzPatternResp{
			Name:          p.Name,
			Description:   p.Description,
			Examples:      p.Examples,
			Effectiveness: p.Effectiveness,
		})
	}

	timings := make([]timingResp, 0, len(r.OptimalTimings))
	for _, t := range r.OptimalTimings {
		timings = append(timings, timingResp{
			DayLabel: t.DayLabel,
			Hours:    t.Hours,
			Reason:   t.Reason,
		})
	}

	return detectResp{
		Platform:       string(r.Platform),
		Category:       string(r.Category),
		Topics:         topics,
		Hashtags:       hashtags,
		BuzzPatterns:   patterns,
		OptimalTimings: timings,
		Source:         r.Source,
		Degraded:       r.Degraded,
		CacheHit:       out.CacheHit,
		DetectedAt:     r.DetectedAt,
	}
}

func newCommentStrategiesResp(recs []model.CommentRecommendation) commentStrategiesResp {
	list := make([]commentRecommendationResp, 0, len(recs))
	for _, rec := range recs {
		list = append(list, commentRecommendationResp{
			TopicID:           rec.TopicID,
			TopicName:         rec.TopicName,
			SuggestedApproach: string(rec.SuggestedApproach),
			RiskLevel:         rec.RiskLevel,
			TemplateComments:  rec.TemplateComments,
		})
	}
	return commentStrategiesResp{Recommendations: list}
}
