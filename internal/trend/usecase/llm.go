package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/trend"
)

// jsonArrayRe pulls the first JSON array out of an LLM response, tolerating
// prose or markdown fences around it.
var jsonArrayRe = regexp.MustCompile(`\[[\s\S]*\]`)

type llmTopic struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	Sentiment           string   `json:"sentiment"`
	RecommendationScore float64  `json:"recommendation_score"`
	RelatedHashtags     []string `json:"related_hashtags"`
	EstimatedReach      int      `json:"estimated_reach"`
}

// generateTopics asks the LLM for trending topics and falls back to the
// static tables when generation or parsing fails. The second return value is
// true on fallback.
func (uc *implUseCase) generateTopics(ctx context.Context, input trend.DetectInput) ([]model.TrendingTopic, bool) {
	if uc.claude == nil {
		return mockTopics(input), false
	}

	raw, err := uc.claude.Generate(ctx, buildPrompt(input))
	if err != nil {
		uc.l.Warnf(ctx, "trend.usecase.generateTopics: LLM generation failed, serving static data: %v", err)
		return mockTopics(input), true
	}

	topics, err := parseTopics(raw, input)
	if err != nil {
		uc.l.Warnf(ctx, "trend.usecase.generateTopics: Failed to parse LLM response, serving static data: %v", err)
		return mockTopics(input), true
	}

	return topics, false
}

func buildPrompt(input trend.DetectInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "あなたはSNSトレンドアナリストです。%s で今話題になっているトピックを%d件挙げてください。\n", platformLabel(input.Platform), input.Limit)
	if input.Category != "" {
		fmt.Fprintf(&b, "カテゴリは %s に限定してください。\n", input.Category)
	}
	b.WriteString(`以下のJSON配列のみを出力してください。説明文は不要です。
[
  {
    "name": "トレンド名",
    "category": "tech|entertainment|lifestyle|business|sports|fashion|food|travel",
    "description": "話題になっている理由の短い説明",
    "sentiment": "positive|negative|mixed|neutral",
    "recommendation_score": 0-100の数値,
    "related_hashtags": ["#タグ1", "#タグ2"],
    "estimated_reach": 推定リーチ数
  }
]`)
	return b.String()
}

func parseTopics(raw string, input trend.DetectInput) ([]model.TrendingTopic, error) {
	match := jsonArrayRe.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var parsed []llmTopic
	if err := json.Unmarshal([]byte(match), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal topics: %w", err)
	}

	topics := make([]model.TrendingTopic, 0, len(parsed))
	for _, p := range parsed {
		if p.Name == "" {
			continue
		}

		category := model.TrendCategory(p.Category)
		if !category.IsValid() {
			if input.Category == "" {
				continue
			}
			category = input.Category
		}
		if input.Category != "" && category != input.Category {
			continue
		}

		sentiment := model.TrendSentiment(p.Sentiment)
		switch sentiment {
		case model.SentimentPositive, model.SentimentNegative, model.SentimentMixed, model.SentimentNeutral:
		default:
			sentiment = model.SentimentNeutral
		}

		score := p.RecommendationScore
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		topics = append(topics, model.TrendingTopic{
			ID:                  uuid.New().String(),
			Platform:            input.Platform,
			Name:                p.Name,
			Category:            category,
			Description:         p.Description,
			Sentiment:           sentiment,
			RecommendationScore: score,
			RelatedHashtags:     p.RelatedHashtags,
			EstimatedReach:      p.EstimatedReach,
		})
		if len(topics) == input.Limit {
			break
		}
	}

	if len(topics) == 0 {
		return nil, fmt.Errorf("no usable topics in response")
	}
	return topics, nil
}

func platformLabel(p model.Platform) string {
	switch p {
	case model.PlatformTwitter:
		return "X (旧Twitter)"
	case model.PlatformInstagram:
		return "Instagram"
	case model.PlatformTikTok:
		return "TikTok"
	default:
		return string(p)
	}
}
