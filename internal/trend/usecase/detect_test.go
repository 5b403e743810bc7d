package usecase

import (
	"context"
	"errors"
	"testing"

	"engagement-srv/internal/model"
	"engagement-srv/internal/trend"
	"engagement-srv/pkg/log"
)

type fakeCacheRepo struct {
	stored      map[string][]byte
	invalidated []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{stored: map[string][]byte{}}
}

func (r *fakeCacheRepo) GetTrends(_ context.Context, key string) ([]byte, error) {
	data, ok := r.stored[key]
	if !ok {
		return nil, errors.New("redis: nil")
	}
	return data, nil
}

func (r *fakeCacheRepo) SaveTrends(_ context.Context, key string, data []byte) error {
	r.stored[key] = data
	return nil
}

func (r *fakeCacheRepo) InvalidateTrends(_ context.Context, platform string) error {
	r.invalidated = append(r.invalidated, platform)
	for k := range r.stored {
		delete(r.stored, k)
	}
	return nil
}

type failingCacheRepo struct {
	fakeCacheRepo
}

func (r *failingCacheRepo) GetTrends(_ context.Context, _ string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

type fakeClaude struct {
	response string
	err      error
	calls    int
}

func (c *fakeClaude) Generate(_ context.Context, _ string) (string, error) {
	c.calls++
	return c.response, c.err
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "fatal", Mode: "production"})
}

const validLLMResponse = `Here are the trends:
[
  {
    "name": "新作アニメ考察",
    "category": "entertainment",
    "description": "最終話の考察が盛り上がっている",
    "sentiment": "positive",
    "recommendation_score": 91,
    "related_hashtags": ["#アニメ", "#考察"],
    "estimated_reach": 500000
  },
  {
    "name": "炎上対応の是非",
    "category": "business",
    "description": "企業の謝罪対応に批判が集まる",
    "sentiment": "negative",
    "recommendation_score": 60,
    "related_hashtags": ["#炎上"],
    "estimated_reach": 300000
  }
]`

func TestDetect(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects invalid platform", func(t *testing.T) {
		uc := New(nil, newFakeCacheRepo(), testLogger())
		_, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: "myspace"})
		if !errors.Is(err, trend.ErrInvalidPlatform) {
			t.Errorf("err = %v, want ErrInvalidPlatform", err)
		}
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		uc := New(nil, newFakeCacheRepo(), testLogger())
		_, err := uc.Detect(context.Background(), sc, trend.DetectInput{
			Platform: model.PlatformTwitter,
			Category: "astrology",
		})
		if !errors.Is(err, trend.ErrInvalidCategory) {
			t.Errorf("err = %v, want ErrInvalidCategory", err)
		}
	})

	t.Run("parses LLM topics", func(t *testing.T) {
		claude := &fakeClaude{response: validLLMResponse}
		uc := New(claude, newFakeCacheRepo(), testLogger())

		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTwitter})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if out.Response.Source != trend.SourceClaude {
			t.Errorf("source = %s, want claude", out.Response.Source)
		}
		if out.Response.Degraded {
			t.Error("degraded should be false")
		}
		if len(out.Response.Topics) != 2 {
			t.Fatalf("topics = %d, want 2", len(out.Response.Topics))
		}
		first := out.Response.Topics[0]
		if first.Name != "新作アニメ考察" || first.Sentiment != model.SentimentPositive {
			t.Errorf("first topic = %+v", first)
		}
		if first.ID == "" || first.Platform != model.PlatformTwitter {
			t.Errorf("first topic not normalized: %+v", first)
		}
	})

	t.Run("falls back to static data when the LLM fails", func(t *testing.T) {
		claude := &fakeClaude{err: errors.New("api down")}
		uc := New(claude, newFakeCacheRepo(), testLogger())

		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTikTok})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if !out.Response.Degraded {
			t.Error("degraded should be true")
		}
		if out.Response.Source != trend.SourceMock {
			t.Errorf("source = %s, want mock", out.Response.Source)
		}
		if len(out.Response.Topics) == 0 {
			t.Error("fallback should still return topics")
		}
	})

	t.Run("falls back when the response has no JSON array", func(t *testing.T) {
		claude := &fakeClaude{response: "sorry, I cannot help with that"}
		uc := New(claude, newFakeCacheRepo(), testLogger())

		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTwitter})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if !out.Response.Degraded || out.Response.Source != trend.SourceMock {
			t.Errorf("want degraded mock response, got source=%s degraded=%v", out.Response.Source, out.Response.Degraded)
		}
	})

	t.Run("serves the second request from cache", func(t *testing.T) {
		claude := &fakeClaude{response: validLLMResponse}
		uc := New(claude, newFakeCacheRepo(), testLogger())
		input := trend.DetectInput{Platform: model.PlatformTwitter, Limit: 5}

		first, err := uc.Detect(context.Background(), sc, input)
		if err != nil {
			t.Fatalf("first Detect failed: %v", err)
		}
		if first.CacheHit {
			t.Error("first request should miss the cache")
		}

		second, err := uc.Detect(context.Background(), sc, input)
		if err != nil {
			t.Fatalf("second Detect failed: %v", err)
		}
		if !second.CacheHit {
			t.Error("second request should hit the cache")
		}
		if claude.calls != 1 {
			t.Errorf("LLM called %d times, want 1", claude.calls)
		}
	})

	t.Run("different limits use different cache keys", func(t *testing.T) {
		claude := &fakeClaude{response: validLLMResponse}
		uc := New(claude, newFakeCacheRepo(), testLogger())

		if _, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTwitter, Limit: 3}); err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if _, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTwitter, Limit: 7}); err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if claude.calls != 2 {
			t.Errorf("LLM called %d times, want 2", claude.calls)
		}
	})

	t.Run("nil claude serves static data without degrading", func(t *testing.T) {
		uc := New(nil, newFakeCacheRepo(), testLogger())
		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{
			Platform: model.PlatformInstagram,
			Category: model.CategoryFashion,
		})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if out.Response.Degraded {
			t.Error("nil claude should not flag degraded")
		}
		if out.Response.Source != trend.SourceMock {
			t.Errorf("source = %s, want mock", out.Response.Source)
		}
		for _, topic := range out.Response.Topics {
			if topic.Category != model.CategoryFashion {
				t.Errorf("topic %s has category %s, want fashion", topic.Name, topic.Category)
			}
		}
	})

	t.Run("cache read failure degrades to a miss", func(t *testing.T) {
		claude := &fakeClaude{response: validLLMResponse}
		repo := &failingCacheRepo{fakeCacheRepo{stored: map[string][]byte{}}}
		uc := New(claude, repo, testLogger())

		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTwitter})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if out.CacheHit {
			t.Error("a failing cache read must not report a hit")
		}
		if len(out.Response.Topics) == 0 {
			t.Error("generation should still serve topics")
		}
	})

	t.Run("include flags strip optional sections", func(t *testing.T) {
		uc := New(nil, newFakeCacheRepo(), testLogger())
		off := false
		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{
			Platform:            model.PlatformTwitter,
			IncludeHashtags:     &off,
			IncludeBuzzPatterns: &off,
		})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if len(out.Response.Hashtags) != 0 || len(out.Response.BuzzPatterns) != 0 {
			t.Errorf("excluded sections present: hashtags=%d patterns=%d",
				len(out.Response.Hashtags), len(out.Response.BuzzPatterns))
		}
		if len(out.Response.OptimalTimings) == 0 {
			t.Error("timings should always be present")
		}
	})

	t.Run("enriches with patterns and timings", func(t *testing.T) {
		uc := New(nil, newFakeCacheRepo(), testLogger())
		out, err := uc.Detect(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTikTok})
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if len(out.Response.BuzzPatterns) == 0 || len(out.Response.OptimalTimings) == 0 {
			t.Error("response should carry buzz patterns and optimal timings")
		}
		for _, p := range out.Response.BuzzPatterns {
			if p.Platform != model.PlatformTikTok {
				t.Errorf("pattern %s has platform %s", p.Name, p.Platform)
			}
		}
		if len(out.Response.Hashtags) == 0 {
			t.Error("response should carry hashtag analyses")
		}
	})
}

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		input trend.DetectInput
		want  string
	}{
		{
			"all categories",
			trend.DetectInput{Platform: model.PlatformTwitter, Limit: 5},
			"trends:twitter:all:5",
		},
		{
			"specific category",
			trend.DetectInput{Platform: model.PlatformTikTok, Category: model.CategoryFood, Limit: 10},
			"trends:tiktok:food:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateCacheKey(tt.input); got != tt.want {
				t.Errorf("generateCacheKey = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCommentStrategies(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("maps sentiment to approach and risk", func(t *testing.T) {
		claude := &fakeClaude{response: validLLMResponse}
		uc := New(claude, newFakeCacheRepo(), testLogger())

		recs, err := uc.CommentStrategies(context.Background(), sc, trend.DetectInput{Platform: model.PlatformTwitter})
		if err != nil {
			t.Fatalf("CommentStrategies failed: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("recommendations = %d, want 2", len(recs))
		}

		positive := recs[0]
		if positive.SuggestedApproach != model.ApproachAgree || positive.RiskLevel != "low" {
			t.Errorf("positive topic: approach=%s risk=%s, want agree/low", positive.SuggestedApproach, positive.RiskLevel)
		}
		negative := recs[1]
		if negative.SuggestedApproach != model.ApproachAddValue || negative.RiskLevel != "high" {
			t.Errorf("negative topic: approach=%s risk=%s, want add_value/high", negative.SuggestedApproach, negative.RiskLevel)
		}
		for _, rec := range recs {
			if len(rec.TemplateComments) != 3 {
				t.Errorf("topic %s has %d templates, want 3", rec.TopicName, len(rec.TemplateComments))
			}
		}
	})

	t.Run("caps recommendations at the requested limit", func(t *testing.T) {
		claude := &fakeClaude{response: validLLMResponse}
		uc := New(claude, newFakeCacheRepo(), testLogger())

		recs, err := uc.CommentStrategies(context.Background(), sc, trend.DetectInput{
			Platform: model.PlatformTwitter,
			Limit:    1,
		})
		if err != nil {
			t.Fatalf("CommentStrategies failed: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("recommendations = %d, want 1", len(recs))
		}
		if recs[0].TopicName != "新作アニメ考察" {
			t.Errorf("top recommendation = %s, want the highest-scored topic", recs[0].TopicName)
		}
	})

	t.Run("approach table", func(t *testing.T) {
		tests := []struct {
			sentiment model.TrendSentiment
			approach  model.CommentApproach
			risk      string
		}{
			{model.SentimentPositive, model.ApproachAgree, "low"},
			{model.SentimentNegative, model.ApproachAddValue, "high"},
			{model.SentimentMixed, model.ApproachQuestion, "medium"},
			{model.SentimentNeutral, model.ApproachShareExperience, "low"},
		}
		for _, tt := range tests {
			approach, risk := approachFor(tt.sentiment)
			if approach != tt.approach || risk != tt.risk {
				t.Errorf("approachFor(%s) = %s/%s, want %s/%s", tt.sentiment, approach, risk, tt.approach, tt.risk)
			}
		}
	})
}

func TestInvalidateCache(t *testing.T) {
	t.Run("rejects invalid platform", func(t *testing.T) {
		uc := New(nil, newFakeCacheRepo(), testLogger())
		err := uc.InvalidateCache(context.Background(), "myspace")
		if !errors.Is(err, trend.ErrInvalidPlatform) {
			t.Errorf("err = %v, want ErrInvalidPlatform", err)
		}
	})

	t.Run("empty platform invalidates everything", func(t *testing.T) {
		repo := newFakeCacheRepo()
		uc := New(nil, repo, testLogger())
		if err := uc.InvalidateCache(context.Background(), ""); err != nil {
			t.Fatalf("InvalidateCache failed: %v", err)
		}
		if len(repo.invalidated) != 1 || repo.invalidated[0] != "" {
			t.Errorf("invalidated = %v, want one empty-platform call", repo.invalidated)
		}
	})
}
