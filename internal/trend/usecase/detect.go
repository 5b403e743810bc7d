package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/trend"
	pkgRedis "engagement-srv/pkg/redis"
)

func (uc *implUseCase) Detect(ctx context.Context, sc model.Scope, input trend.DetectInput) (trend.DetectOutput, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return trend.DetectOutput{}, err
	}

	// Step 1: Check cache. Real Redis failures degrade to a miss.
	cacheKey := generateCacheKey(input)
	cachedData, err := uc.cacheRepo.GetTrends(ctx, cacheKey)
	if err != nil && !pkgRedis.IsNil(err) {
		uc.l.Warnf(ctx, "trend.usecase.Detect: Failed to read cache: %v", err)
	}
	if err == nil && cachedData != nil {
		var cached model.TrendDetectionResponse
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			uc.l.Debugf(ctx, "trend.usecase.Detect: cache hit for key %s", cacheKey)
			return trend.DetectOutput{Response: cached, CacheHit: true}, nil
		}
	}

	// Step 2: Generate topics (LLM with static fallback)
	topics, degraded := uc.generateTopics(ctx, input)

	source := trend.SourceClaude
	if degraded || uc.claude == nil {
		source = trend.SourceMock
	}

	// Step 3: Enrich with presentation data
	resp := model.TrendDetectionResponse{
		Platform:       input.Platform,
		Category:       input.Category,
		Topics:         topics,
		OptimalTimings: timingsFor(input.Platform),
		Source:         source,
		Degraded:       degraded,
		DetectedAt:     time.Now(),
	}
	if input.IncludeHashtags == nil || *input.IncludeHashtags {
		resp.Hashtags = analyzeHashtags(topics)
	}
	if input.IncludeBuzzPatterns == nil || *input.IncludeBuzzPatterns {
		resp.BuzzPatterns = patternsFor(input.Platform)
	}

	// Step 4: Cache the set
	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.SaveTrends(ctx, cacheKey, data); err != nil {
			uc.l.Warnf(ctx, "trend.usecase.Detect: Failed to save cache: %v", err)
		}
	}

	uc.l.Infof(ctx, "trend.usecase.Detect: platform=%s, category=%s, topics=%d, source=%s",
		input.Platform, input.Category, len(topics), source)

	return trend.DetectOutput{Response: resp, CacheHit: false}, nil
}

func (uc *implUseCase) InvalidateCache(ctx context.Context, platform model.Platform) error {
	if platform != "" && !platform.IsValid() {
		return trend.ErrInvalidPlatform
	}
	if err := uc.cacheRepo.InvalidateTrends(ctx, string(platform)); err != nil {
		uc.l.Errorf(ctx, "trend.usecase.InvalidateCache: %v", err)
		return trend.ErrCacheFailed
	}
	return nil
}

func normalizeInput(input trend.DetectInput) (trend.DetectInput, error) {
	if !input.Platform.IsValid() {
		return input, trend.ErrInvalidPlatform
	}
	if input.Category != "" && !input.Category.IsValid() {
		return input, trend.ErrInvalidCategory
	}
	if input.Limit <= 0 {
		input.Limit = trend.DefaultLimit
	}
	if input.Limit > trend.MaxLimit {
		input.Limit = trend.MaxLimit
	}
	return input, nil
}

func generateCacheKey(input trend.DetectInput) string {
	category := "all"
	if input.Category != "" {
		category = string(input.Category)
	}
	return fmt.Sprintf("trends:%s:%s:%d", input.Platform, category, input.Limit)
}
