package trend

import "engagement-srv/internal/model"

const (
	// DefaultLimit is the topic count when the client does not ask for one.
	DefaultLimit = 10
	// MaxLimit caps the topic count per request.
	MaxLimit = 50

	// SourceClaude marks an LLM-generated trend set.
	SourceClaude = "claude"
	// SourceMock marks a trend set drawn from the static tables.
	SourceMock = "mock"
)

type DetectInput struct {
	Platform model.Platform
	Category model.TrendCategory // empty means all categories
	Limit    int

	// Nil means true. The include flags are not part of the cache key, so a
	// cached full response can be served to a caller who excluded a section.
	IncludeHashtags     *bool
	IncludeBuzzPatterns *bool
}

type DetectOutput struct {
	Response model.TrendDetectionResponse
	CacheHit bool
}
