package scoring

import (
	"engagement-srv/internal/model"
)

// Sub-score weights for the overall score.
const (
	WeightEngagement  = 0.35
	WeightConsistency = 0.25
	WeightTrend       = 0.20
	WeightCommunity   = 0.20
)

// GoldenHours are the posting hours that earn full timing credit.
var GoldenHours = map[int]bool{
	7: true, 8: true, 9: true,
	12: true, 13: true,
	19: true, 20: true, 21: true, 22: true,
}

// BehaviorInput carries the request's behavior counters. Nil fields were not
// supplied by the client and get filled with sampled values.
type BehaviorInput struct {
	LikesGiven      *int
	CommentsGiven   *int
	SharesGiven     *int
	RepliesReceived *int

	PostsThisWeek   *int
	PostsLastWeek   *int
	AvgPostsPerWeek *int
	PostTimes       []int

	TrendingHashtagsUsed  *int
	TrendingTopicsEngaged *int
	EarlyTrendEngagement  *int

	FollowersGained  *int
	MentionsReceived *int
	SavedByOthers    *int
	ProfileVisits    *int
}

type CalculateInput struct {
	Platform model.Platform
	Behavior BehaviorInput
}

type CalculateOutput struct {
	Score           model.PlatformScore
	Rank            model.ScoreRank
	Recommendations []model.ScoreRecommendation
	History         []model.ScoreHistoryEntry
	Behavior        model.UserBehaviorData
}

type HistoryInput struct {
	Platform model.Platform
	Days     int
}
