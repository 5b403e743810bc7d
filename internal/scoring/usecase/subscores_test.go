package usecase

import (
	"testing"

	"engagement-srv/internal/model"
)

func TestEngagementScore(t *testing.T) {
	t.Run("all zero earns zero", func(t *testing.T) {
		got, factors := engagementScore(model.UserBehaviorData{})
		if got != 0 {
			t.Errorf("engagementScore = %d, want 0", got)
		}
		if len(factors) != 4 {
			t.Errorf("factors = %d, want 4", len(factors))
		}
	})

	t.Run("saturated inputs earn full score", func(t *testing.T) {
		got, _ := engagementScore(model.UserBehaviorData{
			LikesGiven:      500,
			CommentsGiven:   200,
			SharesGiven:     100,
			RepliesReceived: 10,
		})
		if got != 100 {
			t.Errorf("engagementScore = %d, want 100", got)
		}
	})

	t.Run("comments without replies earn half reply credit", func(t *testing.T) {
		// 10 comments => comments 15, reply rate 0.5 => 12.5, rounds to 28
		got, _ := engagementScore(model.UserBehaviorData{CommentsGiven: 10})
		if got != 28 {
			t.Errorf("engagementScore = %d, want 28", got)
		}
	})

	t.Run("reply rate caps at one", func(t *testing.T) {
		// comments/replies = 40/10 caps at 1.0 => full 25 reply credit
		withMany, _ := engagementScore(model.UserBehaviorData{CommentsGiven: 40, RepliesReceived: 10})
		exact, _ := engagementScore(model.UserBehaviorData{CommentsGiven: 40, RepliesReceived: 40})
		// comment credit caps at 30, reply credit 25, nothing else
		if withMany != 55 {
			t.Errorf("engagementScore = %d, want 55", withMany)
		}
		if exact != 55 {
			t.Errorf("engagementScore = %d, want 55", exact)
		}
	})
}

func TestConsistencyScore(t *testing.T) {
	t.Run("all zero earns zero", func(t *testing.T) {
		got, _ := consistencyScore(model.UserBehaviorData{})
		if got != 0 {
			t.Errorf("consistencyScore = %d, want 0", got)
		}
	})

	t.Run("steady five posts in golden hours is perfect", func(t *testing.T) {
		got, _ := consistencyScore(model.UserBehaviorData{
			PostsThisWeek: 5,
			PostsLastWeek: 5,
			PostTimes:     []int{7, 9, 12, 20, 21},
		})
		if got != 100 {
			t.Errorf("consistencyScore = %d, want 100", got)
		}
	})

	t.Run("off-hour posts earn no timing credit", func(t *testing.T) {
		got, _ := consistencyScore(model.UserBehaviorData{
			PostsThisWeek: 5,
			PostsLastWeek: 5,
			PostTimes:     []int{2, 3, 4, 5, 6},
		})
		if got != 70 {
			t.Errorf("consistencyScore = %d, want 70", got)
		}
	})

	t.Run("doubling output costs stability", func(t *testing.T) {
		// variance = |10-5|/5 = 1 => stability 0; frequency = 30-5*5 = 5
		got, _ := consistencyScore(model.UserBehaviorData{
			PostsThisWeek: 10,
			PostsLastWeek: 5,
		})
		if got != 5 {
			t.Errorf("consistencyScore = %d, want 5", got)
		}
	})
}

func TestTrendScore(t *testing.T) {
	t.Run("all zero earns zero", func(t *testing.T) {
		got, _ := trendScore(model.UserBehaviorData{})
		if got != 0 {
			t.Errorf("trendScore = %d, want 0", got)
		}
	})

	t.Run("saturated inputs earn full score", func(t *testing.T) {
		got, _ := trendScore(model.UserBehaviorData{
			TrendingHashtagsUsed:  5,
			TrendingTopicsEngaged: 3,
			EarlyTrendEngagement:  2,
		})
		if got != 100 {
			t.Errorf("trendScore = %d, want 100", got)
		}
	})
}

func TestCommunityScore(t *testing.T) {
	t.Run("all zero earns zero", func(t *testing.T) {
		got, _ := communityScore(model.UserBehaviorData{})
		if got != 0 {
			t.Errorf("communityScore = %d, want 0", got)
		}
	})

	t.Run("saturated inputs earn full score", func(t *testing.T) {
		got, _ := communityScore(model.UserBehaviorData{
			FollowersGained:  10,
			MentionsReceived: 5,
			SavedByOthers:    10,
			ProfileVisits:    50,
		})
		if got != 100 {
			t.Errorf("communityScore = %d, want 100", got)
		}
	})

	t.Run("sub-score stays within bounds", func(t *testing.T) {
		got, _ := communityScore(model.UserBehaviorData{
			FollowersGained:  1000,
			MentionsReceived: 1000,
			SavedByOthers:    1000,
			ProfileVisits:    100000,
		})
		if got < 0 || got > 100 {
			t.Errorf("communityScore = %d, want within [0,100]", got)
		}
	})
}
