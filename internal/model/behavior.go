package model

// UserBehaviorData is an immutable snapshot of behavioral counters for one
// scoring request. All counters are non-negative; the HTTP boundary rejects
// negatives before they reach the calculator.
type UserBehaviorData struct {
	// Engagement
	LikesGiven      int `json:"likes_given"`
	CommentsGiven   int `json:"comments_given"`
	SharesGiven     int `json:"shares_given"`
	RepliesReceived int `json:"replies_received"`

	// Consistency
	PostsThisWeek   int   `json:"posts_this_week"`
	PostsLastWeek   int   `json:"posts_last_week"`
	AvgPostsPerWeek int   `json:"avg_posts_per_week"`
	PostTimes       []int `json:"post_times"` // hour of day, 0-23, one per post

	// Trend
	TrendingHashtagsUsed  int `json:"trending_hashtags_used"`
	TrendingTopicsEngaged int `json:"trending_topics_engaged"`
	EarlyTrendEngagement  int `json:"early_trend_engagement"`

	// Community
	FollowersGained  int `json:"followers_gained"`
	MentionsReceived int `json:"mentions_received"`
	SavedByOthers    int `json:"saved_by_others"`
	ProfileVisits    int `json:"profile_visits"`
}
