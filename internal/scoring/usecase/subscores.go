package usecase

import (
	"fmt"
	"math"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
)

// contribution caps per engagement input.
const (
	capLikes    = 25.0
	capComments = 30.0
	capShares   = 20.0
	capReply    = 25.0
)

func factorImpact(value, cap float64) model.FactorImpact {
	switch {
	case value >= cap*0.8:
		return model.ImpactPositive
	case value >= cap*0.4:
		return model.ImpactNeutral
	default:
		return model.ImpactNegative
	}
}

// engagementScore scores how actively the user engages with others.
// Each input saturates at its cap so no single behavior dominates.
func engagementScore(d model.UserBehaviorData) (int, []model.ScoreFactor) {
	likes := math.Min(capLikes, float64(d.LikesGiven)/50*capLikes)
	comments := math.Min(capComments, float64(d.CommentsGiven)/20*capComments)
	shares := math.Min(capShares, float64(d.SharesGiven)/10*capShares)

	// Reply rate rewards conversations that get answered. A user who comments
	// but never hears back still earns half credit; a user who never comments
	// earns nothing.
	replyRate := 0.0
	switch {
	case d.RepliesReceived > 0:
		replyRate = math.Min(1, float64(d.CommentsGiven)/float64(d.RepliesReceived))
	case d.CommentsGiven > 0:
		replyRate = 0.5
	}
	reply := replyRate * capReply

	factors := []model.ScoreFactor{
		{
			Name:        "いいね活動",
			Impact:      factorImpact(likes, capLikes),
			Weight:      capLikes / 100,
			Description: fmt.Sprintf("週%d回のいいね", d.LikesGiven),
		},
		{
			Name:        "コメント活動",
			Impact:      factorImpact(comments, capComments),
			Weight:      capComments / 100,
			Description: fmt.Sprintf("週%d回のコメント", d.CommentsGiven),
		},
		{
			Name:        "シェア活動",
			Impact:      factorImpact(shares, capShares),
			Weight:      capShares / 100,
			Description: fmt.Sprintf("週%d回のシェア", d.SharesGiven),
		},
		{
			Name:        "返信率",
			Impact:      factorImpact(reply, capReply),
			Weight:      capReply / 100,
			Description: fmt.Sprintf("返信率 %.0f%%", replyRate*100),
		},
	}

	return int(math.Round(likes + comments + shares + reply)), factors
}

// consistencyScore scores posting regularity: week-over-week stability,
// closeness to the 5-posts-per-week sweet spot, and golden-hour timing.
func consistencyScore(d model.UserBehaviorData) (int, []model.ScoreFactor) {
	variance := 1.0
	if d.PostsLastWeek > 0 {
		variance = math.Abs(float64(d.PostsThisWeek-d.PostsLastWeek)) / float64(d.PostsLastWeek)
	}
	stability := math.Max(0, 40-40*variance)

	frequency := 0.0
	if d.PostsThisWeek > 0 {
		frequency = math.Max(0, 30-5*math.Abs(float64(d.PostsThisWeek)-5))
	}

	timing := 0.0
	golden := 0
	if len(d.PostTimes) > 0 {
		for _, h := range d.PostTimes {
			if scoring.GoldenHours[h] {
				golden++
			}
		}
		timing = 30 * float64(golden) / float64(len(d.PostTimes))
	}

	factors := []model.ScoreFactor{
		{
			Name:        "投稿ペースの安定性",
			Impact:      factorImpact(stability, 40),
			Weight:      0.40,
			Description: fmt.Sprintf("今週%d件 / 先週%d件", d.PostsThisWeek, d.PostsLastWeek),
		},
		{
			Name:        "投稿頻度",
			Impact:      factorImpact(frequency, 30),
			Weight:      0.30,
			Description: fmt.Sprintf("週%d件の投稿", d.PostsThisWeek),
		},
		{
			Name:        "ゴールデンタイム投稿",
			Impact:      factorImpact(timing, 30),
			Weight:      0.30,
			Description: fmt.Sprintf("%d/%d件がゴールデンタイム", golden, len(d.PostTimes)),
		},
	}

	return int(math.Round(stability + frequency + timing)), factors
}

// trendScore scores how well the user rides trends.
func trendScore(d model.UserBehaviorData) (int, []model.ScoreFactor) {
	hashtags := math.Min(35, float64(d.TrendingHashtagsUsed)/5*35)
	topics := math.Min(35, float64(d.TrendingTopicsEngaged)/3*35)
	early := math.Min(30, float64(d.EarlyTrendEngagement)/2*30)

	factors := []model.ScoreFactor{
		{
			Name:        "トレンドハッシュタグ活用",
			Impact:      factorImpact(hashtags, 35),
			Weight:      0.35,
			Description: fmt.Sprintf("%d個のトレンドタグを使用", d.TrendingHashtagsUsed),
		},
		{
			Name:        "トレンド話題への参加",
			Impact:      factorImpact(topics, 35),
			Weight:      0.35,
			Description: fmt.Sprintf("%d件のトレンドに参加", d.TrendingTopicsEngaged),
		},
		{
			Name:        "トレンド初動への反応",
			Impact:      factorImpact(early, 30),
			Weight:      0.30,
			Description: fmt.Sprintf("%d件の初動トレンドに反応", d.EarlyTrendEngagement),
		},
	}

	return int(math.Round(hashtags + topics + early)), factors
}

// communityScore scores how much the community responds to the user.
func communityScore(d model.UserBehaviorData) (int, []model.ScoreFactor) {
	followers := math.Min(30, float64(d.FollowersGained)/10*30)
	mentions := math.Min(25, float64(d.MentionsReceived)/5*25)
	saves := math.Min(25, float64(d.SavedByOthers)/10*25)
	visits := math.Min(20, float64(d.ProfileVisits)/50*20)

	factors := []model.ScoreFactor{
		{
			Name:        "フォロワー増加",
			Impact:      factorImpact(followers, 30),
			Weight:      0.30,
			Description: fmt.Sprintf("週%d人増加", d.FollowersGained),
		},
		{
			Name:        "メンション",
			Impact:      factorImpact(mentions, 25),
			Weight:      0.25,
			Description: fmt.Sprintf("週%d回メンション", d.MentionsReceived),
		},
		{
			Name:        "保存数",
			Impact:      factorImpact(saves, 25),
			Weight:      0.25,
			Description: fmt.Sprintf("%d件が保存された", d.SavedByOthers),
		},
		{
			Name:        "プロフィール訪問",
			Impact:      factorImpact(visits, 20),
			Weight:      0.20,
			Description: fmt.Sprintf("週%d回の訪問", d.ProfileVisits),
		},
	}

	return int(math.Round(followers + mentions + saves + visits)), factors
}
