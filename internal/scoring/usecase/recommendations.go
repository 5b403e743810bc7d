package usecase

import (
	"sort"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
)

var priorityOrder = map[model.RecommendationPriority]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// buildRecommendations derives improvement suggestions from the score and the
// behavior that produced it. Rules fire independently; the result is ordered
// high priority first, preserving rule order within a priority.
func buildRecommendations(score model.PlatformScore, d model.UserBehaviorData) []model.ScoreRecommendation {
	recs := []model.ScoreRecommendation{}

	if score.EngagementScore < 70 && d.CommentsGiven < 10 {
		recs = append(recs, model.ScoreRecommendation{
			ID:             uuid.New().String(),
			Priority:       model.PriorityHigh,
			Category:       model.CategoryEngagement,
			Title:          "コメント数を増やしましょう",
			Description:    "他のユーザーへのコメントはエンゲージメントスコアに最も効きます。",
			ExpectedImpact: 8,
			ActionItems: []string{
				"1日3件を目安に気になった投稿へコメントする",
				"質問形式のコメントで会話を始める",
			},
		})
	}

	if score.EngagementScore < 70 && d.LikesGiven < 30 {
		recs = append(recs, model.ScoreRecommendation{
			ID:             uuid.New().String(),
			Priority:       model.PriorityMedium,
			Category:       model.CategoryEngagement,
			Title:          "いいねをもっと活用しましょう",
			Description:    "いいねは最も手軽なエンゲージメントです。タイムラインを流し見するだけでも増やせます。",
			ExpectedImpact: 5,
			ActionItems: []string{
				"朝と夜にタイムラインを確認していいねする",
				"フォロワーの投稿には積極的に反応する",
			},
		})
	}

	if score.ConsistencyScore < 70 && d.PostsThisWeek < 3 {
		recs = append(recs, model.ScoreRecommendation{
			ID:             uuid.New().String(),
			Priority:       model.PriorityHigh,
			Category:       model.CategoryConsistency,
			Title:          "投稿頻度を上げましょう",
			Description:    "週3件以上の投稿が継続性スコアの土台になります。",
			ExpectedImpact: 7,
			ActionItems: []string{
				"週の投稿予定をあらかじめ決めておく",
				"下書きをストックして投稿のハードルを下げる",
			},
		})
	}

	if score.ConsistencyScore < 70 && goldenRatio(d.PostTimes) < 0.5 {
		recs = append(recs, model.ScoreRecommendation{
			ID:             uuid.New().String(),
			Priority:       model.PriorityMedium,
			Category:       model.CategoryConsistency,
			Title:          "ゴールデンタイムに投稿しましょう",
			Description:    "朝7〜9時・昼12〜13時・夜19〜22時は閲覧が集中する時間帯です。",
			ExpectedImpact: 5,
			ActionItems: []string{
				"予約投稿でゴールデンタイムに合わせる",
				"夜21時前後の投稿を試して反応を比べる",
			},
		})
	}

	if score.TrendScore < 70 && d.TrendingTopicsEngaged < 2 {
		recs = append(recs, model.ScoreRecommendation{
			ID:             uuid.New().String(),
			Priority:       model.PriorityHigh,
			Category:       model.CategoryTrend,
			Title:          "トレンドに乗りましょう",
			Description:    "トレンド話題への参加は露出を大きく伸ばします。初動ほど効果的です。",
			ExpectedImpact: 9,
			ActionItems: []string{
				"1日1回トレンド欄を確認する",
				"自分の分野に近いトレンドへ感想を投稿する",
			},
		})
	}

	if score.CommunityScore < 70 && d.SavedByOthers < 5 {
		recs = append(recs, model.ScoreRecommendation{
			ID:             uuid.New().String(),
			Priority:       model.PriorityMedium,
			Category:       model.CategoryCommunity,
			Title:          "保存される投稿を作りましょう",
			Description:    "まとめ・手順・チェックリスト型の投稿は保存されやすく、コミュニティスコアを押し上げます。",
			ExpectedImpact: 6,
			ActionItems: []string{
				"「あとで見返したくなる」情報を盛り込む",
				"箇条書きや図解で読み返しやすくする",
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityOrder[recs[i].Priority] < priorityOrder[recs[j].Priority]
	})

	return recs
}

func goldenRatio(times []int) float64 {
	if len(times) == 0 {
		return 0
	}
	golden := 0
	for _, h := range times {
		if scoring.GoldenHours[h] {
			golden++
		}
	}
	return float64(golden) / float64(len(times))
}
