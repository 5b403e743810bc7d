package usecase

import (
	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/trend"
)

// mockTable is the static trend data served when the LLM is unavailable.
// Entries are ordered by recommendation score.
var mockTable = map[model.Platform][]model.TrendingTopic{
	model.PlatformTwitter: {
		{
			Name:                "生成AI活用術",
			Category:            model.CategoryTech,
			Description:         "業務やコンテンツ制作への生成AIの取り入れ方が連日話題。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 92,
			RelatedHashtags:     []string{"#生成AI", "#ChatGPT", "#AI活用"},
			EstimatedReach:      1200000,
		},
		{
			Name:                "値上げラッシュ",
			Category:            model.CategoryBusiness,
			Description:         "食品や日用品の値上げ発表が続き家計の工夫が注目されている。",
			Sentiment:           model.SentimentNegative,
			RecommendationScore: 78,
			RelatedHashtags:     []string{"#値上げ", "#節約"},
			EstimatedReach:      860000,
		},
		{
			Name:                "朝活ルーティン",
			Category:            model.CategoryLifestyle,
			Description:         "朝時間の使い方を共有する投稿がじわじわ拡散中。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 74,
			RelatedHashtags:     []string{"#朝活", "#ルーティン"},
			EstimatedReach:      540000,
		},
		{
			Name:                "プロ野球開幕",
			Category:            model.CategorySports,
			Description:         "開幕戦の結果と注目選手の話題で盛り上がっている。",
			Sentiment:           model.SentimentMixed,
			RecommendationScore: 70,
			RelatedHashtags:     []string{"#プロ野球", "#開幕戦"},
			EstimatedReach:      980000,
		},
		{
			Name:                "新作スマホ発表",
			Category:            model.CategoryTech,
			Description:         "各社の新機種発表が重なりスペック比較が飛び交う。",
			Sentiment:           model.SentimentNeutral,
			RecommendationScore: 66,
			RelatedHashtags:     []string{"#スマホ", "#新機種"},
			EstimatedReach:      720000,
		},
	},
	model.PlatformInstagram: {
		{
			Name:                "韓国カフェ巡り",
			Category:            model.CategoryFood,
			Description:         "韓国風カフェの内装とメニューの投稿が急増中。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 90,
			RelatedHashtags:     []string{"#韓国カフェ", "#カフェ巡り"},
			EstimatedReach:      950000,
		},
		{
			Name:                "春コーデ",
			Category:            model.CategoryFashion,
			Description:         "季節の変わり目で着回しコーデの保存数が伸びている。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 84,
			RelatedHashtags:     []string{"#春コーデ", "#プチプラ"},
			EstimatedReach:      880000,
		},
		{
			Name:                "国内ひとり旅",
			Category:            model.CategoryTravel,
			Description:         "ひとり旅の宿とモデルコースのリール再生が好調。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 76,
			RelatedHashtags:     []string{"#ひとり旅", "#国内旅行"},
			EstimatedReach:      610000,
		},
		{
			Name:                "宅トレ記録",
			Category:            model.CategoryLifestyle,
			Description:         "自宅トレーニングのビフォーアフター投稿が人気。",
			Sentiment:           model.SentimentMixed,
			RecommendationScore: 68,
			RelatedHashtags:     []string{"#宅トレ", "#ダイエット記録"},
			EstimatedReach:      470000,
		},
		{
			Name:                "推し活グッズ収納",
			Category:            model.CategoryEntertainment,
			Description:         "推し活グッズの見せる収納アイデアが拡散中。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 64,
			RelatedHashtags:     []string{"#推し活", "#収納アイデア"},
			EstimatedReach:      520000,
		},
	},
	model.PlatformTikTok: {
		{
			Name:                "時短レシピチャレンジ",
			Category:            model.CategoryFood,
			Description:         "3分で作れるレシピ動画のフォーマットが流行中。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 94,
			RelatedHashtags:     []string{"#時短レシピ", "#料理動画"},
			EstimatedReach:      2100000,
		},
		{
			Name:                "新曲ダンスチャレンジ",
			Category:            model.CategoryEntertainment,
			Description:         "話題の新曲に合わせた振り付けチャレンジが拡散中。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 88,
			RelatedHashtags:     []string{"#ダンスチャレンジ", "#新曲"},
			EstimatedReach:      1800000,
		},
		{
			Name:                "ガジェット開封",
			Category:            model.CategoryTech,
			Description:         "最新ガジェットの開封と第一印象のショート動画が人気。",
			Sentiment:           model.SentimentNeutral,
			RecommendationScore: 72,
			RelatedHashtags:     []string{"#ガジェット", "#開封動画"},
			EstimatedReach:      830000,
		},
		{
			Name:                "サッカースーパープレー",
			Category:            model.CategorySports,
			Description:         "週末の試合のハイライト切り抜きが伸びている。",
			Sentiment:           model.SentimentPositive,
			RecommendationScore: 69,
			RelatedHashtags:     []string{"#サッカー", "#スーパープレー"},
			EstimatedReach:      1100000,
		},
		{
			Name:                "副業のはじめ方",
			Category:            model.CategoryBusiness,
			Description:         "スキマ時間の副業解説動画がコメント欄で賛否両論。",
			Sentiment:           model.SentimentMixed,
			RecommendationScore: 65,
			RelatedHashtags:     []string{"#副業", "#働き方"},
			EstimatedReach:      690000,
		},
	},
}

// mockTopics filters the static table by category and truncates to the limit.
// IDs are assigned per call so cached sets stay self-consistent.
func mockTopics(input trend.DetectInput) []model.TrendingTopic {
	topics := make([]model.TrendingTopic, 0, input.Limit)
	for _, t := range mockTable[input.Platform] {
		if input.Category != "" && t.Category != input.Category {
			continue
		}
		t.ID = uuid.New().String()
		t.Platform = input.Platform
		topics = append(topics, t)
		if len(topics) == input.Limit {
			break
		}
	}
	return topics
}
