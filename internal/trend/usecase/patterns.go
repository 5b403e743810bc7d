package usecase

import "engagement-srv/internal/model"

// buzzPatterns are content formats known to travel well per platform.
var buzzPatterns = map[model.Platform][]model.BuzzPattern{
	model.PlatformTwitter: {
		{
			Name:          "ノウハウ箇条書き",
			Description:   "数字付きの箇条書きでノウハウをまとめる形式。保存とリポストを狙える。",
			Examples:      []string{"フォロワーを増やす5つの習慣", "知らないと損するX活用術3選"},
			Effectiveness: 88,
		},
		{
			Name:          "体験談スレッド",
			Description:   "失敗から学んだ話を連投スレッドで語る形式。共感リプライが付きやすい。",
			Examples:      []string{"フリーランス1年目で学んだこと", "転職活動で後悔した話"},
			Effectiveness: 80,
		},
		{
			Name:          "賛否を問う問いかけ",
			Description:   "意見が割れるテーマへの問いかけ。引用での議論が拡散を生む。",
			Examples:      []string{"リモートと出社、結局どっち派?"},
			Effectiveness: 72,
		},
	},
	model.PlatformInstagram: {
		{
			Name:          "カルーセル解説",
			Description:   "10枚前後のスライドで1テーマを解説。最後に保存を促す。",
			Examples:      []string{"初心者向けカメラ設定まとめ", "今週の作り置きレシピ"},
			Effectiveness: 90,
		},
		{
			Name:          "ビフォーアフター",
			Description:   "変化を1枚目で見せて経緯を語る形式。プロフィール遷移が伸びる。",
			Examples:      []string{"部屋の模様替え記録", "3ヶ月の筋トレ成果"},
			Effectiveness: 82,
		},
		{
			Name:          "日常Vlogリール",
			Description:   "テンポの良いカット割りの日常リール。BGM選びが鍵。",
			Examples:      []string{"休日のモーニングルーティン"},
			Effectiveness: 75,
		},
	},
	model.PlatformTikTok: {
		{
			Name:          "冒頭3秒フック",
			Description:   "結論やインパクトのある一言から始める形式。離脱率を大きく下げる。",
			Examples:      []string{"これ知らないと損します", "9割が間違えてる〇〇"},
			Effectiveness: 92,
		},
		{
			Name:          "チャレンジ便乗",
			Description:   "流行中の音源やチャレンジに自分の切り口で乗る形式。",
			Examples:      []string{"流行りの音源でビジネスネタ"},
			Effectiveness: 85,
		},
		{
			Name:          "検証・実験系",
			Description:   "気になる疑問を実際に試して見せる形式。コメントで次のネタが集まる。",
			Examples:      []string{"100均ガジェットを1週間使ってみた"},
			Effectiveness: 78,
		},
	},
}

func patternsFor(p model.Platform) []model.BuzzPattern {
	patterns := make([]model.BuzzPattern, 0, len(buzzPatterns[p]))
	for _, pat := range buzzPatterns[p] {
		pat.Platform = p
		patterns = append(patterns, pat)
	}
	return patterns
}
