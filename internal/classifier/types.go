package classifier

import "engagement-srv/internal/model"

// MaxContentLength bounds the accepted draft size.
const MaxContentLength = 5000

// ImpressionKeywords mark audience-pleasing content: how-to phrasing, value
// offers, list formats. Matching is case-sensitive substring search.
var ImpressionKeywords = []string{
	"方法",
	"コツ",
	"ポイント",
	"まとめ",
	"解説",
	"紹介",
	"おすすめ",
	"初心者",
	"簡単",
	"便利",
	"無料",
	"保存版",
	"必見",
	"選",
	"ランキング",
	"比較",
	"手順",
	"活用",
	"徹底",
	"攻略",
}

// ExpressionKeywords mark self-expression content: feelings, opinions,
// personal narration.
var ExpressionKeywords = []string{
	"思う",
	"思った",
	"感じた",
	"好き",
	"嫌い",
	"嬉しい",
	"悲しい",
	"楽しい",
	"辛い",
	"今日は",
	"日記",
	"気持ち",
	"自分",
	"正直",
	"ぶっちゃけ",
	"個人的",
	"振り返り",
	"最近",
	"独り言",
	"雑感",
}

// ClassifyOutput is the classification of one draft.
type ClassifyOutput struct {
	Type              model.Mode
	ImpressionScore   int
	ExpressionScore   int
	Confidence        float64
	MatchedImpression []string
	MatchedExpression []string
	Advice            string
}
