package usecase

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"engagement-srv/internal/classifier"
	"engagement-srv/internal/model"
)

func (uc implUseCase) Classify(ctx context.Context, sc model.Scope, content string) (classifier.ClassifyOutput, error) {
	if strings.TrimSpace(content) == "" {
		return classifier.ClassifyOutput{}, classifier.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > classifier.MaxContentLength {
		return classifier.ClassifyOutput{}, classifier.ErrContentTooLong
	}

	impression, matchedImpression := countMatches(content, classifier.ImpressionKeywords)
	expression, matchedExpression := countMatches(content, classifier.ExpressionKeywords)

	// Ties go to impression: when nothing signals either way, the safer
	// default is audience-pleasing content.
	kind := model.ModeImpression
	if expression > impression {
		kind = model.ModeExpression
	}

	out := classifier.ClassifyOutput{
		Type:              kind,
		ImpressionScore:   impression,
		ExpressionScore:   expression,
		Confidence:        math.Abs(float64(impression)-float64(expression)) / 5,
		MatchedImpression: matchedImpression,
		MatchedExpression: matchedExpression,
	}
	out.Advice = advice(out)

	return out, nil
}

// countMatches counts how many keywords occur in content. Each keyword counts
// once no matter how often it repeats.
func countMatches(content string, keywords []string) (int, []string) {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			matched = append(matched, kw)
		}
	}
	return len(matched), matched
}

func advice(out classifier.ClassifyOutput) string {
	switch {
	case out.ImpressionScore == 0 && out.ExpressionScore == 0:
		return "どちらの特徴も見つかりませんでした。読者への価値か自分の想い、どちらを届けたいか意識して書いてみましょう。"
	case out.Type == model.ModeImpression:
		return "読者に価値を届けるインプレッション型の投稿です。具体例を添えるとさらに伸びやすくなります。"
	default:
		return "自己表現型の投稿です。週の自己表現枠に合わせて投稿すると戦略を保てます。"
	}
}
