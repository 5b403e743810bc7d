package usecase

import (
	"context"
	"fmt"
	"sort"

	"engagement-srv/internal/model"
	"engagement-srv/internal/trend"
)

func (uc *implUseCase) CommentStrategies(ctx context.Context, sc model.Scope, input trend.DetectInput) ([]model.CommentRecommendation, error) {
	out, err := uc.Detect(ctx, sc, input)
	if err != nil {
		return nil, err
	}

	// Most promising topics first, capped at the requested limit. Detect
	// already bounds its topic list, but the cap here keeps the top-N
	// contract independent of how the set was produced.
	input, err = normalizeInput(input)
	if err != nil {
		return nil, err
	}
	topics := make([]model.TrendingTopic, len(out.Response.Topics))
	copy(topics, out.Response.Topics)
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].RecommendationScore > topics[j].RecommendationScore
	})
	if len(topics) > input.Limit {
		topics = topics[:input.Limit]
	}

	recs := make([]model.CommentRecommendation, 0, len(topics))
	for _, topic := range topics {
		approach, risk := approachFor(topic.Sentiment)
		recs = append(recs, model.CommentRecommendation{
			TopicID:           topic.ID,
			TopicName:         topic.Name,
			SuggestedApproach: approach,
			RiskLevel:         risk,
			TemplateComments:  templateComments(topic, approach),
		})
	}

	return recs, nil
}

// approachFor maps a topic's sentiment to a commenting stance and its risk.
// Negative topics carry high risk: joining them the wrong way reads as
// dogpiling.
func approachFor(s model.TrendSentiment) (model.CommentApproach, string) {
	switch s {
	case model.SentimentPositive:
		return model.ApproachAgree, "low"
	case model.SentimentNegative:
		return model.ApproachAddValue, "high"
	case model.SentimentMixed:
		return model.ApproachQuestion, "medium"
	default:
		return model.ApproachShareExperience, "low"
	}
}

func templateComments(topic model.TrendingTopic, approach model.CommentApproach) []string {
	name := topic.Name
	switch approach {
	case model.ApproachAgree:
		return []string{
			fmt.Sprintf("%sの流れ、本当に良いですよね。自分も最近実感しています。", name),
			fmt.Sprintf("まさに共感です。%sはこれからもっと広がりそうですね。", name),
			fmt.Sprintf("素敵な視点です。%sについて改めて考えるきっかけになりました。", name),
		}
	case model.ApproachAddValue:
		return []string{
			fmt.Sprintf("%sについて補足すると、こういう見方もあります。", name),
			fmt.Sprintf("%sで悩んでいる方には、この方法が役に立つかもしれません。", name),
			fmt.Sprintf("データで見ると%sには別の側面もあるようです。", name),
		}
	case model.ApproachQuestion:
		return []string{
			fmt.Sprintf("%sについて、皆さんはどう感じていますか?", name),
			fmt.Sprintf("%sのこの点、実際のところどうなんでしょう?", name),
			fmt.Sprintf("気になっていたのですが、%sを試した方の感想を聞きたいです。", name),
		}
	default:
		return []string{
			fmt.Sprintf("自分も%sを体験したことがあります。意外な発見がありました。", name),
			fmt.Sprintf("%sは以前から気になっていて、試したときの話を共有します。", name),
			fmt.Sprintf("%sに近い経験をしたので、参考までに書いておきます。", name),
		}
	}
}
