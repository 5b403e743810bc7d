package usecase

import (
	"context"

	"engagement-srv/internal/model"
)

func (uc implUseCase) Health(ctx context.Context, sc model.Scope, ratio *float64) (model.RatioHealth, error) {
	if ratio != nil {
		return evaluateRatio(*ratio), nil
	}
	s, err := uc.Get(ctx, sc)
	if err != nil {
		return model.RatioHealth{}, err
	}
	return evaluateRatio(s.ImpressionRatio), nil
}

// evaluateRatio classifies an impression ratio. The healthy band wins over
// the warning band where they touch at 0.95.
func evaluateRatio(r float64) model.RatioHealth {
	switch {
	case r >= 0.80 && r <= 0.95:
		return model.RatioHealth{
			Status:  model.RatioHealthy,
			Message: "理想的なバランスです。このままインプレッション重視を続けましょう。",
		}
	case r > 0.95:
		return model.RatioHealth{
			Status:  model.RatioWarning,
			Message: "インプレッション比率が高すぎます。自己表現の投稿も少し混ぜましょう。",
		}
	case r < 0.70:
		return model.RatioHealth{
			Status:  model.RatioCritical,
			Message: "自己表現に寄りすぎています。リーチを保つためインプレッション投稿を増やしましょう。",
		}
	default:
		return model.RatioHealth{
			Status:  model.RatioAcceptable,
			Message: "許容範囲ですが、インプレッション比率を80%以上に上げる余地があります。",
		}
	}
}
