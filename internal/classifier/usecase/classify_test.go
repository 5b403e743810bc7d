package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"engagement-srv/internal/classifier"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/log"
)

func newTestUseCase() classifier.UseCase {
	return New(log.Init(log.ZapConfig{Level: "fatal", Mode: "production"}))
}

func TestClassify(t *testing.T) {
	uc := newTestUseCase()
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects empty content", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\n\t"} {
			_, err := uc.Classify(context.Background(), sc, content)
			if !errors.Is(err, classifier.ErrEmptyContent) {
				t.Errorf("Classify(%q) err = %v, want ErrEmptyContent", content, err)
			}
		}
	})

	t.Run("rejects oversized content", func(t *testing.T) {
		_, err := uc.Classify(context.Background(), sc, strings.Repeat("あ", classifier.MaxContentLength+1))
		if !errors.Is(err, classifier.ErrContentTooLong) {
			t.Errorf("err = %v, want ErrContentTooLong", err)
		}
	})

	t.Run("how-to keywords classify as impression", func(t *testing.T) {
		out, err := uc.Classify(context.Background(), sc, "方法 コツ ポイント")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Type != model.ModeImpression {
			t.Errorf("type = %s, want impression", out.Type)
		}
		if out.ImpressionScore != 3 || out.ExpressionScore != 0 {
			t.Errorf("scores = %d/%d, want 3/0", out.ImpressionScore, out.ExpressionScore)
		}
		if out.Confidence != 0.6 {
			t.Errorf("confidence = %v, want 0.6", out.Confidence)
		}
	})

	t.Run("feeling keywords classify as expression", func(t *testing.T) {
		out, err := uc.Classify(context.Background(), sc, "今日は楽しいことがあって嬉しい気持ちになった")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Type != model.ModeExpression {
			t.Errorf("type = %s, want expression", out.Type)
		}
		if out.ImpressionScore != 0 {
			t.Errorf("impression score = %d, want 0", out.ImpressionScore)
		}
		if out.ExpressionScore < 3 {
			t.Errorf("expression score = %d, want >= 3", out.ExpressionScore)
		}
	})

	t.Run("tie defaults to impression", func(t *testing.T) {
		// one keyword from each list
		out, err := uc.Classify(context.Background(), sc, "好きな勉強方法")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.ImpressionScore != out.ExpressionScore {
			t.Fatalf("scores = %d/%d, want a tie", out.ImpressionScore, out.ExpressionScore)
		}
		if out.Type != model.ModeImpression {
			t.Errorf("type = %s, want impression on tie", out.Type)
		}
		if out.Confidence != 0 {
			t.Errorf("confidence = %v, want 0", out.Confidence)
		}
	})

	t.Run("no keywords still classifies", func(t *testing.T) {
		out, err := uc.Classify(context.Background(), sc, "hello world")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Type != model.ModeImpression {
			t.Errorf("type = %s, want impression", out.Type)
		}
		if out.Advice == "" {
			t.Error("advice should not be empty")
		}
	})

	t.Run("repeated keyword counts once", func(t *testing.T) {
		out, err := uc.Classify(context.Background(), sc, "方法 方法 方法")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.ImpressionScore != 1 {
			t.Errorf("impression score = %d, want 1", out.ImpressionScore)
		}
	})
}
