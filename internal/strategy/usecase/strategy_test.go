package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/strategy"
	"engagement-srv/internal/strategy/repository"
	"engagement-srv/pkg/log"
)

type fakeCacheRepo struct {
	stored map[string]model.EngagementStrategy
	err    error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{stored: map[string]model.EngagementStrategy{}}
}

func (r *fakeCacheRepo) GetStrategy(_ context.Context, userID string) (model.EngagementStrategy, error) {
	if r.err != nil {
		return model.EngagementStrategy{}, r.err
	}
	s, ok := r.stored[userID]
	if !ok {
		return model.EngagementStrategy{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *fakeCacheRepo) SaveStrategy(_ context.Context, userID string, s model.EngagementStrategy) error {
	if r.err != nil {
		return r.err
	}
	r.stored[userID] = s
	return nil
}

// fakeEncrypter base64-encodes instead of encrypting.
type fakeEncrypter struct{}

func (fakeEncrypter) Encrypt(plaintext string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(plaintext)), nil
}

func (fakeEncrypter) Decrypt(ciphertext string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(ciphertext)
	return string(b), err
}

func (fakeEncrypter) EncryptBytesToString(data []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(data), nil
}

func (fakeEncrypter) DecryptStringToBytes(blob string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(blob)
}

func (fakeEncrypter) HashPassword(password string) (string, error) { return password, nil }

func (fakeEncrypter) CheckPasswordHash(password, hash string) bool { return password == hash }

func newTestUseCase(repo repository.CacheRepository) strategy.UseCase {
	return New(repo, fakeEncrypter{}, log.Init(log.ZapConfig{Level: "fatal", Mode: "production"}))
}

func TestGet(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("returns default when nothing is stored", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		s, err := uc.Get(context.Background(), sc)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if s.ImpressionRatio != 0.9 || s.ExpressionRatio != 0.1 {
			t.Errorf("default ratio = %v/%v, want 0.9/0.1", s.ImpressionRatio, s.ExpressionRatio)
		}
		if len(s.WeeklyExpressionDays) != 2 || s.WeeklyExpressionDays[0] != 0 || s.WeeklyExpressionDays[1] != 6 {
			t.Errorf("default expression days = %v, want [0 6]", s.WeeklyExpressionDays)
		}
		if !s.CommentStrategy.Enabled || s.CommentStrategy.MaxCommentsPerDay != 5 {
			t.Errorf("default comment strategy = %+v", s.CommentStrategy)
		}
	})

	t.Run("maps storage failure", func(t *testing.T) {
		repo := newFakeCacheRepo()
		repo.err = errors.New("redis down")
		uc := newTestUseCase(repo)
		_, err := uc.Get(context.Background(), sc)
		if !errors.Is(err, strategy.ErrStorageFailed) {
			t.Errorf("err = %v, want ErrStorageFailed", err)
		}
	})
}

func TestUpdateRatio(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"in range", 0.85, 0.85},
		{"below minimum clamps up", 0.4, 0.5},
		{"above maximum clamps down", 1.2, 1.0},
		{"at minimum", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCacheRepo()
			uc := newTestUseCase(repo)
			s, err := uc.UpdateRatio(context.Background(), sc, tt.ratio)
			if err != nil {
				t.Fatalf("UpdateRatio failed: %v", err)
			}
			if s.ImpressionRatio != tt.want {
				t.Errorf("impression ratio = %v, want %v", s.ImpressionRatio, tt.want)
			}
			if got := s.ImpressionRatio + s.ExpressionRatio; got != 1 {
				t.Errorf("ratio sum = %v, want 1", got)
			}
			if repo.stored[sc.UserID].ImpressionRatio != tt.want {
				t.Errorf("stored ratio = %v, want %v", repo.stored[sc.UserID].ImpressionRatio, tt.want)
			}
		})
	}
}

func TestUpdateExpressionDays(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects out of range days", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		_, err := uc.UpdateExpressionDays(context.Background(), sc, []int{0, 7})
		if !errors.Is(err, strategy.ErrInvalidDays) {
			t.Errorf("err = %v, want ErrInvalidDays", err)
		}
	})

	t.Run("deduplicates days", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		s, err := uc.UpdateExpressionDays(context.Background(), sc, []int{3, 3, 5})
		if err != nil {
			t.Fatalf("UpdateExpressionDays failed: %v", err)
		}
		if len(s.WeeklyExpressionDays) != 2 {
			t.Errorf("days = %v, want [3 5]", s.WeeklyExpressionDays)
		}
	})

	t.Run("allows empty days", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		s, err := uc.UpdateExpressionDays(context.Background(), sc, []int{})
		if err != nil {
			t.Fatalf("UpdateExpressionDays failed: %v", err)
		}
		if len(s.WeeklyExpressionDays) != 0 {
			t.Errorf("days = %v, want empty", s.WeeklyExpressionDays)
		}
	})
}

func TestUpdateCommentStrategy(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("merges only supplied fields", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		enabled := false
		maxPerDay := 3
		s, err := uc.UpdateCommentStrategy(context.Background(), sc, strategy.UpdateCommentStrategyInput{
			Enabled:           &enabled,
			MaxCommentsPerDay: &maxPerDay,
		})
		if err != nil {
			t.Fatalf("UpdateCommentStrategy failed: %v", err)
		}
		if s.CommentStrategy.Enabled {
			t.Error("enabled should be false")
		}
		if s.CommentStrategy.MaxCommentsPerDay != 3 {
			t.Errorf("max per day = %d, want 3", s.CommentStrategy.MaxCommentsPerDay)
		}
		// untouched fields keep defaults
		if !s.CommentStrategy.TargetTrendingPosts || !s.CommentStrategy.AvoidNegative {
			t.Errorf("untouched fields changed: %+v", s.CommentStrategy)
		}
	})

	t.Run("rejects negative max", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		neg := -1
		_, err := uc.UpdateCommentStrategy(context.Background(), sc, strategy.UpdateCommentStrategyInput{
			MaxCommentsPerDay: &neg,
		})
		if !errors.Is(err, strategy.ErrInvalidComment) {
			t.Errorf("err = %v, want ErrInvalidComment", err)
		}
	})
}

func TestHealth(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("evaluates the stored ratio by default", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		health, err := uc.Health(context.Background(), sc, nil)
		if err != nil {
			t.Fatalf("Health failed: %v", err)
		}
		if health.Status != model.RatioHealthy {
			t.Errorf("status = %s, want healthy for the default 0.9", health.Status)
		}
	})

	t.Run("ratio override skips the stored strategy", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		ratio := 0.60
		health, err := uc.Health(context.Background(), sc, &ratio)
		if err != nil {
			t.Fatalf("Health failed: %v", err)
		}
		if health.Status != model.RatioCritical {
			t.Errorf("status = %s, want critical for 0.60", health.Status)
		}
	})
}

func TestEvaluateRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  model.RatioHealthStatus
	}{
		{"healthy lower bound", 0.80, model.RatioHealthy},
		{"healthy upper bound", 0.95, model.RatioHealthy},
		{"above healthy band", 0.96, model.RatioWarning},
		{"pure impression", 1.0, model.RatioWarning},
		{"just below critical line", 0.69, model.RatioCritical},
		{"acceptable band", 0.75, model.RatioAcceptable},
		{"acceptable lower bound", 0.70, model.RatioAcceptable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateRatio(tt.ratio)
			if got.Status != tt.want {
				t.Errorf("evaluateRatio(%v) = %s, want %s", tt.ratio, got.Status, tt.want)
			}
			if got.Message == "" {
				t.Errorf("evaluateRatio(%v) has empty message", tt.ratio)
			}
		})
	}
}

func TestBuildSchedule(t *testing.T) {
	// 2024-01-07 is a Sunday.
	start := time.Date(2024, 1, 7, 15, 30, 0, 0, time.UTC)
	s := strategy.DefaultStrategy()

	entries := buildSchedule(start, s)
	if len(entries) != 7 {
		t.Fatalf("schedule = %d entries, want 7", len(entries))
	}

	wantLabels := []string{"日", "月", "火", "水", "木", "金", "土"}
	for i, e := range entries {
		if e.DayOfWeek != i {
			t.Errorf("entry %d day of week = %d, want %d", i, e.DayOfWeek, i)
		}
		if e.DayLabel != wantLabels[i] {
			t.Errorf("entry %d label = %s, want %s", i, e.DayLabel, wantLabels[i])
		}
		wantDate := time.Date(2024, 1, 7+i, 0, 0, 0, 0, time.UTC)
		if !e.Date.Equal(wantDate) {
			t.Errorf("entry %d date = %v, want %v", i, e.Date, wantDate)
		}
	}

	// Default expression days are Sunday and Saturday.
	if !entries[0].IsExpressionDay || entries[0].RecommendedMode != model.ModeExpression {
		t.Errorf("Sunday should be an expression day: %+v", entries[0])
	}
	if !entries[6].IsExpressionDay || entries[6].RecommendedMode != model.ModeExpression {
		t.Errorf("Saturday should be an expression day: %+v", entries[6])
	}
	for i := 1; i <= 5; i++ {
		if entries[i].IsExpressionDay || entries[i].RecommendedMode != model.ModeImpression {
			t.Errorf("weekday %d should be an impression day: %+v", i, entries[i])
		}
	}
}

func TestExportImport(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("round trip preserves the strategy", func(t *testing.T) {
		repo := newFakeCacheRepo()
		uc := newTestUseCase(repo)

		if _, err := uc.UpdateRatio(context.Background(), sc, 0.85); err != nil {
			t.Fatalf("UpdateRatio failed: %v", err)
		}

		blob, err := uc.Export(context.Background(), sc)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		other := model.Scope{UserID: "user-2"}
		s, err := uc.Import(context.Background(), other, blob)
		if err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		if s.ImpressionRatio != 0.85 {
			t.Errorf("imported ratio = %v, want 0.85", s.ImpressionRatio)
		}
		if _, ok := repo.stored[other.UserID]; !ok {
			t.Error("imported strategy was not stored")
		}
	})

	t.Run("rejects garbage blobs", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		for _, blob := range []string{"not base64 %%%", base64.StdEncoding.EncodeToString([]byte("not json"))} {
			_, err := uc.Import(context.Background(), sc, blob)
			if !errors.Is(err, strategy.ErrInvalidBlob) {
				t.Errorf("Import(%q) err = %v, want ErrInvalidBlob", blob, err)
			}
		}
	})

	t.Run("import re-derives the ratio invariant", func(t *testing.T) {
		uc := newTestUseCase(newFakeCacheRepo())
		tampered, _ := fakeEncrypter{}.EncryptBytesToString([]byte(`{"impression_ratio":0.2,"expression_ratio":0.9}`))
		s, err := uc.Import(context.Background(), sc, tampered)
		if err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		if s.ImpressionRatio != 0.5 || s.ExpressionRatio != 0.5 {
			t.Errorf("ratios = %v/%v, want 0.5/0.5", s.ImpressionRatio, s.ExpressionRatio)
		}
	})
}
