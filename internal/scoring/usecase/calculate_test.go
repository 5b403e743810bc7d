package usecase

import (
	"context"
	"testing"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring"
	"engagement-srv/internal/scoring/repository"
	"engagement-srv/pkg/log"
)

type fakeRepo struct {
	inserted []repository.InsertHistoryOptions
	entries  []model.ScoreHistoryEntry
	listErr  error
}

func (r *fakeRepo) InsertHistory(_ context.Context, opt repository.InsertHistoryOptions) error {
	r.inserted = append(r.inserted, opt)
	return nil
}

func (r *fakeRepo) ListHistory(_ context.Context, _ repository.ListHistoryOptions) ([]model.ScoreHistoryEntry, error) {
	return r.entries, r.listErr
}

type fakeProducer struct {
	published []model.PlatformScore
	err       error
}

func (p *fakeProducer) PublishScoreCalculated(_ context.Context, _ string, score model.PlatformScore) error {
	p.published = append(p.published, score)
	return p.err
}

func newTestUseCase(repo repository.PostgresRepository, producer scoring.EventProducer) scoring.UseCase {
	return New(repo, producer, log.Init(log.ZapConfig{Level: "fatal", Mode: "production"}))
}

func intPtr(v int) *int { return &v }

func zeroBehavior() scoring.BehaviorInput {
	zero := 0
	return scoring.BehaviorInput{
		LikesGiven:      &zero,
		CommentsGiven:   &zero,
		SharesGiven:     &zero,
		RepliesReceived: &zero,

		PostsThisWeek:   &zero,
		PostsLastWeek:   &zero,
		AvgPostsPerWeek: &zero,
		PostTimes:       []int{},

		TrendingHashtagsUsed:  &zero,
		TrendingTopicsEngaged: &zero,
		EarlyTrendEngagement:  &zero,

		FollowersGained:  &zero,
		MentionsReceived: &zero,
		SavedByOthers:    &zero,
		ProfileVisits:    &zero,
	}
}

func TestCalculate(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects invalid platform", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		_, err := uc.Calculate(context.Background(), sc, scoring.CalculateInput{Platform: "myspace"})
		if err != scoring.ErrInvalidPlatform {
			t.Errorf("err = %v, want ErrInvalidPlatform", err)
		}
	})

	t.Run("all-zero behavior scores zero and ranks D", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		out, err := uc.Calculate(context.Background(), sc, scoring.CalculateInput{
			Platform: model.PlatformTwitter,
			Behavior: zeroBehavior(),
		})
		if err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
		if out.Score.OverallScore != 0 {
			t.Errorf("overall = %d, want 0", out.Score.OverallScore)
		}
		if out.Rank.Rank != "D" {
			t.Errorf("rank = %s, want D", out.Rank.Rank)
		}
	})

	t.Run("overall is the weighted sum of sub-scores", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		b := zeroBehavior()
		b.LikesGiven = intPtr(50)
		b.CommentsGiven = intPtr(20)
		b.PostsThisWeek = intPtr(5)
		b.PostsLastWeek = intPtr(5)

		out, err := uc.Calculate(context.Background(), sc, scoring.CalculateInput{
			Platform: model.PlatformInstagram,
			Behavior: b,
		})
		if err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}

		// engagement: likes 25 + comments 30 + reply 12.5 = 68
		// consistency: stability 40 + frequency 30 = 70
		if out.Score.EngagementScore != 68 {
			t.Errorf("engagement = %d, want 68", out.Score.EngagementScore)
		}
		if out.Score.ConsistencyScore != 70 {
			t.Errorf("consistency = %d, want 70", out.Score.ConsistencyScore)
		}
		// overall = round(0.35*68 + 0.25*70) = round(41.3) = 41
		if out.Score.OverallScore != 41 {
			t.Errorf("overall = %d, want 41", out.Score.OverallScore)
		}
	})

	t.Run("publishes the calculation", func(t *testing.T) {
		producer := &fakeProducer{}
		uc := newTestUseCase(&fakeRepo{}, producer)
		out, err := uc.Calculate(context.Background(), sc, scoring.CalculateInput{
			Platform: model.PlatformTikTok,
			Behavior: zeroBehavior(),
		})
		if err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
		if len(producer.published) != 1 {
			t.Fatalf("published = %d messages, want 1", len(producer.published))
		}
		if producer.published[0].ID != out.Score.ID {
			t.Errorf("published score ID = %s, want %s", producer.published[0].ID, out.Score.ID)
		}
	})

	t.Run("missing behavior fields are sampled", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		out, err := uc.Calculate(context.Background(), sc, scoring.CalculateInput{
			Platform: model.PlatformTwitter,
		})
		if err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
		if out.Behavior.LikesGiven < 10 || out.Behavior.LikesGiven > 80 {
			t.Errorf("sampled likes = %d, want within [10,80]", out.Behavior.LikesGiven)
		}
		if len(out.Behavior.PostTimes) != out.Behavior.PostsThisWeek {
			t.Errorf("sampled %d post times for %d posts", len(out.Behavior.PostTimes), out.Behavior.PostsThisWeek)
		}
		for _, h := range out.Behavior.PostTimes {
			if h < 0 || h > 23 {
				t.Errorf("sampled post hour %d out of range", h)
			}
		}
	})

	t.Run("synthesizes a seven day history ending at the current score", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		b := zeroBehavior()
		b.LikesGiven = intPtr(50)
		b.CommentsGiven = intPtr(20)

		out, err := uc.Calculate(context.Background(), sc, scoring.CalculateInput{
			Platform: model.PlatformTwitter,
			Behavior: b,
		})
		if err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
		if len(out.History) != 7 {
			t.Fatalf("history = %d entries, want 7", len(out.History))
		}
		last := out.History[len(out.History)-1]
		if last.OverallScore != out.Score.OverallScore {
			t.Errorf("latest history entry = %d, want current score %d", last.OverallScore, out.Score.OverallScore)
		}
		for i, e := range out.History {
			if e.OverallScore < 0 {
				t.Errorf("history[%d] = %d, want >= 0", i, e.OverallScore)
			}
		}
	})
}

func TestHistory(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects invalid platform", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		_, err := uc.History(context.Background(), sc, scoring.HistoryInput{Platform: "friendster", Days: 7})
		if err != scoring.ErrInvalidPlatform {
			t.Errorf("err = %v, want ErrInvalidPlatform", err)
		}
	})

	t.Run("rejects out of range window", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeProducer{})
		for _, days := range []int{0, -1, 91} {
			_, err := uc.History(context.Background(), sc, scoring.HistoryInput{Platform: model.PlatformTwitter, Days: days})
			if err != scoring.ErrInvalidDays {
				t.Errorf("History(days=%d) err = %v, want ErrInvalidDays", days, err)
			}
		}
	})

	t.Run("returns stored entries", func(t *testing.T) {
		repo := &fakeRepo{entries: []model.ScoreHistoryEntry{{OverallScore: 42}}}
		uc := newTestUseCase(repo, &fakeProducer{})
		entries, err := uc.History(context.Background(), sc, scoring.HistoryInput{Platform: model.PlatformTwitter, Days: 7})
		if err != nil {
			t.Fatalf("History failed: %v", err)
		}
		if len(entries) != 1 || entries[0].OverallScore != 42 {
			t.Errorf("entries = %+v, want one entry with score 42", entries)
		}
	})
}

func TestBuildRecommendations(t *testing.T) {
	lowScore := model.PlatformScore{
		EngagementScore:  10,
		ConsistencyScore: 10,
		TrendScore:       10,
		CommunityScore:   10,
	}

	t.Run("inactive account triggers every rule", func(t *testing.T) {
		recs := buildRecommendations(lowScore, model.UserBehaviorData{})
		if len(recs) != 6 {
			t.Fatalf("recommendations = %d, want 6", len(recs))
		}
		// high priority first, rule order preserved within a priority
		var lastPriority int
		for i, rec := range recs {
			p := priorityOrder[rec.Priority]
			if p < lastPriority {
				t.Errorf("recommendation %d (%s) out of priority order", i, rec.Priority)
			}
			lastPriority = p
			if rec.ExpectedImpact <= 0 || rec.ExpectedImpact > 10 {
				t.Errorf("recommendation %d impact = %v, want within (0,10]", i, rec.ExpectedImpact)
			}
			if len(rec.ActionItems) == 0 {
				t.Errorf("recommendation %d has no action items", i)
			}
		}
	})

	t.Run("healthy account gets no recommendations", func(t *testing.T) {
		healthy := model.PlatformScore{
			EngagementScore:  90,
			ConsistencyScore: 90,
			TrendScore:       90,
			CommunityScore:   90,
		}
		recs := buildRecommendations(healthy, model.UserBehaviorData{
			LikesGiven:    50,
			CommentsGiven: 20,
			PostsThisWeek: 5,
			PostTimes:     []int{7, 9, 20},
			SavedByOthers: 10,
		})
		if len(recs) != 0 {
			t.Errorf("recommendations = %d, want 0", len(recs))
		}
	})

	t.Run("high sub-scores suppress behavior-only triggers", func(t *testing.T) {
		healthy := model.PlatformScore{
			EngagementScore:  90,
			ConsistencyScore: 90,
			TrendScore:       90,
			CommunityScore:   90,
		}
		// Few likes and off-hour posting would fire the likes and golden-hour
		// rules, but both are gated on their sub-score being below 70.
		recs := buildRecommendations(healthy, model.UserBehaviorData{
			LikesGiven:    29,
			CommentsGiven: 20,
			PostsThisWeek: 5,
			PostTimes:     []int{2, 3, 4},
			SavedByOthers: 10,
		})
		if len(recs) != 0 {
			t.Errorf("recommendations = %d, want 0", len(recs))
		}
	})

	t.Run("golden hour rule fires only with low consistency", func(t *testing.T) {
		weakConsistency := model.PlatformScore{
			EngagementScore:  90,
			ConsistencyScore: 40,
			TrendScore:       90,
			CommunityScore:   90,
		}
		recs := buildRecommendations(weakConsistency, model.UserBehaviorData{
			LikesGiven:    50,
			CommentsGiven: 20,
			PostsThisWeek: 5,
			PostTimes:     []int{2, 3, 4},
			SavedByOthers: 10,
		})
		if len(recs) != 1 {
			t.Fatalf("recommendations = %d, want 1", len(recs))
		}
		if recs[0].Category != model.CategoryConsistency || recs[0].Title != "ゴールデンタイムに投稿しましょう" {
			t.Errorf("unexpected recommendation: %+v", recs[0])
		}
	})

	t.Run("likes rule fires only with low engagement", func(t *testing.T) {
		weakEngagement := model.PlatformScore{
			EngagementScore:  40,
			ConsistencyScore: 90,
			TrendScore:       90,
			CommunityScore:   90,
		}
		recs := buildRecommendations(weakEngagement, model.UserBehaviorData{
			LikesGiven:    29,
			CommentsGiven: 20,
			PostsThisWeek: 5,
			PostTimes:     []int{7, 9, 20},
			SavedByOthers: 10,
		})
		if len(recs) != 1 {
			t.Fatalf("recommendations = %d, want 1", len(recs))
		}
		if recs[0].Category != model.CategoryEngagement || recs[0].Title != "いいねをもっと活用しましょう" {
			t.Errorf("unexpected recommendation: %+v", recs[0])
		}
	})
}
