package usecase

import (
	"context"
	"encoding/json"

	"engagement-srv/internal/model"
	"engagement-srv/internal/strategy"
)

// Export serializes the current strategy into an encrypted blob so users can
// move settings between devices without an account link.
func (uc implUseCase) Export(ctx context.Context, sc model.Scope) (string, error) {
	s, err := uc.Get(ctx, sc)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(s)
	if err != nil {
		uc.l.Errorf(ctx, "strategy.usecase.Export.Marshal: %v", err)
		return "", strategy.ErrStorageFailed
	}

	blob, err := uc.enc.EncryptBytesToString(data)
	if err != nil {
		uc.l.Errorf(ctx, "strategy.usecase.Export.Encrypt: %v", err)
		return "", strategy.ErrStorageFailed
	}

	return blob, nil
}

// Import decrypts an exported blob, normalizes it, and stores it as the
// user's strategy.
func (uc implUseCase) Import(ctx context.Context, sc model.Scope, blob string) (model.EngagementStrategy, error) {
	data, err := uc.enc.DecryptStringToBytes(blob)
	if err != nil {
		uc.l.Warnf(ctx, "strategy.usecase.Import.Decrypt: %v", err)
		return model.EngagementStrategy{}, strategy.ErrInvalidBlob
	}

	var s model.EngagementStrategy
	if err := json.Unmarshal(data, &s); err != nil {
		uc.l.Warnf(ctx, "strategy.usecase.Import.Unmarshal: %v", err)
		return model.EngagementStrategy{}, strategy.ErrInvalidBlob
	}

	for _, d := range s.WeeklyExpressionDays {
		if d < 0 || d > 6 {
			return model.EngagementStrategy{}, strategy.ErrInvalidBlob
		}
	}
	if s.CommentStrategy.MaxCommentsPerDay < 0 {
		return model.EngagementStrategy{}, strategy.ErrInvalidBlob
	}

	// Re-derive the ratio pair so a tampered blob cannot break the invariant.
	s.ImpressionRatio = clampRatio(s.ImpressionRatio)
	s.ExpressionRatio = 1 - s.ImpressionRatio

	return uc.save(ctx, sc.UserID, s)
}
