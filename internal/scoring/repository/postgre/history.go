package postgre

import (
	"context"
	"fmt"

	"engagement-srv/internal/model"
	"engagement-srv/internal/scoring/repository"
)

func (r *implRepository) InsertHistory(ctx context.Context, opt repository.InsertHistoryOptions) error {
	query := `
		INSERT INTO engagement.score_history (id, user_id, platform, overall_score, engagement_score, consistency_score, trend_score, community_score, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.UserID, opt.Platform,
		opt.OverallScore, opt.EngagementScore, opt.ConsistencyScore,
		opt.TrendScore, opt.CommunityScore,
		opt.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("InsertHistory: %w", err)
	}

	return nil
}

func (r *implRepository) ListHistory(ctx context.Context, opt repository.ListHistoryOptions) ([]model.ScoreHistoryEntry, error) {
	query := `
		SELECT calculated_at, overall_score, engagement_score, consistency_score, trend_score, community_score
		FROM engagement.score_history
		WHERE user_id = $1 AND platform = $2 AND calculated_at >= $3
		ORDER BY calculated_at DESC
	`

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Platform, opt.Since)
	if err != nil {
		return nil, fmt.Errorf("ListHistory: %w", err)
	}
	defer rows.Close()

	var entries []model.ScoreHistoryEntry
	for rows.Next() {
		var e model.ScoreHistoryEntry
		if err := rows.Scan(
			&e.Date, &e.OverallScore, &e.EngagementScore,
			&e.ConsistencyScore, &e.TrendScore, &e.CommunityScore,
		); err != nil {
			return nil, fmt.Errorf("ListHistory scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListHistory rows: %w", err)
	}

	return entries, nil
}
