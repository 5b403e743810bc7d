package scoring

import "engagement-srv/internal/model"

// GetRank maps an overall score to its letter grade.
func GetRank(score int) model.ScoreRank {
	switch {
	case score >= 90:
		return model.ScoreRank{Rank: "S", Color: "#FFD700", Label: "トップインフルエンサー級"}
	case score >= 80:
		return model.ScoreRank{Rank: "A", Color: "#C0C0C0", Label: "人気アカウント"}
	case score >= 70:
		return model.ScoreRank{Rank: "B", Color: "#CD7F32", Label: "成長中アカウント"}
	case score >= 50:
		return model.ScoreRank{Rank: "C", Color: "#4A90D9", Label: "平均的アカウント"}
	default:
		return model.ScoreRank{Rank: "D", Color: "#9B9B9B", Label: "これからのアカウント"}
	}
}
