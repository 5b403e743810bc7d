package usecase

import (
	"math/rand"

	"engagement-srv/internal/model"
)

// maxHashtags caps the analysis list regardless of how many tags the topics
// carry.
const maxHashtags = 20

// analyzeHashtags flattens the topics' hashtags into display metrics.
// Popularity and competition are illustrative, not measured.
func analyzeHashtags(topics []model.TrendingTopic) []model.HashtagAnalysis {
	seen := map[string]bool{}
	var analyses []model.HashtagAnalysis

	for _, t := range topics {
		for _, tag := range t.RelatedHashtags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true

			popularity := 40 + rand.Intn(61)
			analyses = append(analyses, model.HashtagAnalysis{
				Hashtag:        tag,
				Popularity:     popularity,
				Competition:    competitionFor(popularity),
				EstimatedReach: popularity*10000 + rand.Intn(50000),
			})
			if len(analyses) == maxHashtags {
				return analyses
			}
		}
	}

	return analyses
}

func competitionFor(popularity int) string {
	switch {
	case popularity >= 85:
		return "high"
	case popularity >= 60:
		return "medium"
	default:
		return "low"
	}
}
