package repository

import (
	"time"

	"engagement-srv/internal/model"
)

type InsertHistoryOptions struct {
	ID               string
	UserID           string
	Platform         model.Platform
	OverallScore     int
	EngagementScore  int
	ConsistencyScore int
	TrendScore       int
	CommunityScore   int
	CalculatedAt     time.Time
}

type ListHistoryOptions struct {
	UserID   string
	Platform model.Platform
	Since    time.Time
	Limit    int
}
