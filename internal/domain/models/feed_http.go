package models

import "time"

// Requests for feed HTTP endpoints. Defined in domain for consistency and reuse.

type FeedRequest struct {
	UserID   string `query:"user_id" json:"user_id" validate:"required"`
	Limit    int    `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=500"`
	MinScore int    `query:"min_score" json:"min_score" default:"30" validate:"gte=0,lte=100"`
}

type FeedResponse struct {
	UserID          string          `json:"userId"`
	Articles        []ScoredArticle `json:"articles"`
	Total           int             `json:"total"`
	TrendingTickers []string        `json:"trendingTickers,omitempty"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

type ScoreRequest struct {
	Article         Article         `json:"article" validate:"required"`
	Interests       UserInterests   `json:"interests"`
	Preferences     UserPreferences `json:"preferences"`
	Behavior        *UserBehavior   `json:"behavior,omitempty"`
	TrendingTickers []string        `json:"trendingTickers,omitempty"`
}
