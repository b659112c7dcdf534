package models

import "time"

// ScoreFactors is the per-factor breakdown behind a personalization score.
// Every value is in [0,100] except TrendingBoost, which is 0 or 20.
type ScoreFactors struct {
	InterestMatch  float64 `json:"interestMatch"`
	BehaviorMatch  float64 `json:"behaviorMatch"`
	SentimentMatch float64 `json:"sentimentMatch"`
	TimeRelevance  float64 `json:"timeRelevance"`
	QualityScore   float64 `json:"qualityScore"`
	TrendingBoost  float64 `json:"trendingBoost"`
}

// MatchedInterests are the literal subsets of the user's declared interests
// that applied to an article. Used for explanation, never for ranking.
type MatchedInterests struct {
	Tickers []string `json:"tickers"`
	Sectors []string `json:"sectors"`
	Topics  []string `json:"topics"`
}

// PersonalizationScore is the engine output for one (article, user) pair.
type PersonalizationScore struct {
	Score            int              `json:"score"`
	Reason           string           `json:"reason"`
	MatchedInterests MatchedInterests `json:"matchedInterests"`
	Factors          ScoreFactors     `json:"factors"`
}

// ScoredArticle pairs an article with its personalization score.
type ScoredArticle struct {
	Article         Article              `json:"article"`
	Personalization PersonalizationScore `json:"personalization"`
}

// TrendingSnapshot is one update from the trending-ticker feed.
type TrendingSnapshot struct {
	Tickers []string
	At      time.Time
}
