package models

// Sentiment bias preferences.
const (
	BiasBullish  = "bullish"
	BiasBalanced = "balanced"
	BiasBearish  = "bearish"
)

// Trading time horizons.
const (
	HorizonDayTrading = "day_trading"
	HorizonShortTerm  = "short_term"
	HorizonMediumTerm = "medium_term"
	HorizonLongTerm   = "long_term"
)

// InterestWeights are optional per-name weights (0-100) for declared interests.
type InterestWeights struct {
	Tickers map[string]int `json:"tickers,omitempty"`
	Sectors map[string]int `json:"sectors,omitempty"`
	Topics  map[string]int `json:"topics,omitempty"`
}

// UserInterests are the user's declared interest dimensions. All lists are
// optional; an empty dimension is simply not scored against.
type UserInterests struct {
	Tickers     []string         `json:"tickers,omitempty"`
	Sectors     []string         `json:"sectors,omitempty"`
	Topics      []string         `json:"topics,omitempty"`
	MarketTypes []string         `json:"marketTypes,omitempty"`
	Weights     *InterestWeights `json:"weights,omitempty"`
}

// UserPreferences hold scoring preferences.
type UserPreferences struct {
	SentimentBias string `json:"sentimentBias,omitempty"`
	TimeHorizon   string `json:"timeHorizon,omitempty"`
}

// UserBehavior is observed engagement history. Optional; the behavior
// scorer returns its neutral value when absent (cold start).
type UserBehavior struct {
	TickerClicks  map[string]int `json:"tickerClicks,omitempty"`
	CategoryViews map[string]int `json:"categoryViews,omitempty"`
	LikedArticles []string       `json:"likedArticles,omitempty"`
}

// UserProfile bundles everything the profile service knows about a user.
type UserProfile struct {
	UserID      string          `json:"userId"`
	Interests   UserInterests   `json:"interests"`
	Preferences UserPreferences `json:"preferences"`
	Behavior    *UserBehavior   `json:"behavior,omitempty"`
}
