package scoring

import "NewsRank/internal/domain/models"

// sentimentScale maps normalized sentiment labels to a 0-100 bullishness
// value. Unknown labels fall back to neutral 50.
var sentimentScale = map[string]float64{
	"very_bullish": 100,
	"bullish":      80,
	"positive":     70,
	"neutral":      50,
	"negative":     30,
	"bearish":      20,
	"very_bearish": 0,
}

const sentimentNeutral = 50.0

// sentimentMatchScore scores how well the article sentiment fits the user's
// bias. A bullish bias takes the scale value directly; a bearish bias
// inverts it; balanced (or missing) bias is always neutral.
func sentimentMatchScore(a models.Article, prefs models.UserPreferences) float64 {
	if a.Sentiment == nil {
		return sentimentNeutral
	}

	v, ok := sentimentScale[a.Sentiment.Label()]
	if !ok {
		v = sentimentNeutral
	}

	switch prefs.SentimentBias {
	case models.BiasBullish:
		return v
	case models.BiasBearish:
		return 100 - v
	default:
		return sentimentNeutral
	}
}
