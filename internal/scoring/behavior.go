package scoring

import (
	"math"
	"strings"

	"NewsRank/internal/domain/models"
)

// behaviorNeutral is the cold-start score when no behavior is available.
const behaviorNeutral = 50.0

const (
	clickCap        = 40.0
	clickPerPoint   = 5.0
	viewCap         = 30.0
	viewPerPoint    = 3.0
	engagementBoost = 20.0
)

// behaviorMatchScore scores an article against observed user behavior.
// The result is the mean of whichever signals triggered, in [0,100].
func behaviorMatchScore(a models.Article, b *models.UserBehavior) float64 {
	if b == nil {
		return behaviorNeutral
	}

	var sum float64
	factors := 0

	if len(b.TickerClicks) > 0 && len(a.Tickers) > 0 {
		clicks := 0
		norm := make(map[string]int, len(b.TickerClicks))
		for k, v := range b.TickerClicks {
			norm[strings.ToUpper(k)] += v
		}
		for _, t := range a.Tickers {
			clicks += norm[strings.ToUpper(t)]
		}
		if clicks > 0 {
			sum += math.Min(clickCap, float64(clicks)*clickPerPoint)
			factors++
		}
	}

	if a.MarketType != "" {
		if views := b.CategoryViews[a.MarketType]; views > 0 {
			sum += math.Min(viewCap, float64(views)*viewPerPoint)
			factors++
		}
	}

	// Flat engagement boost. This does not compare the article with the
	// liked articles' content; it is a known approximation kept for
	// behavioral parity with the scoring contract.
	if a.Sentiment != nil && len(b.LikedArticles) > 0 {
		sum += engagementBoost
		factors++
	}

	if factors == 0 {
		return behaviorNeutral
	}
	return clamp(sum/float64(factors), 0, 100)
}
