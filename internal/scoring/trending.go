package scoring

import (
	"strings"

	"NewsRank/internal/domain/models"
)

// trendingBoostValue is the flat bonus for referencing a trending ticker.
const trendingBoostValue = 20.0

// trendingBoost returns 20 when any article ticker is in the trending set
// (case-insensitive), else 0. No trending set means no boost.
func trendingBoost(a models.Article, trending []string) float64 {
	if len(trending) == 0 || len(a.Tickers) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(trending))
	for _, t := range trending {
		set[strings.ToUpper(t)] = struct{}{}
	}
	for _, t := range a.Tickers {
		if _, ok := set[strings.ToUpper(t)]; ok {
			return trendingBoostValue
		}
	}
	return 0
}
