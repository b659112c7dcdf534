package scoring

import (
	"strings"

	"NewsRank/internal/domain/models"
)

// Per-dimension caps of the interest match. A dimension only contributes to
// the max-possible denominator when the user declared interests in it, so a
// user with no ticker interests is not penalized for ticker mismatch.
const (
	tickerDimCap = 40.0
	sectorDimCap = 25.0
	topicDimCap  = 25.0
	marketDimCap = 10.0
)

// interestMatchScore computes the weighted interest match in [0,100].
func interestMatchScore(a models.Article, ui models.UserInterests) float64 {
	var num, den float64

	if len(ui.Tickers) > 0 {
		den += tickerDimCap
		matched, matchedArticle := matchTickers(a.Tickers, ui.Tickers)
		if len(matched) > 0 {
			if w := tickerWeights(ui); len(w) > 0 {
				num += weightedShare(matched, w, tickerDimCap)
			} else {
				num += float64(matchedArticle) / float64(len(a.Tickers)) * tickerDimCap
			}
		}
	}

	if len(ui.Sectors) > 0 {
		den += sectorDimCap
		if sector, ok := inferSector(a.Title, a.Description); ok {
			matched := matchSectors(sector, ui.Sectors)
			if len(matched) > 0 {
				if w := sectorWeights(ui); len(w) > 0 {
					num += weightedShare(matched, w, sectorDimCap)
				} else {
					num += sectorDimCap
				}
			}
		}
	}

	if len(ui.Topics) > 0 {
		den += topicDimCap
		matched := matchTopics(a.Title, a.Description, ui.Topics)
		if len(matched) > 0 {
			if w := topicWeights(ui); len(w) > 0 {
				num += weightedShare(matched, w, topicDimCap)
			} else {
				num += float64(len(matched)) / float64(len(ui.Topics)) * topicDimCap
			}
		}
	}

	if len(ui.MarketTypes) > 0 {
		den += marketDimCap
		for _, mt := range ui.MarketTypes {
			if strings.EqualFold(mt, a.MarketType) {
				num += marketDimCap
				break
			}
		}
	}

	if den == 0 {
		return 0
	}
	return clamp(100*num/den, 0, 100)
}

// extractMatchedInterests re-runs the matching logic to expose the literal
// matched subsets of the user's declared interests. Explanation only; the
// numeric score never reads this.
func extractMatchedInterests(a models.Article, ui models.UserInterests) models.MatchedInterests {
	tickers, _ := matchTickers(a.Tickers, ui.Tickers)
	var sectors []string
	if sector, ok := inferSector(a.Title, a.Description); ok {
		sectors = matchSectors(sector, ui.Sectors)
	}
	topics := matchTopics(a.Title, a.Description, ui.Topics)

	return models.MatchedInterests{
		Tickers: nonNil(tickers),
		Sectors: nonNil(sectors),
		Topics:  nonNil(topics),
	}
}

// matchTickers returns the subset of user tickers referenced by the article
// (user-declared casing preserved) and the number of article tickers that
// matched. Comparisons are case-insensitive.
func matchTickers(articleTickers, userTickers []string) ([]string, int) {
	if len(articleTickers) == 0 || len(userTickers) == 0 {
		return nil, 0
	}
	bySymbol := make(map[string]string, len(userTickers))
	for _, t := range userTickers {
		bySymbol[strings.ToUpper(t)] = t
	}

	var matched []string
	seen := make(map[string]bool, len(articleTickers))
	matchedArticle := 0
	for _, at := range articleTickers {
		orig, ok := bySymbol[strings.ToUpper(at)]
		if !ok {
			continue
		}
		matchedArticle++
		if !seen[orig] {
			seen[orig] = true
			matched = append(matched, orig)
		}
	}
	return matched, matchedArticle
}

// matchSectors returns the user sectors matching the inferred article sector
// by case-insensitive equality or substring containment in either direction.
func matchSectors(sector string, userSectors []string) []string {
	s := strings.ToLower(sector)
	var matched []string
	for _, us := range userSectors {
		u := strings.ToLower(strings.TrimSpace(us))
		if u == "" {
			continue
		}
		if u == s || strings.Contains(u, s) || strings.Contains(s, u) {
			matched = append(matched, us)
		}
	}
	return matched
}

// matchTopics returns the user topics whose lowercase form appears in the
// article title + description.
func matchTopics(title, description string, topics []string) []string {
	if len(topics) == 0 {
		return nil
	}
	text := strings.ToLower(title + " " + description)
	var matched []string
	for _, t := range topics {
		lt := strings.ToLower(strings.TrimSpace(t))
		if lt != "" && strings.Contains(text, lt) {
			matched = append(matched, t)
		}
	}
	return matched
}

// weightedShare averages (weight/100)*cap over matched names. A declared
// interest with no explicit weight counts at full weight.
func weightedShare(matched []string, weights map[string]int, cap float64) float64 {
	if len(matched) == 0 {
		return 0
	}
	var sum float64
	for _, name := range matched {
		w, ok := weights[name]
		if !ok {
			w = 100
		}
		sum += float64(w) / 100 * cap
	}
	return sum / float64(len(matched))
}

func tickerWeights(ui models.UserInterests) map[string]int {
	if ui.Weights == nil {
		return nil
	}
	return ui.Weights.Tickers
}

func sectorWeights(ui models.UserInterests) map[string]int {
	if ui.Weights == nil {
		return nil
	}
	return ui.Weights.Sectors
}

func topicWeights(ui models.UserInterests) map[string]int {
	if ui.Weights == nil {
		return nil
	}
	return ui.Weights.Topics
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
