package scoring

import "NewsRank/internal/domain/models"

// qualityScale maps upstream quality labels to a base score.
var qualityScale = map[string]float64{
	models.QualityHigh:   90,
	models.QualityMedium: 70,
	models.QualityLow:    30,
	models.QualitySpam:   10,
}

const (
	qualityBase            = 50.0
	llmAnalysisBonus       = 10.0
	multiTickerBonus       = 5.0
	thinDescriptionPenalty = 10.0
)

// minDescriptionLen is the description length below which an article is
// considered thin and penalized.
const minDescriptionLen = 50

// qualityScore rates intrinsic article quality independent of the user.
// Each adjustment clamps back into [0,100] before the next applies.
func qualityScore(a models.Article) float64 {
	score := qualityBase
	if a.Quality != nil && a.Quality.Label != "" {
		if v, ok := qualityScale[a.Quality.Label]; ok {
			score = v
		} else {
			score = qualityBase
		}
	}

	if a.HasLLMAnalysis() {
		score = clamp(score+llmAnalysisBonus, 0, 100)
	}
	if len(a.Tickers) > 1 {
		score = clamp(score+multiTickerBonus, 0, 100)
	}
	if len(a.Description) < minDescriptionLen {
		score = clamp(score-thinDescriptionPenalty, 0, 100)
	}
	return score
}
