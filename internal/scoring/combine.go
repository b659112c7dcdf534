package scoring

import (
	"math"

	"NewsRank/internal/domain/models"
)

// combineScore folds the factor breakdown into the final 0-100 score.
func combineScore(f models.ScoreFactors, w Weights) int {
	sum := f.InterestMatch*w.InterestMatch +
		f.BehaviorMatch*w.BehaviorMatch +
		f.SentimentMatch*w.SentimentMatch +
		f.TimeRelevance*w.TimeRelevance +
		f.QualityScore*w.QualityScore +
		f.TrendingBoost*w.TrendingBoost

	return int(clamp(math.Round(sum), 0, 100))
}
