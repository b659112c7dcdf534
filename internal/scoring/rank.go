package scoring

import (
	"sort"

	"NewsRank/internal/domain/models"
)

// DefaultMinScore is the feed filter threshold when the caller gives none.
const DefaultMinScore = 30

// SortArticlesByScore scores every article and returns them sorted by score,
// descending. The sort is stable so equal scores keep input order.
func (e *Engine) SortArticlesByScore(
	articles []models.Article,
	interests models.UserInterests,
	prefs models.UserPreferences,
	behavior *models.UserBehavior,
	trending []string,
) []models.ScoredArticle {
	scored := make([]models.ScoredArticle, len(articles))
	for i, a := range articles {
		scored[i] = models.ScoredArticle{
			Article:         a,
			Personalization: e.CalculateScore(a, interests, prefs, behavior, trending),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Personalization.Score > scored[j].Personalization.Score
	})
	return scored
}

// FilterByScore keeps the scored articles with score >= minScore,
// preserving order.
func FilterByScore(scored []models.ScoredArticle, minScore int) []models.ScoredArticle {
	out := make([]models.ScoredArticle, 0, len(scored))
	for _, s := range scored {
		if s.Personalization.Score >= minScore {
			out = append(out, s)
		}
	}
	return out
}
