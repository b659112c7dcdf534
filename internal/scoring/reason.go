package scoring

import (
	"strings"

	"NewsRank/internal/domain/models"
)

// Factor thresholds above which a reason clause is emitted.
const (
	reasonInterestAbove  = 70.0
	reasonBehaviorAbove  = 70.0
	reasonSentimentAbove = 70.0
	reasonTimeAbove      = 80.0
	reasonQualityAbove   = 80.0
)

const reasonFallback = "General market relevance"

// BuildReason composes the human-readable explanation for a score. It is a
// pure function of the factor breakdown and matched interests, so the same
// score always explains itself the same way.
func BuildReason(f models.ScoreFactors, m models.MatchedInterests) string {
	var clauses []string

	if f.InterestMatch > reasonInterestAbove {
		entities := make([]string, 0, len(m.Tickers)+len(m.Sectors)+len(m.Topics))
		entities = append(entities, m.Tickers...)
		entities = append(entities, m.Sectors...)
		entities = append(entities, m.Topics...)
		if len(entities) > 0 {
			clauses = append(clauses, "Matches your interests: "+strings.Join(entities, ", "))
		} else {
			clauses = append(clauses, "Strong interest match")
		}
	}
	if f.BehaviorMatch > reasonBehaviorAbove {
		clauses = append(clauses, "Similar to articles you engage with")
	}
	if f.SentimentMatch > reasonSentimentAbove {
		clauses = append(clauses, "Aligns with your market outlook")
	}
	if f.TimeRelevance > reasonTimeAbove {
		clauses = append(clauses, "Fresh news for your time horizon")
	}
	if f.QualityScore > reasonQualityAbove {
		clauses = append(clauses, "High-quality coverage")
	}
	if f.TrendingBoost > 0 {
		clauses = append(clauses, "Trending right now")
	}

	if len(clauses) == 0 {
		return reasonFallback
	}
	return strings.Join(clauses, "; ")
}
