package scoring

import (
	"strings"
	"testing"

	"NewsRank/internal/domain/models"
)

func TestBuildReasonFallback(t *testing.T) {
	got := BuildReason(models.ScoreFactors{}, models.MatchedInterests{})
	if got != "General market relevance" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestBuildReasonInterestClauseNamesEntities(t *testing.T) {
	f := models.ScoreFactors{InterestMatch: 85}
	m := models.MatchedInterests{Tickers: []string{"AAPL"}, Topics: []string{"earnings"}}
	got := BuildReason(f, m)
	if !strings.Contains(got, "AAPL") || !strings.Contains(got, "earnings") {
		t.Fatalf("expected matched entities in reason, got %q", got)
	}
}

func TestBuildReasonThresholdsAreExclusive(t *testing.T) {
	f := models.ScoreFactors{
		InterestMatch:  70,
		BehaviorMatch:  70,
		SentimentMatch: 70,
		TimeRelevance:  80,
		QualityScore:   80,
	}
	got := BuildReason(f, models.MatchedInterests{})
	if got != "General market relevance" {
		t.Fatalf("values at threshold must not trigger clauses, got %q", got)
	}
}

func TestBuildReasonJoinsClauses(t *testing.T) {
	f := models.ScoreFactors{
		BehaviorMatch: 90,
		TrendingBoost: 20,
	}
	got := BuildReason(f, models.MatchedInterests{})
	parts := strings.Split(got, "; ")
	if len(parts) != 2 {
		t.Fatalf("expected 2 clauses joined with '; ', got %q", got)
	}
}

func TestBuildReasonDeterministic(t *testing.T) {
	f := models.ScoreFactors{InterestMatch: 90, QualityScore: 95, TrendingBoost: 20}
	m := models.MatchedInterests{Sectors: []string{"technology"}}
	if BuildReason(f, m) != BuildReason(f, m) {
		t.Fatalf("reason must be deterministic")
	}
}
