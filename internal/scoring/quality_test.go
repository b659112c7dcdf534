package scoring

import (
	"encoding/json"
	"strings"
	"testing"

	"NewsRank/internal/domain/models"
)

func longDescription() string { return strings.Repeat("market analysis ", 5) } // 80 chars

func TestQualityNoAdjustmentsTriggered(t *testing.T) {
	a := models.Article{
		Tickers:     []string{"AAPL"},
		Description: longDescription(),
	}
	if got := qualityScore(a); got != 50 {
		t.Fatalf("expected base 50, got %v", got)
	}
}

func TestQualityLabels(t *testing.T) {
	cases := map[string]float64{
		models.QualityHigh:   90,
		models.QualityMedium: 70,
		models.QualityLow:    30,
		models.QualitySpam:   10,
		"SOMETHING_ELSE":     50,
	}
	for lbl, want := range cases {
		a := models.Article{
			Description: longDescription(),
			Quality:     &models.QualityClassification{Label: lbl},
		}
		if got := qualityScore(a); got != want {
			t.Fatalf("%s: expected %v, got %v", lbl, want, got)
		}
	}
}

func TestQualityLLMAnalysisBonus(t *testing.T) {
	a := models.Article{
		Description: longDescription(),
		LLMAnalysis: json.RawMessage(`{"summary":"x"}`),
	}
	if got := qualityScore(a); got != 60 {
		t.Fatalf("expected 60, got %v", got)
	}
}

func TestQualityMultiTickerBonus(t *testing.T) {
	a := models.Article{
		Description: longDescription(),
		Tickers:     []string{"AAPL", "MSFT"},
	}
	if got := qualityScore(a); got != 55 {
		t.Fatalf("expected 55, got %v", got)
	}
}

func TestQualityThinDescriptionPenalty(t *testing.T) {
	a := models.Article{Description: "too short"}
	if got := qualityScore(a); got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}
}

func TestQualityClampedAtBounds(t *testing.T) {
	high := models.Article{
		Description: longDescription(),
		Quality:     &models.QualityClassification{Label: models.QualityHigh},
		LLMAnalysis: json.RawMessage(`{}`),
		Tickers:     []string{"AAPL", "MSFT"},
	}
	// 90 + 10 clamps to 100, then +5 clamps to 100 again
	if got := qualityScore(high); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	spam := models.Article{Quality: &models.QualityClassification{Label: models.QualitySpam}}
	if got := qualityScore(spam); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
