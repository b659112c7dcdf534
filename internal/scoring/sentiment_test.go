package scoring

import (
	"testing"

	"NewsRank/internal/domain/models"
)

func label(s string) *models.Sentiment {
	return &models.Sentiment{Kind: models.SentimentLabelOnly, Text: s}
}

func TestSentimentMatchNoSentiment(t *testing.T) {
	prefs := models.UserPreferences{SentimentBias: models.BiasBullish}
	if got := sentimentMatchScore(models.Article{}, prefs); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestSentimentMatchBalancedBias(t *testing.T) {
	a := models.Article{Sentiment: label("very_bullish")}
	prefs := models.UserPreferences{SentimentBias: models.BiasBalanced}
	if got := sentimentMatchScore(a, prefs); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestSentimentMatchBullishBiasDirectMapping(t *testing.T) {
	prefs := models.UserPreferences{SentimentBias: models.BiasBullish}
	cases := map[string]float64{
		"very_bullish": 100,
		"bullish":      80,
		"positive":     70,
		"neutral":      50,
		"negative":     30,
		"bearish":      20,
		"very_bearish": 0,
		"gibberish":    50,
	}
	for lbl, want := range cases {
		a := models.Article{Sentiment: label(lbl)}
		if got := sentimentMatchScore(a, prefs); got != want {
			t.Fatalf("%s: expected %v, got %v", lbl, want, got)
		}
	}
}

func TestSentimentMatchBearishBiasInverted(t *testing.T) {
	prefs := models.UserPreferences{SentimentBias: models.BiasBearish}
	a := models.Article{Sentiment: label("bearish")}
	if got := sentimentMatchScore(a, prefs); got != 80 {
		t.Fatalf("expected 80 (100-20), got %v", got)
	}
	a.Sentiment = label("very_bullish")
	if got := sentimentMatchScore(a, prefs); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestSentimentMatchScoredVariantDerivesLabel(t *testing.T) {
	prefs := models.UserPreferences{SentimentBias: models.BiasBullish}
	a := models.Article{Sentiment: &models.Sentiment{Kind: models.SentimentScored, Score: 0.8}}
	if got := sentimentMatchScore(a, prefs); got != 80 {
		t.Fatalf("expected 80 for derived bullish, got %v", got)
	}
}
