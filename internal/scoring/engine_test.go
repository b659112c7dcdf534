package scoring

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"NewsRank/internal/domain/models"
)

func fixedClock() time.Time { return testNow }

func newTestEngine() *Engine {
	return NewEngine(WithClock(fixedClock))
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.InterestMatch + w.BehaviorMatch + w.SentimentMatch +
		w.TimeRelevance + w.QualityScore + w.TrendingBoost
	if sum != 1.0 {
		t.Fatalf("weights must sum to 1.0, got %v", sum)
	}
}

func TestCalculateScoreBoundsHoldForGarbageInput(t *testing.T) {
	e := newTestEngine()
	articles := []models.Article{
		{},
		{Title: "x", Tickers: []string{""}},
		{Sentiment: &models.Sentiment{Kind: models.SentimentLabelOnly, Text: "???"}},
		{Quality: &models.QualityClassification{Label: "BOGUS"}},
		{PublishedAt: models.PublishTime{Time: testNow.Add(48 * time.Hour)}}, // future
	}
	ui := models.UserInterests{Tickers: []string{"AAPL"}, Topics: []string{"x"}}
	prefs := models.UserPreferences{SentimentBias: models.BiasBearish, TimeHorizon: models.HorizonDayTrading}
	for i, a := range articles {
		got := e.CalculateScore(a, ui, prefs, nil, []string{"AAPL"})
		if got.Score < 0 || got.Score > 100 {
			t.Fatalf("article %d: score %d out of range", i, got.Score)
		}
		for name, v := range map[string]float64{
			"interest":  got.Factors.InterestMatch,
			"behavior":  got.Factors.BehaviorMatch,
			"sentiment": got.Factors.SentimentMatch,
			"time":      got.Factors.TimeRelevance,
			"quality":   got.Factors.QualityScore,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("article %d: factor %s = %v out of range", i, name, v)
			}
		}
		if tb := got.Factors.TrendingBoost; tb != 0 && tb != 20 {
			t.Fatalf("article %d: trending boost must be 0 or 20, got %v", i, tb)
		}
	}
}

func TestCalculateScoreIdempotent(t *testing.T) {
	e := newTestEngine()
	a := models.Article{
		ID:          "a1",
		Title:       "Apple ships new chip",
		Description: "Apple announced a new semiconductor line expanding its hardware offering today.",
		Tickers:     []string{"AAPL"},
		MarketType:  models.MarketStocks,
		Sentiment:   &models.Sentiment{Kind: models.SentimentLabelOnly, Text: "bullish"},
		PublishedAt: models.PublishTime{Time: testNow.Add(-2 * time.Hour)},
	}
	ui := models.UserInterests{Tickers: []string{"AAPL"}, Sectors: []string{"technology"}}
	prefs := models.UserPreferences{SentimentBias: models.BiasBullish, TimeHorizon: models.HorizonShortTerm}
	b := &models.UserBehavior{TickerClicks: map[string]int{"AAPL": 3}}

	first := e.CalculateScore(a, ui, prefs, b, []string{"AAPL"})
	second := e.CalculateScore(a, ui, prefs, b, []string{"AAPL"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs must score identically:\n%+v\n%+v", first, second)
	}
}

func TestCalculateScoreEmptyProfile(t *testing.T) {
	e := newTestEngine()
	score := e.CalculateScore(models.Article{}, models.UserInterests{}, models.UserPreferences{}, nil, nil)

	if score.Factors.InterestMatch != 0 {
		t.Fatalf("expected interest 0, got %v", score.Factors.InterestMatch)
	}
	if score.Factors.BehaviorMatch != 50 {
		t.Fatalf("expected behavior 50, got %v", score.Factors.BehaviorMatch)
	}
	if score.Factors.SentimentMatch != 50 || score.Factors.TimeRelevance != 50 {
		t.Fatalf("expected neutral sentiment/time, got %+v", score.Factors)
	}
	// quality: base 50 minus thin-description penalty
	if score.Factors.QualityScore != 40 {
		t.Fatalf("expected quality 40, got %v", score.Factors.QualityScore)
	}
	// round(0*0.35 + 50*0.25 + 50*0.15 + 50*0.10 + 40*0.10 + 0*0.05) = 29
	if score.Score != 29 {
		t.Fatalf("expected combined 29, got %d", score.Score)
	}
	if score.Reason != reasonFallback {
		t.Fatalf("expected fallback reason, got %q", score.Reason)
	}
}

func TestCombineScoreWeighting(t *testing.T) {
	f := models.ScoreFactors{
		InterestMatch:  100,
		BehaviorMatch:  100,
		SentimentMatch: 100,
		TimeRelevance:  100,
		QualityScore:   100,
		TrendingBoost:  20,
	}
	// 35 + 25 + 15 + 10 + 10 + 1 = 96
	if got := combineScore(f, DefaultWeights()); got != 96 {
		t.Fatalf("expected 96, got %d", got)
	}
	if got := combineScore(models.ScoreFactors{}, DefaultWeights()); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestTrendingBoostValues(t *testing.T) {
	a := models.Article{Tickers: []string{"nvda"}}
	if got := trendingBoost(a, []string{"NVDA", "TSLA"}); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := trendingBoost(a, []string{"TSLA"}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := trendingBoost(a, nil); got != 0 {
		t.Fatalf("expected 0 without trending set, got %v", got)
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := newTestEngine()
	a := models.Article{Tickers: []string{"AAPL"}}
	ui := models.UserInterests{Tickers: []string{"AAPL"}}
	done := make(chan models.PersonalizationScore, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- e.CalculateScore(a, ui, models.UserPreferences{}, nil, nil)
		}()
	}
	want := e.CalculateScore(a, ui, models.UserPreferences{}, nil, nil)
	for i := 0; i < 8; i++ {
		got := <-done
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("concurrent call %d diverged: %+v vs %+v", i, got, want)
		}
	}
}

func ExampleEngine_CalculateScore() {
	e := NewEngine(WithClock(func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}))
	score := e.CalculateScore(
		models.Article{Tickers: []string{"AAPL"}},
		models.UserInterests{Tickers: []string{"AAPL"}},
		models.UserPreferences{},
		nil,
		nil,
	)
	fmt.Println(score.Factors.InterestMatch)
	// Output: 100
}
