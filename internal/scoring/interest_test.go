package scoring

import (
	"testing"

	"NewsRank/internal/domain/models"
)

func TestInterestMatchTickerOnlyFullMatch(t *testing.T) {
	a := models.Article{Tickers: []string{"AAPL"}}
	ui := models.UserInterests{Tickers: []string{"AAPL"}}
	if got := interestMatchScore(a, ui); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestInterestMatchTickerCaseInsensitive(t *testing.T) {
	a := models.Article{Tickers: []string{"aapl"}}
	ui := models.UserInterests{Tickers: []string{"AAPL"}}
	if got := interestMatchScore(a, ui); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestInterestMatchPartialTickerShare(t *testing.T) {
	a := models.Article{Tickers: []string{"AAPL", "TSLA"}}
	ui := models.UserInterests{Tickers: []string{"AAPL"}}
	// one of two article tickers matched: (1/2)*40 of a 40 denominator
	if got := interestMatchScore(a, ui); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestInterestMatchPerTickerWeights(t *testing.T) {
	a := models.Article{Tickers: []string{"AAPL"}}
	ui := models.UserInterests{
		Tickers: []string{"AAPL"},
		Weights: &models.InterestWeights{Tickers: map[string]int{"AAPL": 50}},
	}
	// (50/100)*40 over a 40 denominator
	if got := interestMatchScore(a, ui); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestInterestMatchWeightMissingDefaultsToFull(t *testing.T) {
	a := models.Article{Tickers: []string{"AAPL"}}
	ui := models.UserInterests{
		Tickers: []string{"AAPL"},
		Weights: &models.InterestWeights{Tickers: map[string]int{"TSLA": 10}},
	}
	if got := interestMatchScore(a, ui); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestInterestMatchTopicsOnly(t *testing.T) {
	a := models.Article{Title: "Quarterly Earnings Beat Expectations"}
	ui := models.UserInterests{Topics: []string{"earnings", "ipo"}}
	// one of two declared topics matched: (1/2)*25 of a 25 denominator
	if got := interestMatchScore(a, ui); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestInterestMatchSectorOnly(t *testing.T) {
	a := models.Article{Title: "Chipmaker expands semiconductor capacity"}
	ui := models.UserInterests{Sectors: []string{"Technology"}}
	if got := interestMatchScore(a, ui); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestInterestMatchMarketTypeOnly(t *testing.T) {
	a := models.Article{MarketType: models.MarketCrypto}
	ui := models.UserInterests{MarketTypes: []string{models.MarketCrypto}}
	if got := interestMatchScore(a, ui); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	ui.MarketTypes = []string{models.MarketStocks}
	if got := interestMatchScore(a, ui); got != 0 {
		t.Fatalf("expected 0 on mismatch, got %v", got)
	}
}

func TestInterestMatchNoDeclaredInterests(t *testing.T) {
	a := models.Article{Tickers: []string{"AAPL"}, Title: "Tech news"}
	if got := interestMatchScore(a, models.UserInterests{}); got != 0 {
		t.Fatalf("expected 0 for empty interests, got %v", got)
	}
}

func TestInterestMatchMixedDimensions(t *testing.T) {
	a := models.Article{
		Tickers:    []string{"AAPL"},
		Title:      "Apple earnings preview",
		MarketType: models.MarketStocks,
	}
	ui := models.UserInterests{
		Tickers:     []string{"AAPL"},
		Topics:      []string{"earnings"},
		MarketTypes: []string{models.MarketStocks},
	}
	// (40 + 25 + 10) / (40 + 25 + 10) = 100
	if got := interestMatchScore(a, ui); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	// drop the ticker match: (0 + 25 + 10) / 75 = 46.66..
	a.Tickers = []string{"TSLA"}
	got := interestMatchScore(a, ui)
	if got < 46 || got > 47 {
		t.Fatalf("expected ~46.7, got %v", got)
	}
}

func TestExtractMatchedInterests(t *testing.T) {
	a := models.Article{
		Tickers: []string{"aapl", "TSLA"},
		Title:   "Software earnings roundup",
	}
	ui := models.UserInterests{
		Tickers: []string{"AAPL"},
		Sectors: []string{"technology"},
		Topics:  []string{"earnings", "mergers"},
	}
	m := extractMatchedInterests(a, ui)
	if len(m.Tickers) != 1 || m.Tickers[0] != "AAPL" {
		t.Fatalf("unexpected tickers %v", m.Tickers)
	}
	if len(m.Sectors) != 1 || m.Sectors[0] != "technology" {
		t.Fatalf("unexpected sectors %v", m.Sectors)
	}
	if len(m.Topics) != 1 || m.Topics[0] != "earnings" {
		t.Fatalf("unexpected topics %v", m.Topics)
	}
}

func TestExtractMatchedInterestsAlwaysNonNil(t *testing.T) {
	m := extractMatchedInterests(models.Article{}, models.UserInterests{})
	if m.Tickers == nil || m.Sectors == nil || m.Topics == nil {
		t.Fatalf("matched interest lists must be non-nil")
	}
}
