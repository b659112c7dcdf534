package scoring

import (
	"testing"

	"NewsRank/internal/domain/models"
)

func TestSortArticlesByScoreDescending(t *testing.T) {
	e := newTestEngine()
	articles := []models.Article{
		{ID: "miss", Tickers: []string{"XOM"}},
		{ID: "hit", Tickers: []string{"AAPL"}},
	}
	ui := models.UserInterests{Tickers: []string{"AAPL"}}
	scored := e.SortArticlesByScore(articles, ui, models.UserPreferences{}, nil, nil)

	if len(scored) != 2 {
		t.Fatalf("expected 2 scored articles, got %d", len(scored))
	}
	if scored[0].Article.ID != "hit" {
		t.Fatalf("expected interest-matching article first, got %s", scored[0].Article.ID)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i-1].Personalization.Score < scored[i].Personalization.Score {
			t.Fatalf("not sorted descending at %d", i)
		}
	}
}

func TestSortArticlesByScoreStableForTies(t *testing.T) {
	e := newTestEngine()
	articles := []models.Article{{ID: "first"}, {ID: "second"}, {ID: "third"}}
	scored := e.SortArticlesByScore(articles, models.UserInterests{}, models.UserPreferences{}, nil, nil)
	for i, id := range []string{"first", "second", "third"} {
		if scored[i].Article.ID != id {
			t.Fatalf("tie order broken: position %d = %s", i, scored[i].Article.ID)
		}
	}
}

func TestFilterByScore(t *testing.T) {
	scored := []models.ScoredArticle{
		{Article: models.Article{ID: "a"}, Personalization: models.PersonalizationScore{Score: 80}},
		{Article: models.Article{ID: "b"}, Personalization: models.PersonalizationScore{Score: 30}},
		{Article: models.Article{ID: "c"}, Personalization: models.PersonalizationScore{Score: 10}},
	}

	kept := FilterByScore(scored, DefaultMinScore)
	if len(kept) != 2 || kept[0].Article.ID != "a" || kept[1].Article.ID != "b" {
		t.Fatalf("unexpected filter result %+v", kept)
	}

	all := FilterByScore(scored, 0)
	if len(all) != len(scored) {
		t.Fatalf("threshold 0 must keep everything, kept %d", len(all))
	}

	none := FilterByScore(scored, 81)
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}
