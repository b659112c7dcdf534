package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"NewsRank/internal/domain/models"
	"NewsRank/internal/scoring"
	icache "NewsRank/internal/service/cache"
	"NewsRank/internal/usecase"
	xlogger "NewsRank/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubArticleStore struct {
	articles []models.Article
}

func (s *stubArticleStore) Init(context.Context) error                        { return nil }
func (s *stubArticleStore) Store(context.Context, *models.Article) error      { return nil }
func (s *stubArticleStore) StoreBatch(context.Context, []*models.Article) error { return nil }
func (s *stubArticleStore) Latest(context.Context, int) ([]models.Article, error) {
	return s.articles, nil
}
func (s *stubArticleStore) Health(context.Context) error { return nil }
func (s *stubArticleStore) Close() error                 { return nil }

type stubProfileStore struct{}

func (s *stubProfileStore) Profile(context.Context, string) (*models.UserProfile, error) {
	return &models.UserProfile{Interests: models.UserInterests{Tickers: []string{"AAPL"}}}, nil
}
func (s *stubProfileStore) Close() error { return nil }

type stubTrending struct{}

func (stubTrending) Tickers() []string    { return []string{"AAPL"} }
func (stubTrending) UpdatedAt() time.Time { return time.Now() }

type stubMetrics struct{}

func (stubMetrics) RecordArticleScored(string) {}
func (stubMetrics) RecordArticleStored(string) {}
func (stubMetrics) RecordError(string)         {}
func (stubMetrics) RecordFeedSize(int)         {}
func (stubMetrics) RecordTrendingSize(int)     {}
func (stubMetrics) RecordLatency(string, float64) {}

func newTestHandler(t *testing.T) *FeedEchoHandler {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	store := &stubArticleStore{articles: []models.Article{{
		ID:          "a1",
		Title:       "Apple earnings preview",
		Description: "A description comfortably longer than fifty characters for quality scoring.",
		Tickers:     []string{"AAPL"},
		PublishedAt: models.PublishTime{Time: time.Now().Add(-time.Hour)},
	}}}
	feed := usecase.NewFeedUseCase(store, &stubProfileStore{}, stubTrending{}, scoring.NewEngine(), icache.NewTTLCache(), stubMetrics{})
	return NewFeedEchoHandler(l, feed, stubTrending{}, 100, 100)
}

func doRequest(h *FeedEchoHandler, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFeedEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/feed?user_id=u1&min_score=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.FeedResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.UserID != "u1" {
		t.Errorf("user = %q", resp.Data.UserID)
	}
	if len(resp.Data.Articles) != 1 {
		t.Fatalf("articles = %d, want 1", len(resp.Data.Articles))
	}
	if resp.Data.Articles[0].Personalization.Score <= 0 {
		t.Errorf("score = %d, want positive", resp.Data.Articles[0].Personalization.Score)
	}
}

func TestFeedEndpointRequiresUser(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/feed", "")

	var resp struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Status)
	}
}

func TestScoreEndpoint(t *testing.T) {
	h := newTestHandler(t)
	body := `{
		"article": {"id":"x","title":"Tesla delivery numbers","tickers":["TSLA"],"publishedAt":"2026-03-10T09:00:00Z"},
		"interests": {"tickers":["TSLA"]}
	}`
	rec := doRequest(h, http.MethodPost, "/api/score", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.ScoredArticle `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Personalization.Factors.InterestMatch != 100 {
		t.Errorf("interest factor = %v, want 100", resp.Data.Personalization.Factors.InterestMatch)
	}
}

func TestScoreEndpointRequiresArticleID(t *testing.T) {
	h := newTestHandler(t)
	body := `{"article": {"title":"no id"}, "interests": {}}`
	rec := doRequest(h, http.MethodPost, "/api/score", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != http.StatusBadRequest {
		t.Errorf("envelope status = %d, want 400", resp.Status)
	}
}

func TestTrendingEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/trending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "AAPL") {
		t.Errorf("body missing trending ticker: %s", rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
