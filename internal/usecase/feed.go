package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"NewsRank/internal/domain/models"
	drepo "NewsRank/internal/domain/repository"
	"NewsRank/internal/scoring"
	icache "NewsRank/internal/service/cache"
	smetrics "NewsRank/internal/service/metrics"
	pkgcache "NewsRank/pkg/cache"
)

// FeedUseCase assembles a personalized feed: latest articles scored against
// the user's profile, sorted, filtered, and truncated.
type FeedUseCase struct {
	articles drepo.ArticleStore
	profiles drepo.ProfileStore
	trending drepo.TrendingSource
	pub      drepo.Publisher
	engine   *scoring.Engine
	cache    icache.BytesCache
	metrics  drepo.Metrics

	cacheTTL time.Duration
	maxFetch int
	timeout  time.Duration
	publish  bool
}

// FeedOption configures FeedUseCase.
type FeedOption func(*FeedUseCase)

// WithFeedCacheTTL sets how long assembled feeds are cached.
func WithFeedCacheTTL(ttl time.Duration) FeedOption {
	return func(uc *FeedUseCase) {
		if ttl > 0 {
			uc.cacheTTL = ttl
		}
	}
}

// WithMaxFetch caps how many candidate articles are pulled per request.
func WithMaxFetch(n int) FeedOption {
	return func(uc *FeedUseCase) {
		if n > 0 {
			uc.maxFetch = n
		}
	}
}

// WithPublisher enables publishing scored feeds for downstream analytics.
func WithPublisher(pub drepo.Publisher) FeedOption {
	return func(uc *FeedUseCase) {
		uc.pub = pub
		uc.publish = pub != nil
	}
}

// NewFeedUseCase creates a new FeedUseCase instance.
func NewFeedUseCase(
	articles drepo.ArticleStore,
	profiles drepo.ProfileStore,
	trending drepo.TrendingSource,
	engine *scoring.Engine,
	cache icache.BytesCache,
	metrics drepo.Metrics,
	opts ...FeedOption,
) *FeedUseCase {
	uc := &FeedUseCase{
		articles: articles,
		profiles: profiles,
		trending: trending,
		engine:   engine,
		cache:    cache,
		metrics:  metrics,
		cacheTTL: 30 * time.Second,
		maxFetch: 200,
		timeout:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// FeedParams are the inputs for one feed request.
type FeedParams struct {
	UserID   string
	Limit    int
	MinScore int
}

// GetFeed returns the personalized feed for one user.
func (uc *FeedUseCase) GetFeed(ctx context.Context, p FeedParams) (*models.FeedResponse, error) {
	if p.UserID == "" {
		return nil, fmt.Errorf("user_id required")
	}
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.MinScore <= 0 {
		p.MinScore = scoring.DefaultMinScore
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	cacheKey := pkgcache.GenerateKeyWithParams("feed", p.UserID, p.Limit, p.MinScore)
	if b, ok, err := uc.cache.GetBytes(cacheKey); err == nil && ok {
		var resp models.FeedResponse
		if json.Unmarshal(b, &resp) == nil {
			return &resp, nil
		}
	}

	start := time.Now()

	// Profile and candidate articles are independent lookups.
	var (
		wg       sync.WaitGroup
		prof     *models.UserProfile
		profErr  error
		cands    []models.Article
		candsErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		prof, profErr = uc.profiles.Profile(ctx, p.UserID)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		cands, candsErr = uc.articles.Latest(ctx, uc.maxFetch)
	}()
	wg.Wait()

	if candsErr != nil {
		uc.metrics.RecordError("feed_articles")
		smetrics.ScoringErrors.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("load articles: %w", candsErr)
	}
	if profErr != nil {
		if !errors.Is(profErr, drepo.ErrProfileNotFound) {
			uc.metrics.RecordError("feed_profile")
			smetrics.ScoringErrors.WithLabelValues("profile").Inc()
			return nil, fmt.Errorf("load profile: %w", profErr)
		}
		// cold start
		prof = &models.UserProfile{UserID: p.UserID}
	}

	trendingTickers := uc.trending.Tickers()

	scored := uc.engine.SortArticlesByScore(cands, prof.Interests, prof.Preferences, prof.Behavior, trendingTickers)
	for _, s := range scored {
		uc.metrics.RecordArticleScored(s.Article.Source)
	}
	filtered := scoring.FilterByScore(scored, p.MinScore)
	if len(filtered) > p.Limit {
		filtered = filtered[:p.Limit]
	}

	resp := &models.FeedResponse{
		UserID:          p.UserID,
		Articles:        filtered,
		Total:           len(filtered),
		TrendingTickers: trendingTickers,
		GeneratedAt:     time.Now().UTC(),
	}

	uc.metrics.RecordFeedSize(len(filtered))
	uc.metrics.RecordLatency("feed_assemble", time.Since(start).Seconds())
	smetrics.ScoringLatency.WithLabelValues("feed").Observe(time.Since(start).Seconds())

	if b, err := json.Marshal(resp); err == nil {
		_ = uc.cache.SetBytes(cacheKey, b, uc.cacheTTL)
	}

	if uc.publish {
		if err := uc.pub.PublishFeedScored(ctx, p.UserID, filtered); err != nil {
			uc.metrics.RecordError("feed_publish")
		}
	}

	return resp, nil
}

// ScoreArticle scores one article against explicitly supplied profile parts.
func (uc *FeedUseCase) ScoreArticle(ctx context.Context, req *models.ScoreRequest) (*models.ScoredArticle, error) {
	if req == nil {
		return nil, fmt.Errorf("request required")
	}
	start := time.Now()
	score := uc.engine.CalculateScore(req.Article, req.Interests, req.Preferences, req.Behavior, req.TrendingTickers)
	uc.metrics.RecordArticleScored(req.Article.Source)
	smetrics.ScoringLatency.WithLabelValues("score").Observe(time.Since(start).Seconds())
	return &models.ScoredArticle{Article: req.Article, Personalization: score}, nil
}

// Health reports article store health.
func (uc *FeedUseCase) Health(ctx context.Context) error {
	return uc.articles.Health(ctx)
}
