package repository

import (
	"context"
	"errors"
	"time"

	"NewsRank/internal/domain/models"
)

// ErrProfileNotFound signals that a user has no stored profile. Callers
// score with an empty profile in that case (cold start).
var ErrProfileNotFound = errors.New("profile not found")

// ArticleStore persists and serves candidate articles for scoring.
type ArticleStore interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, a *models.Article) error
	StoreBatch(ctx context.Context, articles []*models.Article) error
	Latest(ctx context.Context, limit int) ([]models.Article, error)
	Health(ctx context.Context) error // ping
	Close() error
}

// ProfileStore serves user profiles. Implementations are read-only from the
// engine's perspective; writes belong to the external profile service.
type ProfileStore interface {
	Profile(ctx context.Context, userID string) (*models.UserProfile, error)
	Close() error
}

// TrendingStream delivers trending-ticker snapshots from the external
// trending computation service.
type TrendingStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.TrendingSnapshot, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Publisher emits scored-feed events for downstream analytics.
type Publisher interface {
	PublishFeedScored(ctx context.Context, userID string, scored []models.ScoredArticle) error
	Close() error
}

// Metrics records operational counters and latencies.
type Metrics interface {
	RecordArticleScored(source string)
	RecordArticleStored(source string)
	RecordError(kind string)
	RecordFeedSize(n int)
	RecordTrendingSize(n int)
	RecordLatency(op string, seconds float64)
}

// TrendingSource exposes the latest trending-ticker snapshot to consumers
// that only need a point-in-time view.
type TrendingSource interface {
	Tickers() []string
	UpdatedAt() time.Time
}
