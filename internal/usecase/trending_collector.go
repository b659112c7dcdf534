package usecase

import (
	"context"
	"sync"
	"time"

	"NewsRank/internal/domain/models"
	drepo "NewsRank/internal/domain/repository"
)

// TrendingCollector consumes the trending-ticker stream and keeps the most
// recent snapshot available for scoring. Snapshots older than maxAge are
// treated as absent, so a dead feed degrades to zero trending boost.
type TrendingCollector struct {
	stream  drepo.TrendingStream
	metrics drepo.Metrics
	maxAge  time.Duration

	mu   sync.RWMutex
	snap *models.TrendingSnapshot
	now  func() time.Time
}

// NewTrendingCollector creates a new TrendingCollector instance.
func NewTrendingCollector(stream drepo.TrendingStream, metrics drepo.Metrics, maxAge time.Duration) *TrendingCollector {
	if maxAge <= 0 {
		maxAge = 15 * time.Minute
	}
	return &TrendingCollector{
		stream:  stream,
		metrics: metrics,
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// IsConnected returns true if the trending stream is connected.
func (c *TrendingCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

func (c *TrendingCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	if err := c.stream.Subscribe(ctx); err != nil {
		return err
	}
	snapCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, snapCh, errCh)
	return nil
}

func (c *TrendingCollector) consume(ctx context.Context, snapCh <-chan *models.TrendingSnapshot, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			if err != nil {
				c.metrics.RecordError("trending_stream")
				_ = c.stream.Reconnect(ctx)
			}
		case s := <-snapCh:
			if s == nil {
				continue
			}
			c.mu.Lock()
			c.snap = s
			c.mu.Unlock()
			c.metrics.RecordTrendingSize(len(s.Tickers))
		}
	}
}

// Tickers returns the current trending tickers, or nil when no fresh
// snapshot is available.
func (c *TrendingCollector) Tickers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil || c.now().Sub(c.snap.At) > c.maxAge {
		return nil
	}
	return c.snap.Tickers
}

// UpdatedAt returns the time of the current snapshot, zero when none.
func (c *TrendingCollector) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return time.Time{}
	}
	return c.snap.At
}

func (c *TrendingCollector) Stop() error { return c.stream.Close() }

var _ drepo.TrendingSource = (*TrendingCollector)(nil)
