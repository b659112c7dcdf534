package usecase

import (
	"context"
	"testing"
	"time"

	"NewsRank/internal/domain/models"
)

type fakeTrendingStream struct {
	snaps     chan *models.TrendingSnapshot
	errs      chan error
	connected bool
}

func newFakeTrendingStream() *fakeTrendingStream {
	return &fakeTrendingStream{
		snaps: make(chan *models.TrendingSnapshot, 4),
		errs:  make(chan error, 1),
	}
}

func (s *fakeTrendingStream) Connect(context.Context) error {
	s.connected = true
	return nil
}
func (s *fakeTrendingStream) Subscribe(context.Context) error { return nil }
func (s *fakeTrendingStream) Read(context.Context) (<-chan *models.TrendingSnapshot, <-chan error) {
	return s.snaps, s.errs
}
func (s *fakeTrendingStream) Reconnect(context.Context) error { return nil }
func (s *fakeTrendingStream) Close() error {
	s.connected = false
	return nil
}
func (s *fakeTrendingStream) IsConnected() bool { return s.connected }

func waitForTickers(t *testing.T, c *TrendingCollector, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(c.Tickers()) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("tickers = %v, want %d entries", c.Tickers(), want)
}

func TestTrendingCollectorSnapshot(t *testing.T) {
	stream := newFakeTrendingStream()
	c := NewTrendingCollector(stream, newFakeMetrics(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !c.IsConnected() {
		t.Error("expected connected after Start")
	}

	stream.snaps <- &models.TrendingSnapshot{Tickers: []string{"AAPL", "TSLA"}, At: time.Now()}
	waitForTickers(t, c, 2)

	// A newer snapshot replaces the old one.
	stream.snaps <- &models.TrendingSnapshot{Tickers: []string{"NVDA"}, At: time.Now()}
	waitForTickers(t, c, 1)
	if got := c.Tickers(); got[0] != "NVDA" {
		t.Errorf("tickers = %v, want [NVDA]", got)
	}
}

func TestTrendingCollectorStaleSnapshot(t *testing.T) {
	stream := newFakeTrendingStream()
	c := NewTrendingCollector(stream, newFakeMetrics(), time.Minute)
	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	at := time.Now()
	stream.snaps <- &models.TrendingSnapshot{Tickers: []string{"AAPL"}, At: at}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !c.UpdatedAt().IsZero() {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if c.UpdatedAt().IsZero() {
		t.Fatal("snapshot never arrived")
	}
	if got := c.Tickers(); got != nil {
		t.Errorf("tickers = %v, want nil for snapshot past max age", got)
	}
}

func TestTrendingCollectorNoSnapshot(t *testing.T) {
	c := NewTrendingCollector(newFakeTrendingStream(), newFakeMetrics(), time.Minute)
	if got := c.Tickers(); got != nil {
		t.Errorf("tickers = %v, want nil before any snapshot", got)
	}
	if !c.UpdatedAt().IsZero() {
		t.Error("UpdatedAt should be zero before any snapshot")
	}
}
