package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"NewsRank/internal/domain/models"
	domrepo "NewsRank/internal/domain/repository"
)

// Proc is the minimal processor interface the pipeline needs.
type Proc interface {
	Process(ctx context.Context, a *models.Article) error
}

// IngestPipeline sits between the Kafka consumer and the article store.
// It validates, drops duplicates seen within the dedup window, and buffers
// when the store is unavailable.
type IngestPipeline struct {
	proc    Proc
	metrics domrepo.Metrics
	window  time.Duration
	bufSize int
	bufCh   chan *models.Article
	stopCh  chan struct{}
	started bool
	mu      sync.Mutex
	seen    map[string]time.Time // article ID -> last accepted time
	// optional normalization hook
	transform func(*models.Article) *models.Article
}

type PipelineOption func(*IngestPipeline)

// WithDedupWindow sets how long a seen article ID suppresses duplicates.
func WithDedupWindow(d time.Duration) PipelineOption {
	return func(p *IngestPipeline) {
		if d > 0 {
			p.window = d
		}
	}
}

// WithBufferSize sets the temporary buffer size when downstream is unavailable.
func WithBufferSize(n int) PipelineOption {
	return func(p *IngestPipeline) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// WithTransform sets a normalization hook applied before validation.
func WithTransform(fn func(*models.Article) *models.Article) PipelineOption {
	return func(p *IngestPipeline) { p.transform = fn }
}

// NewIngestPipeline creates a new pipeline.
func NewIngestPipeline(proc Proc, metrics domrepo.Metrics, opts ...PipelineOption) *IngestPipeline {
	p := &IngestPipeline{
		proc:    proc,
		metrics: metrics,
		window:  10 * time.Minute,
		bufSize: 1000,
		bufCh:   make(chan *models.Article, 1000),
		stopCh:  make(chan struct{}),
		seen:    make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufSize != cap(p.bufCh) {
		p.bufCh = make(chan *models.Article, p.bufSize)
	}
	return p
}

// Start launches background flushing of buffered articles.
func (p *IngestPipeline) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		backoff := 50 * time.Millisecond
		for {
			select {
			case <-p.stopCh:
				return
			case a := <-p.bufCh:
				if a == nil {
					continue
				}
				if err := p.proc.Process(ctx, a); err != nil {
					if backoff < 2*time.Second {
						backoff *= 2
					}
					p.metrics.RecordError("pipeline_flush")
					time.Sleep(backoff)
					// requeue if space; drop otherwise
					select {
					case p.bufCh <- a:
					default:
						p.metrics.RecordError("pipeline_buffer_drop")
					}
				} else {
					backoff = 50 * time.Millisecond
				}
			}
		}
	}()
}

// Stop stops the background flushing.
func (p *IngestPipeline) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()
	close(p.stopCh)
}

// Process validates, deduplicates, and forwards the article downstream,
// buffering on store errors.
func (p *IngestPipeline) Process(ctx context.Context, a *models.Article) error {
	start := time.Now()
	if p.transform != nil {
		a = p.transform(a)
	}
	if err := validateArticle(a); err != nil {
		p.metrics.RecordError("pipeline_validate")
		return err
	}
	if p.duplicate(a.ID, start) {
		p.metrics.RecordError("pipeline_duplicate")
		return nil
	}

	if err := p.proc.Process(ctx, a); err != nil {
		p.metrics.RecordError("pipeline_process")
		// buffer non-blocking
		select {
		case p.bufCh <- a:
		default:
			p.metrics.RecordError("pipeline_buffer_full")
		}
		return fmt.Errorf("pipeline downstream: %w", err)
	}
	p.metrics.RecordLatency("pipeline_process", time.Since(start).Seconds())
	return nil
}

func validateArticle(a *models.Article) error {
	if a == nil {
		return fmt.Errorf("article nil")
	}
	if a.ID == "" {
		return fmt.Errorf("article id empty")
	}
	return nil
}

func (p *IngestPipeline) duplicate(id string, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if last, ok := p.seen[id]; ok && now.Sub(last) < p.window {
		return true
	}
	p.seen[id] = now
	// occasional sweep keeps the map bounded
	if len(p.seen) > 10000 {
		for k, v := range p.seen {
			if now.Sub(v) >= p.window {
				delete(p.seen, k)
			}
		}
	}
	return false
}
