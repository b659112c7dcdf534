package usecase

import (
	"context"
	"fmt"
	"time"

	"NewsRank/internal/domain/models"
	drepo "NewsRank/internal/domain/repository"
)

// ArticleProcessor persists incoming articles to the article store.
type ArticleProcessor struct {
	store   drepo.ArticleStore
	metrics drepo.Metrics
}

// NewArticleProcessor creates a new ArticleProcessor instance.
func NewArticleProcessor(store drepo.ArticleStore, metrics drepo.Metrics) *ArticleProcessor {
	return &ArticleProcessor{store: store, metrics: metrics}
}

// Process persists a single article.
func (p *ArticleProcessor) Process(ctx context.Context, a *models.Article) error {
	if a == nil {
		return fmt.Errorf("article is nil")
	}

	start := time.Now()
	if err := p.store.Store(ctx, a); err != nil {
		p.metrics.RecordError("process")
		return fmt.Errorf("process article: %w", err)
	}

	p.metrics.RecordArticleStored(a.Source)
	p.metrics.RecordLatency("process", time.Since(start).Seconds())
	return nil
}

// ProcessBatch persists multiple articles in a batch.
func (p *ArticleProcessor) ProcessBatch(ctx context.Context, articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}

	start := time.Now()
	if err := p.store.StoreBatch(ctx, articles); err != nil {
		p.metrics.RecordError("process_batch")
		return fmt.Errorf("process batch: %w", err)
	}

	for _, a := range articles {
		p.metrics.RecordArticleStored(a.Source)
	}
	p.metrics.RecordLatency("process_batch", time.Since(start).Seconds())
	return nil
}

// Close closes underlying resources if available.
func (p *ArticleProcessor) Close() {
	if p.store != nil {
		_ = p.store.Close()
	}
}
