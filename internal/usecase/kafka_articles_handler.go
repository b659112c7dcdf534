package usecase

import (
	"context"
	"encoding/json"
	"time"

	"NewsRank/internal/domain/models"
	domrepo "NewsRank/internal/domain/repository"
	mid "NewsRank/internal/middleware"
	pkgkafka "NewsRank/pkg/kafka"
)

// KafkaArticlesHandler consumes raw article messages and feeds the ingest
// pipeline.
type KafkaArticlesHandler struct {
	topic   string
	pipe    *mid.IngestPipeline
	metrics domrepo.Metrics
}

func NewKafkaArticlesHandler(topic string, pipe *mid.IngestPipeline, metrics domrepo.Metrics) *KafkaArticlesHandler {
	return &KafkaArticlesHandler{topic: topic, pipe: pipe, metrics: metrics}
}

func (h *KafkaArticlesHandler) Topic() string { return h.topic }

// Handle parses one article message and pushes it through the pipeline.
// Malformed optional fields inside the article degrade at scoring time;
// only an unparseable envelope or a missing ID is an error here.
func (h *KafkaArticlesHandler) Handle(ctx context.Context, b []byte) error {
	var a models.Article
	if err := json.Unmarshal(b, &a); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	if t := a.PublishedTime(); !t.IsZero() {
		h.metrics.RecordLatency("ingest_e2e_seconds", time.Since(t).Seconds())
	}

	start := time.Now()
	if err := h.pipe.Process(ctx, &a); err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordLatency("ch_insert_seconds", time.Since(start).Seconds())
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaArticlesHandler)(nil)
