package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"NewsRank/internal/domain/models"
	"NewsRank/internal/domain/repository"
)

// ClickHouseArticleStore implements ArticleStore for ClickHouse.
// Articles are stored with a few query columns plus the full JSON payload,
// so scoring always sees the complete upstream document.
type ClickHouseArticleStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseArticleStore creates ClickHouse article storage.
func NewClickHouseArticleStore(db *sql.DB, table string) repository.ArticleStore {
	return &ClickHouseArticleStore{db: db, table: table}
}

func (s *ClickHouseArticleStore) Init(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id String,
		source String,
		market_type String,
		tickers Array(String),
		published_at DateTime,
		ingested_at DateTime,
		payload String
	) ENGINE = ReplacingMergeTree(ingested_at)
	ORDER BY (id)
	PARTITION BY toYYYYMM(published_at)`, s.table)
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init articles table: %w", err)
	}
	return nil
}

func (s *ClickHouseArticleStore) Store(ctx context.Context, a *models.Article) error {
	if a == nil || a.ID == "" {
		return nil
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal article %s: %w", a.ID, err)
	}
	q := fmt.Sprintf("INSERT INTO %s (id, source, market_type, tickers, published_at, ingested_at, payload) VALUES (?, ?, ?, ?, ?, ?, ?)", s.table)
	_, err = s.db.ExecContext(ctx, q,
		a.ID,
		a.Source,
		a.MarketType,
		a.Tickers,
		publishedOrNow(a),
		time.Now().UTC(),
		string(payload),
	)
	return err
}

func (s *ClickHouseArticleStore) StoreBatch(ctx context.Context, articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	// Multi-row VALUES insert to reduce round-trips, chunked.
	const chunkSize = 500
	for start := 0; start < len(articles); start += chunkSize {
		end := start + chunkSize
		if end > len(articles) {
			end = len(articles)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*7)
		now := time.Now().UTC()
		for _, a := range articles[start:end] {
			if a == nil || a.ID == "" {
				continue
			}
			payload, err := json.Marshal(a)
			if err != nil {
				continue
			}
			values = append(values, "(?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				a.ID,
				a.Source,
				a.MarketType,
				a.Tickers,
				publishedOrNow(a),
				now,
				string(payload),
			)
		}
		if len(values) == 0 {
			continue
		}
		q := fmt.Sprintf("INSERT INTO %s (id, source, market_type, tickers, published_at, ingested_at, payload) VALUES %s", s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *ClickHouseArticleStore) Latest(ctx context.Context, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = 50
	}
	q := fmt.Sprintf("SELECT payload FROM %s FINAL ORDER BY published_at DESC LIMIT ?", s.table)
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a models.Article
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			continue // skip corrupt rows rather than failing the feed
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *ClickHouseArticleStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseArticleStore) Close() error {
	return nil // pool owned by pkg/clickhouse client
}

// publishedOrNow falls back to ingest time so partitioning stays sane for
// articles without a usable timestamp.
func publishedOrNow(a *models.Article) time.Time {
	if t := a.PublishedTime(); !t.IsZero() {
		return t.UTC()
	}
	return time.Now().UTC()
}
