package di

import (
	"context"
	"fmt"
	"time"

	"NewsRank/internal/domain/repository"
	mid "NewsRank/internal/middleware"
	internalrepo "NewsRank/internal/repository"
	"NewsRank/internal/scoring"
	icache "NewsRank/internal/service/cache"
	"NewsRank/internal/services/profile"
	"NewsRank/internal/services/trendwire"
	"NewsRank/internal/usecase"
	pkgcache "NewsRank/pkg/cache"
	pkgch "NewsRank/pkg/clickhouse"
	"NewsRank/pkg/config"
	pkgkafka "NewsRank/pkg/kafka"
	applogger "NewsRank/pkg/logger"
	"NewsRank/pkg/metrics"
)

// ProvideLogger creates the application logger, with Kafka log aggregation
// when a logs topic is configured.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	l, err := applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if cfg.Kafka.LogsTopic != "" && producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          cfg.Kafka.LogsTopic,
			Publisher:      &kafkaLogPublisher{producer: producer},
		})
	}
	return l, nil
}

// kafkaLogPublisher adapts the Kafka producer to the log collector's
// Publisher interface.
type kafkaLogPublisher struct {
	producer *pkgkafka.Producer
}

func (p *kafkaLogPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + cfg.ClickHouse.Database,
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideKafkaConsumer creates a Kafka consumer configured from YAML.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerAutoOffsetReset(cfg.Kafka.Consumer.OffsetReset),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideArticleStore creates ClickHouse article storage and ensures its schema.
func ProvideArticleStore(chClient *pkgch.Client, cfg *config.Config) (repository.ArticleStore, error) {
	store := internalrepo.NewClickHouseArticleStore(chClient.DB(), cfg.ClickHouse.Database+".news_articles")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("article store: %w", err)
	}
	return store, nil
}

// ProvideFeedPublisher creates the Kafka publisher for scored feeds.
func ProvideFeedPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	return internalrepo.NewKafkaFeedPublisher(producer, cfg.Kafka.ScoredTopic)
}

// ProvideBytesCache creates the shared bytes cache: a memory+Redis layered
// cache when Redis is enabled, in-process TTL cache otherwise.
func ProvideBytesCache(cfg *config.Config) (icache.BytesCache, error) {
	if !cfg.Profiles.Redis.Enabled {
		return icache.NewTTLCache(), nil
	}
	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Profiles.Redis.Host),
		pkgcache.WithRedisPort(cfg.Profiles.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Profiles.Redis.Password),
		pkgcache.WithRedisDB(cfg.Profiles.Redis.DB),
		pkgcache.WithRedisPrefix("newsrank"),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	layered := pkgcache.NewLayeredCache(redisCache, pkgcache.WithLayeredMemorySize(2048))
	return icache.NewServiceBytesCache(layered), nil
}

// ProvideProfileStore creates the cached profile service client.
func ProvideProfileStore(cfg *config.Config, cache icache.BytesCache) repository.ProfileStore {
	client := profile.NewClient(cfg.Profiles.ServiceURL, cfg.Profiles.Timeout)
	return internalrepo.NewCachedProfileStore(client, cache, cfg.Profiles.CacheTTL)
}

// ProvideTrendingStream creates the trending-ticker WebSocket stream.
func ProvideTrendingStream(cfg *config.Config) repository.TrendingStream {
	return trendwire.New(
		cfg.Trending.APIKey,
		cfg.Trending.WebSocketURL,
		cfg.Trending.ReconnectDelay,
		cfg.Trending.PingInterval,
	)
}

// ProvideTrendingCollector creates the trending snapshot collector.
func ProvideTrendingCollector(stream repository.TrendingStream, m repository.Metrics, cfg *config.Config) *usecase.TrendingCollector {
	return usecase.NewTrendingCollector(stream, m, cfg.Trending.MaxAge)
}

// ProvideScoringEngine creates the personalization scoring engine.
func ProvideScoringEngine() *scoring.Engine {
	return scoring.NewEngine()
}

// ProvideIngestPipeline builds the validate/dedup/buffer pipeline in front of
// the article store.
func ProvideIngestPipeline(store repository.ArticleStore, m repository.Metrics) *mid.IngestPipeline {
	proc := usecase.NewArticleProcessor(store, m)
	return mid.NewIngestPipeline(proc, m,
		mid.WithDedupWindow(10*time.Minute),
		mid.WithBufferSize(2000),
	)
}

// ProvideArticlesHandler registers the handler for the raw articles topic.
func ProvideArticlesHandler(pipe *mid.IngestPipeline, m repository.Metrics, cfg *config.Config) *usecase.KafkaArticlesHandler {
	return usecase.NewKafkaArticlesHandler(cfg.Kafka.ArticlesTopic, pipe, m)
}

// ProvideFeedUseCase assembles the feed use case.
func ProvideFeedUseCase(
	store repository.ArticleStore,
	profiles repository.ProfileStore,
	trending *usecase.TrendingCollector,
	engine *scoring.Engine,
	cache icache.BytesCache,
	m repository.Metrics,
	pub repository.Publisher,
	cfg *config.Config,
) *usecase.FeedUseCase {
	opts := []usecase.FeedOption{
		usecase.WithFeedCacheTTL(cfg.Feed.CacheTTL),
		usecase.WithMaxFetch(cfg.Feed.MaxArticles),
	}
	if cfg.Feed.PublishScored {
		opts = append(opts, usecase.WithPublisher(pub))
	}
	return usecase.NewFeedUseCase(store, profiles, trending, engine, cache, m, opts...)
}
