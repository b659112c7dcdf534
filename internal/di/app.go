package di

import (
	"context"
	"time"

	"NewsRank/internal/handler/api"
	"NewsRank/internal/usecase"
	pkgch "NewsRank/pkg/clickhouse"
	"NewsRank/pkg/config"
	xhttp "NewsRank/pkg/http"
	pkgkafka "NewsRank/pkg/kafka"
	applogger "NewsRank/pkg/logger"
	"NewsRank/pkg/server"

	mid "NewsRank/internal/middleware"
	"github.com/segmentio/kafka-go"
)

// ProvideFeedHandler builds the Echo handler for the feed endpoints.
func ProvideFeedHandler(
	logger *applogger.Logger,
	feed *usecase.FeedUseCase,
	trending *usecase.TrendingCollector,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewFeedEchoHandler(logger, feed, trending, cfg.Feed.RateLimitBurst, cfg.Feed.RateLimitRPS)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	trending *usecase.TrendingCollector,
	pipe *mid.IngestPipeline,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaArticlesHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	handler xhttp.Handler,
) *server.App {
	if consumer != nil {
		consumer.WithConsumerHook(consumerHooks(logger))
	}
	return server.New(cfg, logger, trending, pipe, consumer, kh, chClient, producer, handler)
}

// consumerHooks stamps each message with its trace id and start time, and
// logs handler failures with that correlation data.
func consumerHooks(logger *applogger.Logger) pkgkafka.ConsumerHook {
	tracing := pkgkafka.HookFuncs{
		Before: func(ctx context.Context, topic string, km kafka.Message, data []byte) (context.Context, kafka.Message, []byte, error) {
			ctx = pkgkafka.WithStartTime(ctx, time.Now())
			ctx = pkgkafka.WithTraceID(ctx, pkgkafka.ExtractTraceID(km))
			return ctx, km, data, nil
		},
	}
	errLog := pkgkafka.HookFuncs{
		Err: func(ctx context.Context, topic string, km kafka.Message, data []byte, err error) {
			fields := []applogger.Field{
				applogger.String("topic", topic),
				applogger.Error(err),
			}
			if traceID, ok := ctx.Value(pkgkafka.CtxTraceID).(string); ok {
				fields = append(fields, applogger.String("trace_id", traceID))
			}
			if start, ok := ctx.Value(pkgkafka.CtxStartTime).(time.Time); ok {
				fields = append(fields, applogger.Duration("elapsed", time.Since(start)))
			}
			logger.Warn("kafka message failed", fields...)
		},
	}
	return pkgkafka.NewHookChain(tracing, errLog)
}
