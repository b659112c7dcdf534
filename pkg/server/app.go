package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "NewsRank/internal/middleware"
	"NewsRank/internal/usecase"
	pkgch "NewsRank/pkg/clickhouse"
	"NewsRank/pkg/config"
	xhttp "NewsRank/pkg/http"
	pkgkafka "NewsRank/pkg/kafka"
	applogger "NewsRank/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	trending   *usecase.TrendingCollector
	pipe       *mid.IngestPipeline
	consumer   *pkgkafka.Consumer
	kh         pkgkafka.MessageHandler
	chClient   *pkgch.Client
	producer   *pkgkafka.Producer
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	trending *usecase.TrendingCollector,
	pipe *mid.IngestPipeline,
	consumer *pkgkafka.Consumer,
	kh pkgkafka.MessageHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		trending: trending,
		pipe:     pipe,
		consumer: consumer,
		kh:       kh,
		chClient: chClient,
		producer: producer,
		handler:  handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := a.logger

	serverOpts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	}
	if a.cfg.Metrics.Enabled {
		serverOpts = append(serverOpts, xhttp.WithRequestMetrics(l, time.Second))
	}
	a.httpServer = xhttp.NewServer(a.handler, serverOpts...)

	// Ingest pipeline flush loop
	if a.pipe != nil {
		a.pipe.Start(ctx)
	}

	// Trending stream; the feed degrades to zero boost without it
	if a.trending != nil {
		go func() {
			if err := a.trending.Start(ctx); err != nil {
				l.Error("trending collector error", applogger.Error(err))
			}
		}()
		l.Info("trending collector started", applogger.String("url", a.cfg.Trending.WebSocketURL))
	}

	// Article consumer
	if a.consumer != nil && a.kh != nil {
		a.consumer.RegisterHandler(a.kh)
		go func() {
			if err := a.consumer.Start(); err != nil {
				l.Error("kafka consumer error", applogger.Error(err))
			}
		}()
		l.Info("kafka consumer started", applogger.String("topic", a.kh.Topic()))
	}

	if err := a.httpServer.Start(); err != nil {
		l.Error("http server start error", applogger.Error(err))
		return err
	}
	l.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	l.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	l := a.logger

	if a.pipe != nil {
		a.pipe.Stop()
	}

	if a.trending != nil {
		if err := a.trending.Stop(); err != nil {
			l.Warn("trending stop error", applogger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		l.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(ctx); err != nil {
			l.Warn("kafka consumer stop error", applogger.Error(err))
		}
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			l.Warn("kafka producer close error", applogger.Error(err))
		}
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			l.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	l.Info("shutdown complete")
	return nil
}
