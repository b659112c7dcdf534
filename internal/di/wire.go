//go:build wireinject
// +build wireinject

package di

import (
	"NewsRank/pkg/config"
	"NewsRank/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Metrics
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,
		ProvideLogger,

		// Repositories
		ProvideArticleStore,
		ProvideFeedPublisher,
		ProvideBytesCache,
		ProvideProfileStore,
		ProvideTrendingStream,

		// Use cases
		ProvideScoringEngine,
		ProvideTrendingCollector,
		ProvideIngestPipeline,
		ProvideArticlesHandler,
		ProvideFeedUseCase,

		// HTTP
		ProvideFeedHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
