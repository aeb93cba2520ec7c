//go:build wireinject
// +build wireinject

package di

import (
	"HistVol/pkg/config"
	"HistVol/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvideBarStorage,
		ProvideBarPublisher,
		ProvideBarStore,
		ProvideFeedStream,
		ProvideBytesCache,

		// Use cases
		ProvideBarProcessor,
		ProvideBarCollector,
		ProvideKafkaBarsHandler,
		ProvideVolAggregator,
		ProvideBarsUseCase,
		ProvideNotifier,
		ProvideSweepJob,
		ProvideSweepQueue,

		// HTTP
		ProvideVolHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
