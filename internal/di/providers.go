package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"HistVol/internal/domain/repository"
	"HistVol/internal/handler/api"
	mid "HistVol/internal/middleware"
	internalrepo "HistVol/internal/repository"
	icache "HistVol/internal/service/cache"
	"HistVol/internal/service/feed"
	"HistVol/internal/services/notify"
	"HistVol/internal/usecase"
	pkgcache "HistVol/pkg/cache"
	pkgch "HistVol/pkg/clickhouse"
	"HistVol/pkg/config"
	pkgkafka "HistVol/pkg/kafka"
	applogger "HistVol/pkg/logger"
	"HistVol/pkg/metrics"
	"HistVol/pkg/queue"
	"HistVol/pkg/server"

	"github.com/redis/go-redis/v9"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := "info"
	if cfg.Environment == "development" {
		level = "debug"
	}
	return applogger.New(&applogger.Config{Level: level, Format: "console", Output: "stdout"})
}

// ProvideClickHouseClient creates a ClickHouse client and initializes the
// bar tables for each supported timeframe.
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

	db := cfg.ClickHouse.Database
	barTable := "(bucket DateTime, symbol String, open Float64, high Float64, low Float64, close Float64, vol Float64) ENGINE=MergeTree ORDER BY (symbol, bucket)"
	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + db,
		"CREATE TABLE IF NOT EXISTS " + db + ".bars_1m " + barTable,
		"CREATE TABLE IF NOT EXISTS " + db + ".bars_1h " + barTable,
		"CREATE TABLE IF NOT EXISTS " + db + ".bars_1d " + barTable,
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

// ProvideBarStorage creates the ClickHouse ingest table writer. Live bars
// land in the 1m table; coarser timeframes are rolled up in ClickHouse.
func ProvideBarStorage(chClient *pkgch.Client, cfg *config.Config) repository.Storage {
	return internalrepo.NewClickHouseStorage(chClient.DB(), cfg.ClickHouse.Database+".bars_1m")
}

// ProvideBarPublisher creates the Kafka bar publisher.
func ProvideBarPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideKafkaBarsHandler registers the handler for the bars topic.
func ProvideKafkaBarsHandler(store repository.Storage, metrics repository.Metrics, cfg *config.Config) *usecase.KafkaBarsHandler {
	return usecase.NewKafkaBarsHandler(cfg.Kafka.Topic, store, metrics)
}

// ProvideFeedStream creates the WebSocket bar stream.
func ProvideFeedStream(cfg *config.Config) repository.BarStream {
	return feed.New(
		cfg.Feed.APIKey,
		cfg.Feed.WebSocketURL,
		cfg.Feed.Symbols,
		cfg.Feed.ReconnectDelay,
		cfg.Feed.PingInterval,
	)
}

// ProvideBarProcessor creates the bar processor use case.
func ProvideBarProcessor(
	pub repository.Publisher,
	store repository.Storage,
	metrics repository.Metrics,
	cfg *config.Config,
) *usecase.BarProcessor {
	return usecase.NewBarProcessor(
		pub,
		store,
		metrics,
		cfg.Backend.Type,
		cfg.Backend.BatchSize,
		cfg.Backend.BatchTimeout,
	)
}

// ProvideBarCollector creates the bar collector with the middleware pipeline
// between the WebSocket stream and the backend.
func ProvideBarCollector(
	stream repository.BarStream,
	processor *usecase.BarProcessor,
	metrics repository.Metrics,
) *usecase.BarCollector {
	pipe := mid.NewRealtimePipeline(processor, metrics,
		mid.WithMaxRPS(50),
		mid.WithBufferSize(2000),
	)
	return usecase.NewBarCollector(stream, processor, metrics, pipe)
}

// ProvideBarStore creates the read-side bar store.
func ProvideBarStore(chClient *pkgch.Client) repository.BarStore {
	return internalrepo.NewCHBarStore(chClient)
}

// ProvideBytesCache selects the estimate cache backend. Layered memory+Redis
// when Redis is enabled, in-process memory cache otherwise.
func ProvideBytesCache(cfg *config.Config) (icache.BytesCache, error) {
	if cfg.Vol.Redis.Enabled {
		host, port, err := splitHostPort(cfg.Vol.Redis.Addr)
		if err != nil {
			return nil, fmt.Errorf("redis addr: %w", err)
		}
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisHost(host),
			pkgcache.WithRedisPort(port),
			pkgcache.WithRedisPassword(cfg.Vol.Redis.Password),
			pkgcache.WithRedisDB(cfg.Vol.Redis.DB),
			pkgcache.WithRedisPrefix("histvol"),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return icache.NewServiceAdapter(pkgcache.NewLayeredCache(rc)), nil
	}
	return icache.NewServiceAdapter(pkgcache.NewMemoryCache()), nil
}

func splitHostPort(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

// ProvideVolAggregator creates the volatility estimation use case.
func ProvideVolAggregator(
	store repository.BarStore,
	c icache.BytesCache,
	metrics repository.Metrics,
	cfg *config.Config,
) *usecase.VolAggregator {
	return usecase.NewVolAggregator(store, c, metrics, cfg.Vol.CacheTTL)
}

// ProvideBarsUseCase creates the bar retrieval use case.
func ProvideBarsUseCase(store repository.BarStore) *usecase.BarsUseCase {
	return usecase.NewBarsUseCase(store)
}

// ProvideNotifier creates the webhook notifier. Nil when no URL configured.
func ProvideNotifier(cfg *config.Config, lgr *applogger.Logger) *notify.WebhookNotifier {
	return notify.NewWebhookNotifier(cfg.Vol.WebhookURL, lgr)
}

// ProvideSweepJob creates the background sweep job.
func ProvideSweepJob(agg *usecase.VolAggregator, notifier *notify.WebhookNotifier, lgr *applogger.Logger) *usecase.SweepJob {
	return usecase.NewSweepJob(agg, notifier, lgr)
}

// ProvideSweepQueue creates the Redis-backed sweep queue. Nil when Redis is
// disabled; the sweep endpoint then reports the queue as unavailable.
func ProvideSweepQueue(cfg *config.Config, job *usecase.SweepJob, lgr *applogger.Logger) *queue.RedisQueue {
	if !cfg.Vol.Redis.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Vol.Redis.Addr,
		Password: cfg.Vol.Redis.Password,
		DB:       cfg.Vol.Redis.DB,
	})
	qc := &queue.QueueConfig{
		Workers:    cfg.Vol.Sweep.Workers,
		RetryLimit: cfg.Vol.Sweep.RetryLimit,
		RetryDelay: cfg.Vol.Sweep.RetryDelay,
	}
	q := queue.NewRedisQueue(lgr, qc, client, queue.ModeProducerConsumer)
	q.RegisterJob(job)
	return q
}

// ProvideVolHandler creates the HTTP handler for the volatility API.
func ProvideVolHandler(
	lgr *applogger.Logger,
	agg *usecase.VolAggregator,
	bars *usecase.BarsUseCase,
	q *queue.RedisQueue,
) *api.VolEchoHandler {
	var sweeps queue.QueueService
	if q != nil {
		sweeps = q
	}
	return api.NewVolEchoHandler(lgr, agg, bars, sweeps)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	collector *usecase.BarCollector,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaBarsHandler,
	chClient *pkgch.Client,
	handler *api.VolEchoHandler,
	sweepQueue *queue.RedisQueue,
) *server.App {
	if consumer != nil {
		consumer.WithConsumerHook(pkgkafka.NoopHook{})
	}
	app := server.New(cfg, collector, consumer, kh, chClient)
	app.SetHTTPHandler(handler)
	if sweepQueue != nil {
		app.SetSweepQueue(sweepQueue)
	}
	if collector != nil {
		app.BarProc = collector.Processor()
	}
	return app
}
