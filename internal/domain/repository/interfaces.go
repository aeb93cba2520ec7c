package repository

import (
	"context"
	"time"

	"HistVol/internal/domain/models"
)

// BarStream is a live source of OHLC bars (e.g. a websocket feed).
type BarStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Bar, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Publisher pushes bars to a message broker.
type Publisher interface {
	Publish(ctx context.Context, b *models.Bar) error
	PublishBatch(ctx context.Context, bars []*models.Bar) error
	Close() error
}

// Storage persists bars.
type Storage interface {
	Init(ctx context.Context) error
	Store(ctx context.Context, b *models.Bar) error
	StoreBatch(ctx context.Context, bars []*models.Bar) error
	Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.Bar, error)
	Health(ctx context.Context) error
	Close() error
}

// Metrics records operational counters for the service.
type Metrics interface {
	RecordBarIngested(backend, symbol string)
	RecordError(kind string)
	RecordSigma(symbol, estimator string, sigma float64)
	RecordLatency(op string, seconds float64)
}
