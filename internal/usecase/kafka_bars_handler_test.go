package usecase

import (
	"context"
	"testing"
	"time"

	"HistVol/internal/domain/models"
)

type fakeStorage struct {
	stored []*models.Bar
	batch  [][]*models.Bar
}

func (f *fakeStorage) Init(context.Context) error { return nil }
func (f *fakeStorage) Store(_ context.Context, b *models.Bar) error {
	f.stored = append(f.stored, b)
	return nil
}
func (f *fakeStorage) StoreBatch(_ context.Context, bars []*models.Bar) error {
	f.batch = append(f.batch, bars)
	return nil
}
func (f *fakeStorage) Query(context.Context, string, time.Time, time.Time, int) ([]*models.Bar, error) {
	return nil, nil
}
func (f *fakeStorage) Health(context.Context) error { return nil }
func (f *fakeStorage) Close() error                 { return nil }

func TestKafkaBarsHandlerStoresBar(t *testing.T) {
	store := &fakeStorage{}
	h := NewKafkaBarsHandler("bars_1m", store, noopMetrics{})

	msg := []byte(`{"symbol":"ETHUSDT","t":1714557600,"o":3000,"h":3010,"l":2990,"c":3005,"v":12.5}`)
	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(store.stored) != 1 {
		t.Fatalf("stored %d bars, want 1", len(store.stored))
	}
	b := store.stored[0]
	if b.Symbol != "ETHUSDT" || b.Open != 3000 || b.High != 3010 || b.Low != 2990 || b.Close != 3005 {
		t.Fatalf("unexpected bar %+v", b)
	}
	if b.Bucket.Unix() != 1714557600 {
		t.Fatalf("bucket = %v", b.Bucket)
	}
}

func TestKafkaBarsHandlerMillisTimestamp(t *testing.T) {
	store := &fakeStorage{}
	h := NewKafkaBarsHandler("bars_1m", store, noopMetrics{})

	msg := []byte(`{"symbol":"ETHUSDT","t":1714557600123,"o":1,"h":1,"l":1,"c":1,"v":0}`)
	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got := store.stored[0].Bucket.Unix(); got != 1714557600 {
		t.Fatalf("bucket unix = %d, want 1714557600", got)
	}
}

func TestKafkaBarsHandlerBadPayload(t *testing.T) {
	h := NewKafkaBarsHandler("bars_1m", &fakeStorage{}, noopMetrics{})
	if err := h.Handle(context.Background(), []byte("not json")); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
