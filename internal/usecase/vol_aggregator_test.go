package usecase

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"HistVol/internal/domain/models"
	domrepo "HistVol/internal/domain/repository"
)

type fakeBarStore struct {
	bars  []models.Bar
	calls int
}

func (f *fakeBarStore) GetBars(_ context.Context, _ string, _, _ time.Time, _ domrepo.Timeframe) ([]models.Bar, error) {
	f.calls++
	return f.bars, nil
}

func (f *fakeBarStore) GetLatestNBars(_ context.Context, _ string, n int, _ domrepo.Timeframe) ([]models.Bar, error) {
	f.calls++
	if n > len(f.bars) {
		n = len(f.bars)
	}
	return f.bars[len(f.bars)-n:], nil
}

type mapCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{m: make(map[string][]byte)} }

func (c *mapCache) GetBytes(key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.m[key]
	return b, ok, nil
}

func (c *mapCache) SetBytes(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
	return nil
}

type noopMetrics struct{}

func (noopMetrics) RecordBarIngested(string, string)    {}
func (noopMetrics) RecordError(string)                  {}
func (noopMetrics) RecordSigma(string, string, float64) {}
func (noopMetrics) RecordLatency(string, float64)       {}

func testBars(n int) []models.Bar {
	bars := make([]models.Bar, n)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	price := 100.0
	for i := range bars {
		// mild up-drift with intrabar range
		o := price
		c := price * (1 + 0.001*float64(i%5-2))
		h := math.Max(o, c) * 1.004
		l := math.Min(o, c) * 0.996
		bars[i] = models.Bar{
			Bucket: base.AddDate(0, 0, i),
			Symbol: "BTCUSDT",
			Open:   o, High: h, Low: l, Close: c,
			Volume: 10,
		}
		price = c
	}
	return bars
}

func TestEstimateAllEstimators(t *testing.T) {
	store := &fakeBarStore{bars: testBars(40)}
	agg := NewVolAggregator(store, newMapCache(), noopMetrics{}, time.Minute)

	est, err := agg.Estimate(context.Background(), "BTCUSDT", 30, domrepo.TF1d, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.Window != 30 {
		t.Fatalf("window = %d, want 30", est.Window)
	}
	if len(est.Sigmas) != 6 {
		t.Fatalf("got %d sigmas, want 6", len(est.Sigmas))
	}
	for name, s := range est.Sigmas {
		v := float64(s)
		if math.IsNaN(v) || v < 0 {
			t.Fatalf("%s sigma = %v, want finite non-negative", name, v)
		}
	}
}

func TestEstimateUsesCache(t *testing.T) {
	store := &fakeBarStore{bars: testBars(40)}
	agg := NewVolAggregator(store, newMapCache(), noopMetrics{}, time.Minute)

	first, err := agg.Estimate(context.Background(), "BTCUSDT", 30, domrepo.TF1d, []string{"parkinson"})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	second, err := agg.Estimate(context.Background(), "BTCUSDT", 30, domrepo.TF1d, []string{"parkinson"})
	if err != nil {
		t.Fatalf("estimate (cached): %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("store calls = %d, want 1", store.calls)
	}
	if first.Sigmas["parkinson"] != second.Sigmas["parkinson"] {
		t.Fatalf("cached sigma mismatch: %v vs %v", first.Sigmas["parkinson"], second.Sigmas["parkinson"])
	}
}

func TestEstimateUnknownEstimator(t *testing.T) {
	agg := NewVolAggregator(&fakeBarStore{bars: testBars(10)}, nil, noopMetrics{}, 0)
	_, err := agg.Estimate(context.Background(), "BTCUSDT", 5, domrepo.TF1d, []string{"ewma"})
	if err == nil {
		t.Fatal("expected error for unknown estimator")
	}
}

func TestEstimateNoBars(t *testing.T) {
	agg := NewVolAggregator(&fakeBarStore{}, nil, noopMetrics{}, 0)
	_, err := agg.Estimate(context.Background(), "NOPE", 30, domrepo.TF1d, nil)
	if err == nil {
		t.Fatal("expected error for empty symbol history")
	}
}

func TestEstimateSeries(t *testing.T) {
	agg := NewVolAggregator(nil, nil, noopMetrics{}, 0)
	cols := []models.OHLCSeries{
		{
			Name:  "flat",
			Open:  []float64{10, 10, 10},
			High:  []float64{10, 10, 10},
			Low:   []float64{10, 10, 10},
			Close: []float64{10, 10, 10},
		},
		{
			Name:  "moving",
			Open:  []float64{10, 10.5, 10.2},
			High:  []float64{10.6, 10.9, 10.4},
			Low:   []float64{9.9, 10.3, 10.0},
			Close: []float64{10.5, 10.4, 10.1},
		},
	}
	out, err := agg.EstimateSeries(cols, []string{"parkinson", "yang_zhang"})
	if err != nil {
		t.Fatalf("estimate series: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	if out[0].Rows != 3 || out[1].Rows != 3 {
		t.Fatalf("rows = %d/%d, want 3/3", out[0].Rows, out[1].Rows)
	}
	if v := float64(out[0].Sigmas["parkinson"]); v != 0 {
		t.Fatalf("flat parkinson = %v, want 0", v)
	}
	if v := float64(out[1].Sigmas["parkinson"]); !(v > 0) {
		t.Fatalf("moving parkinson = %v, want > 0", v)
	}
}
