package usecase

import (
	"context"
	"testing"
	"time"

	applogger "HistVol/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestSweepJobHandle(t *testing.T) {
	store := &fakeBarStore{bars: testBars(40)}
	agg := NewVolAggregator(store, newMapCache(), noopMetrics{}, time.Minute)
	job := NewSweepJob(agg, nil, testLogger(t))

	if job.Type() != SweepJobType {
		t.Fatalf("type = %s", job.Type())
	}

	// payload arrives as a decoded JSON map from the queue
	payload := map[string]interface{}{
		"symbols": []interface{}{"BTCUSDT", "ETHUSDT"},
		"n":       10,
		"tf":      "1d",
	}
	if err := job.Handle(context.Background(), payload); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("store calls = %d, want 2", store.calls)
	}
}

func TestSweepJobBadPayload(t *testing.T) {
	agg := NewVolAggregator(&fakeBarStore{bars: testBars(10)}, nil, noopMetrics{}, 0)
	job := NewSweepJob(agg, nil, testLogger(t))

	if err := job.Handle(context.Background(), 42); err == nil {
		t.Fatal("expected payload error")
	}
}
