package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"HistVol/internal/domain/models"
)

type countingProc struct {
	n    int
	fail bool
}

func (p *countingProc) Process(context.Context, *models.Bar) error {
	if p.fail {
		return errors.New("downstream down")
	}
	p.n++
	return nil
}

type testMetrics struct {
	errs map[string]int
}

func newTestMetrics() *testMetrics { return &testMetrics{errs: make(map[string]int)} }

func (m *testMetrics) RecordBarIngested(string, string)    {}
func (m *testMetrics) RecordError(kind string)             { m.errs[kind]++ }
func (m *testMetrics) RecordSigma(string, string, float64) {}
func (m *testMetrics) RecordLatency(string, float64)       {}

func validTestBar() *models.Bar {
	return &models.Bar{
		Bucket: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Symbol: "BTCUSDT",
		Open:   100, High: 101, Low: 99, Close: 100.5,
		Volume: 1,
	}
}

func TestPipelineForwardsValidBar(t *testing.T) {
	proc := &countingProc{}
	p := NewRealtimePipeline(proc, newTestMetrics())

	if err := p.Process(context.Background(), validTestBar()); err != nil {
		t.Fatalf("process: %v", err)
	}
	if proc.n != 1 {
		t.Fatalf("forwarded %d bars, want 1", proc.n)
	}
}

func TestPipelineRejectsInvalidBars(t *testing.T) {
	proc := &countingProc{}
	m := newTestMetrics()
	p := NewRealtimePipeline(proc, m)

	cases := []func(*models.Bar){
		func(b *models.Bar) { b.Symbol = "" },
		func(b *models.Bar) { b.Bucket = time.Time{} },
		func(b *models.Bar) { b.Open = 0 },
		func(b *models.Bar) { b.High = 98 }, // below low
		func(b *models.Bar) { b.Volume = -1 },
	}
	for i, mutate := range cases {
		b := validTestBar()
		mutate(b)
		if err := p.Process(context.Background(), b); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
	if err := p.Process(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil bar")
	}
	if proc.n != 0 {
		t.Fatalf("forwarded %d invalid bars", proc.n)
	}
	if m.errs["pipeline_validate"] != 6 {
		t.Fatalf("validate errors = %d, want 6", m.errs["pipeline_validate"])
	}
}

func TestPipelineBuffersOnDownstreamError(t *testing.T) {
	proc := &countingProc{fail: true}
	m := newTestMetrics()
	p := NewRealtimePipeline(proc, m, WithBufferSize(4))

	if err := p.Process(context.Background(), validTestBar()); err == nil {
		t.Fatal("expected downstream error")
	}
	if m.errs["pipeline_process"] != 1 {
		t.Fatalf("process errors = %d, want 1", m.errs["pipeline_process"])
	}
	if len(p.bufCh) != 1 {
		t.Fatalf("buffered %d bars, want 1", len(p.bufCh))
	}
}

func TestPipelineThrottlesPerSymbol(t *testing.T) {
	proc := &countingProc{}
	m := newTestMetrics()
	p := NewRealtimePipeline(proc, m, WithMaxRPS(1))

	for i := 0; i < 3; i++ {
		if err := p.Process(context.Background(), validTestBar()); err != nil {
			t.Fatalf("process %d: %v", i, err)
		}
	}
	if proc.n != 1 {
		t.Fatalf("forwarded %d bars, want 1 after throttle", proc.n)
	}
	if m.errs["pipeline_throttle"] != 2 {
		t.Fatalf("throttle errors = %d, want 2", m.errs["pipeline_throttle"])
	}
}

func TestPipelineTransformHook(t *testing.T) {
	proc := &countingProc{}
	p := NewRealtimePipeline(proc, newTestMetrics(),
		WithTransform(func(b *models.Bar) *models.Bar {
			b.Symbol = "X:" + b.Symbol
			return b
		}))

	b := validTestBar()
	if err := p.Process(context.Background(), b); err != nil {
		t.Fatalf("process: %v", err)
	}
	if b.Symbol != "X:BTCUSDT" {
		t.Fatalf("transform not applied: %s", b.Symbol)
	}
}
