package vol

import (
	"math"
	"testing"

	"HistVol/pkg/series"
)

func TestOvernightReturnsShape(t *testing.T) {
	o := series.Series{10, 10.5, 11}
	c := series.Series{10.2, 10.8, 11.1}
	got := OvernightReturns(o, c)
	if len(got) != len(o) {
		t.Fatalf("expected length %d, got %d", len(o), len(got))
	}
	if !math.IsNaN(got[0]) {
		t.Fatalf("expected undefined leading element, got %v", got[0])
	}
	want := math.Log(10.5 / 10.2)
	if math.Abs(got[1]-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got[1])
	}
}

func TestIntradayReturns(t *testing.T) {
	o := series.Series{10, 10.5}
	c := series.Series{10.2, 10.4}
	got := IntradayReturns(o, c)
	if len(got) != 2 {
		t.Fatalf("expected length 2, got %d", len(got))
	}
	if math.Abs(got[0]-math.Log(10.2/10)) > 1e-12 {
		t.Fatalf("unexpected return %v", got[0])
	}
	if got[1] >= 0 {
		t.Fatalf("expected negative return for close below open, got %v", got[1])
	}
}

func TestIntradayRangeNonNegative(t *testing.T) {
	h := series.Series{10.2, 10.6, 11}
	l := series.Series{9.8, 10.3, 11}
	got := IntradayRange(h, l)
	if len(got) != len(h) {
		t.Fatalf("expected length %d, got %d", len(h), len(got))
	}
	for i, v := range got {
		if v < 0 {
			t.Fatalf("range at %d negative: %v", i, v)
		}
	}
	if got[2] != 0 {
		t.Fatalf("expected 0 for H=L, got %v", got[2])
	}
}

func TestLogReturnsDropsLeading(t *testing.T) {
	v := series.Series{100, 101, 103}
	got := LogReturns(v)
	if len(got) != len(v)-1 {
		t.Fatalf("expected length %d, got %d", len(v)-1, len(got))
	}
	if math.Abs(got[0]-math.Log(101.0/100)) > 1e-12 {
		t.Fatalf("unexpected first return %v", got[0])
	}
}

func TestLogReturnsSingleValue(t *testing.T) {
	got := LogReturns(series.Series{100})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
