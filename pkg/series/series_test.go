package series

import (
	"math"
	"testing"
)

func TestShiftLeadingNaN(t *testing.T) {
	s := Series{1, 2, 3}
	got := s.Shift(1)
	if len(got) != 3 {
		t.Fatalf("expected length 3, got %d", len(got))
	}
	if !math.IsNaN(got[0]) {
		t.Fatalf("expected NaN at position 0, got %v", got[0])
	}
	if got[1] != 1 || got[2] != 2 {
		t.Fatalf("unexpected shifted values %v", got)
	}
}

func TestLogRatio(t *testing.T) {
	got := LogRatio(Series{math.E, 1}, Series{1, 1})
	if math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("expected ln(e)=1, got %v", got[0])
	}
	if got[1] != 0 {
		t.Fatalf("expected ln(1)=0, got %v", got[1])
	}
}

func TestLogRatioNonPositive(t *testing.T) {
	got := LogRatio(Series{-1}, Series{1})
	if !math.IsNaN(got[0]) {
		t.Fatalf("expected NaN for log of negative ratio, got %v", got[0])
	}
}

func TestSumSkipsNaN(t *testing.T) {
	s := Series{math.NaN(), 1, 2}
	if got := s.Sum(); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestSumAllNaN(t *testing.T) {
	s := Series{math.NaN(), math.NaN()}
	if got := s.Sum(); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
}

func TestVarianceBessel(t *testing.T) {
	// sample variance of {1,2,3} with ddof=1 is 1
	s := Series{1, 2, 3}
	if got := s.Variance(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestVarianceSkipsNaN(t *testing.T) {
	with := Series{math.NaN(), 1, 2, 3}
	without := Series{1, 2, 3}
	if with.Variance() != without.Variance() {
		t.Fatalf("NaN should be excluded: %v vs %v", with.Variance(), without.Variance())
	}
}

func TestVarianceSingleValue(t *testing.T) {
	s := Series{5}
	if got := s.Variance(); !math.IsNaN(got) {
		t.Fatalf("expected NaN for single observation, got %v", got)
	}
}

func TestStdZeroSpread(t *testing.T) {
	s := Series{2, 2, 2}
	if got := s.Std(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDropNaN(t *testing.T) {
	s := Series{math.NaN(), 1, math.NaN(), 2}
	got := s.DropNaN()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestFrameColumnOrder(t *testing.T) {
	f := NewFrame()
	for _, name := range []string{"zzz", "aaa", "mmm"} {
		if err := f.Add(name, Series{1, 2}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	cols := f.Columns()
	if cols[0] != "zzz" || cols[1] != "aaa" || cols[2] != "mmm" {
		t.Fatalf("insertion order not preserved: %v", cols)
	}
}

func TestFrameLengthMismatch(t *testing.T) {
	f := NewFrame()
	if err := f.Add("a", Series{1, 2}); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := f.Add("b", Series{1, 2, 3}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestFrameDuplicateColumn(t *testing.T) {
	f := NewFrame()
	if err := f.Add("a", Series{1}); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := f.Add("a", Series{2}); err == nil {
		t.Fatalf("expected duplicate column error")
	}
}

func TestFrameApply(t *testing.T) {
	f := NewFrame()
	_ = f.Add("x", Series{1, 2, 3})
	_ = f.Add("y", Series{10, 20, 30})
	got := f.Apply(Series.Sum)
	if got["x"] != 6 || got["y"] != 60 {
		t.Fatalf("unexpected apply result %v", got)
	}
}
