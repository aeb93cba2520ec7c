package vol

import (
	"math"
	"testing"

	"HistVol/pkg/series"
)

func twoAssetFrames(t *testing.T) (o, h, l, c *series.Frame) {
	t.Helper()
	o, h, l, c = series.NewFrame(), series.NewFrame(), series.NewFrame(), series.NewFrame()
	add := func(f *series.Frame, name string, s series.Series) {
		if err := f.Add(name, s); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	add(o, "AAA", series.Series{10, 10.5})
	add(o, "BBB", series.Series{100, 100})
	add(h, "AAA", series.Series{10.2, 10.6})
	add(h, "BBB", series.Series{100, 100})
	add(l, "AAA", series.Series{9.8, 10.3})
	add(l, "BBB", series.Series{100, 100})
	add(c, "AAA", series.Series{10, 10.5})
	add(c, "BBB", series.Series{100, 100})
	return
}

func TestParkinsonFramePerColumn(t *testing.T) {
	_, h, l, _ := twoAssetFrames(t)
	got := ParkinsonFrame(h, l)
	if len(got) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(got))
	}
	want := Parkinson(series.Series{10.2, 10.6}, series.Series{9.8, 10.3})
	if math.Abs(got["AAA"]-want) > 1e-12 {
		t.Fatalf("AAA column diverges from series form: %v vs %v", got["AAA"], want)
	}
	if got["BBB"] != 0 {
		t.Fatalf("constant column should be 0, got %v", got["BBB"])
	}
}

func TestFrameColumnsIndependent(t *testing.T) {
	o, h, l, c := twoAssetFrames(t)
	got := YangZhangFrame(o, h, l, c)
	wantAAA := YangZhang(o.Col("AAA"), h.Col("AAA"), l.Col("AAA"), c.Col("AAA"))
	if !sameFloat(got["AAA"], wantAAA) {
		t.Fatalf("frame result differs from per-series result: %v vs %v", got["AAA"], wantAAA)
	}
}

func TestCloseToCloseFrame(t *testing.T) {
	c := series.NewFrame()
	_ = c.Add("flat", series.Series{100, 100, 100})
	_ = c.Add("moving", series.Series{100, 110, 100})
	got := CloseToCloseFrame(c)
	if got["flat"] != 0 {
		t.Fatalf("expected 0 for flat column, got %v", got["flat"])
	}
	if got["moving"] <= 0 {
		t.Fatalf("expected positive sigma for moving column, got %v", got["moving"])
	}
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
