package vol

import (
	"math"
	"testing"

	"HistVol/pkg/series"
)

// two days of plausible OHLC quotes
var (
	testO = series.Series{10, 10.5}
	testH = series.Series{10.2, 10.6}
	testL = series.Series{9.8, 10.3}
	testC = series.Series{10, 10.5}
)

func constOHLC(n int, px float64) (o, h, l, c series.Series) {
	o = make(series.Series, n)
	h = make(series.Series, n)
	l = make(series.Series, n)
	c = make(series.Series, n)
	for i := 0; i < n; i++ {
		o[i], h[i], l[i], c[i] = px, px, px, px
	}
	return
}

func TestCloseToCloseFlatSeries(t *testing.T) {
	if got := CloseToClose(series.Series{100, 100, 100}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCloseToCloseBessel(t *testing.T) {
	c := series.Series{100, 110, 100}
	rets := LogReturns(c)
	mean := (rets[0] + rets[1]) / 2
	want := math.Sqrt(((rets[0]-mean)*(rets[0]-mean) + (rets[1]-mean)*(rets[1]-mean)) / 1)
	if got := CloseToClose(c); math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParkinsonKnownValue(t *testing.T) {
	want := math.Sqrt((math.Pow(math.Log(10.2/9.8), 2) + math.Pow(math.Log(10.6/10.3), 2)) / (4 * 2 * math.Ln2))
	got := Parkinson(testH, testL)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParkinsonFiniteNonNegative(t *testing.T) {
	got := Parkinson(testH, testL)
	if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
		t.Fatalf("expected finite nonnegative sigma, got %v", got)
	}
}

func TestGarmanKlassKnownValue(t *testing.T) {
	sumRange := math.Pow(math.Log(10.2/9.8), 2) + math.Pow(math.Log(10.6/10.3), 2)
	sumIntra := math.Pow(math.Log(10.0/10), 2) + math.Pow(math.Log(10.5/10.5), 2)
	want := math.Sqrt((0.5*sumRange - (2*math.Ln2-1)*sumIntra) / 2)
	got := GarmanKlass(testO, testH, testL, testC)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGarmanKlassNegativeVarianceNaN(t *testing.T) {
	// zero range but a huge opening jump drives the variance negative
	o := series.Series{10, 10}
	h := series.Series{20, 20}
	l := series.Series{20, 20}
	c := series.Series{20, 20}
	if got := GarmanKlass(o, h, l, c); !math.IsNaN(got) {
		t.Fatalf("expected NaN for negative variance, got %v", got)
	}
}

func TestGarmanKlassExtDefined(t *testing.T) {
	// the leading undefined overnight element is skipped by the sum, so the
	// result stays finite
	got := GarmanKlassExt(testO, testH, testL, testC)
	if math.IsNaN(got) {
		t.Fatalf("expected defined sigma, got NaN")
	}
	sumOn := math.Pow(math.Log(10.5/10), 2)
	sumRange := math.Pow(math.Log(10.2/9.8), 2) + math.Pow(math.Log(10.6/10.3), 2)
	sumIntra := math.Pow(math.Log(10.0/10), 2) + math.Pow(math.Log(10.5/10.5), 2)
	want := math.Sqrt((sumOn + sumRange/2 - (2*math.Ln2-1)*sumIntra) / 2)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRodgersSatchellKnownValue(t *testing.T) {
	sum := 0.0
	for i := range testO {
		sum += math.Log(testH[i]/testC[i])*math.Log(testH[i]/testO[i]) +
			math.Log(testL[i]/testC[i])*math.Log(testL[i]/testO[i])
	}
	want := math.Sqrt(sum / 2)
	got := RodgersSatchell(testO, testH, testL, testC)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestYangZhangSingleObservationNaN(t *testing.T) {
	o := series.Series{10}
	h := series.Series{10.2}
	l := series.Series{9.8}
	c := series.Series{10}
	// (N+1)/(N-1) divides by zero; IEEE-754 makes it +Inf and k collapses to
	// 0, while both sample variances are undefined
	if got := YangZhang(o, h, l, c); !math.IsNaN(got) {
		t.Fatalf("expected NaN with one observation, got %v", got)
	}
}

func TestYangZhangDefined(t *testing.T) {
	o := series.Series{10, 10.5, 10.3, 10.8}
	h := series.Series{10.4, 10.9, 10.7, 11.2}
	l := series.Series{9.9, 10.2, 10.1, 10.6}
	c := series.Series{10.3, 10.4, 10.6, 11.0}
	got := YangZhang(o, h, l, c)
	if math.IsNaN(got) || got < 0 {
		t.Fatalf("expected defined nonnegative sigma, got %v", got)
	}
}

func TestAllEstimatorsZeroOnConstantSeries(t *testing.T) {
	o, h, l, c := constOHLC(5, 42)
	checks := map[string]float64{
		"close_to_close":   CloseToClose(c),
		"parkinson":        Parkinson(h, l),
		"garman_klass":     GarmanKlass(o, h, l, c),
		"garman_klass_ext": GarmanKlassExt(o, h, l, c),
		"rodgers_satchell": RodgersSatchell(o, h, l, c),
		"yang_zhang":       YangZhang(o, h, l, c),
	}
	for name, got := range checks {
		if got != 0 {
			t.Fatalf("%s: expected 0 on constant series, got %v", name, got)
		}
	}
}

func TestComputeRegistry(t *testing.T) {
	for _, e := range All() {
		if !IsValid(e) {
			t.Fatalf("estimator %s not valid", e)
		}
		if _, ok := Compute(e, testO, testH, testL, testC); !ok {
			t.Fatalf("estimator %s not computable", e)
		}
	}
	if _, ok := Compute(Estimator("bogus"), testO, testH, testL, testC); ok {
		t.Fatalf("expected unknown estimator to be rejected")
	}
	if IsValid(Estimator("bogus")) {
		t.Fatalf("expected bogus estimator to be invalid")
	}
}
