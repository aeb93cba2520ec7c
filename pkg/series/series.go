package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Series is an ordered sequence of float64 observations indexed by time step.
// NaN marks an undefined position (e.g. a shifted-in leading value). Elementwise
// operations propagate NaN; reductions skip it.
type Series []float64

// Clone returns a copy of the series.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Shift returns the series moved forward by k positions. The k leading
// positions become NaN. Shift(0) returns a copy.
func (s Series) Shift(k int) Series {
	out := make(Series, len(s))
	for i := range out {
		if i < k {
			out[i] = math.NaN()
			continue
		}
		out[i] = s[i-k]
	}
	return out
}

// Square returns the elementwise square.
func (s Series) Square() Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v * v
	}
	return out
}

// DropNaN returns the series with all NaN positions removed.
func (s Series) DropNaN() Series {
	out := make(Series, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// LogRatio computes ln(a_i / b_i) elementwise. Both series must have the same
// length; lengths are not validated and a shorter b panics on overrun, matching
// the undefined behavior of misaligned input elsewhere in the package.
func LogRatio(a, b Series) Series {
	out := make(Series, len(a))
	for i := range a {
		out[i] = math.Log(a[i] / b[i])
	}
	return out
}

// Mul computes the elementwise product a_i * b_i.
func Mul(a, b Series) Series {
	out := make(Series, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// Sum reduces the series to the sum of its defined values. A series with no
// defined values reduces to NaN.
func (s Series) Sum() float64 {
	sum := 0.0
	n := 0
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum
}

// Mean reduces the series to the arithmetic mean of its defined values.
func (s Series) Mean() float64 {
	v := s.DropNaN()
	if len(v) == 0 {
		return math.NaN()
	}
	return stat.Mean(v, nil)
}

// Variance reduces the series to the sample variance (Bessel's correction) of
// its defined values. Fewer than two defined values reduce to NaN.
func (s Series) Variance() float64 {
	v := s.DropNaN()
	if len(v) < 2 {
		return math.NaN()
	}
	return stat.Variance(v, nil)
}

// Std reduces the series to the sample standard deviation (Bessel's
// correction) of its defined values.
func (s Series) Std() float64 {
	v := s.DropNaN()
	if len(v) < 2 {
		return math.NaN()
	}
	return stat.StdDev(v, nil)
}
