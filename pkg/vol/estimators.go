package vol

import (
	"math"

	"HistVol/pkg/series"
)

// CloseToClose computes realized volatility as the sample standard deviation
// (Bessel's correction) of close-to-close log returns.
func CloseToClose(c series.Series) float64 {
	return LogReturns(c).Std()
}

// Parkinson computes the high-low range estimator, assuming zero drift and no
// opening jumps: sqrt(sum(ln(H/L)^2) / (4 N ln2)).
func Parkinson(h, l series.Series) float64 {
	ranges := IntradayRange(h, l).Square()
	return math.Sqrt(ranges.Sum() / (4 * float64(len(ranges)) * math.Ln2))
}

// GarmanKlass extends Parkinson with open-to-close information:
// sqrt((0.5 sum(ln(H/L)^2) - (2 ln2 - 1) sum(ln(C/O)^2)) / N).
// Large opening jumps relative to the intraday range can drive the variance
// negative, in which case the result is NaN; it is not clamped.
func GarmanKlass(o, h, l, c series.Series) float64 {
	ranges := IntradayRange(h, l).Square()
	// ln(O/C) rather than ln(C/O); the sign cancels under squaring
	intra := IntradayReturns(c, o).Square()
	v := 0.5*ranges.Sum() - (2*math.Ln2-1)*intra.Sum()
	return math.Sqrt(v / float64(len(ranges)))
}

// GarmanKlassExt adds the overnight gap variance to GarmanKlass:
// sqrt((sum(on^2) + sum(ln(H/L)^2)/2 - (2 ln2 - 1) sum(ln(C/O)^2)) / N).
// The overnight series carries an undefined leading element that the sum
// skips, so the result stays defined for well-formed prices.
func GarmanKlassExt(o, h, l, c series.Series) float64 {
	on := OvernightReturns(o, c).Square()
	intra := IntradayReturns(o, c).Square()
	ranges := IntradayRange(h, l).Square()
	v := on.Sum() + ranges.Sum()/2 - (2*math.Ln2-1)*intra.Sum()
	return math.Sqrt(v / float64(len(o)))
}

// RodgersSatchell computes the drift-independent Rogers-Satchell estimator:
// sqrt((sum(ln(H/C) ln(H/O)) + sum(ln(L/C) ln(L/O))) / N). Unusual H/L/O/C
// relationships can drive the variance negative, yielding NaN; not clamped.
func RodgersSatchell(o, h, l, c series.Series) float64 {
	highRef := series.Mul(series.LogRatio(h, c), series.LogRatio(h, o))
	lowRef := series.Mul(series.LogRatio(l, c), series.LogRatio(l, o))
	return math.Sqrt((highRef.Sum() + lowRef.Sum()) / float64(len(o)))
}

// YangZhang combines overnight variance, intraday variance, and the
// Rodgers-Satchell term: sqrt(Von + k Vco + (1-k) RS^2) with
// k = 0.34 / (1.34 + (N+1)/(N-1)). With a single observation (N+1)/(N-1)
// divides by zero (+Inf, so k is 0) and both sample variances are undefined,
// producing NaN.
func YangZhang(o, h, l, c series.Series) float64 {
	n := float64(len(o))
	k := 0.34 / (1.34 + (n+1)/(n-1))
	von := OvernightReturns(o, c).Variance()
	vco := IntradayReturns(o, c).Variance()
	rs := RodgersSatchell(o, h, l, c)
	return math.Sqrt(von + k*vco + (1-k)*rs*rs)
}
