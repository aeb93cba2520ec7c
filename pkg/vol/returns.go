// Package vol implements historical volatility estimators over OHLC price
// series.
//
// ref: http://www.todaysgroep.nl/media/236846/measuring_historic_volatility.pdf
//
// All estimators are pure: they take equal-length price series, return a
// daily (annualization-free) sigma, and never mutate their inputs. Prices
// are assumed strictly positive and aligned by position; neither is
// validated, and violations surface as NaN per IEEE-754.
package vol

import "HistVol/pkg/series"

// OvernightReturns computes the log gap between each day's open and the
// previous day's close, ln(O_i / C_{i-1}). The result has the same length as
// the inputs with position 0 undefined (NaN): no prior close exists.
func OvernightReturns(o, c series.Series) series.Series {
	return series.LogRatio(o, c.Shift(1))
}

// IntradayReturns computes the open-to-close log return ln(C_i / O_i).
func IntradayReturns(o, c series.Series) series.Series {
	return series.LogRatio(c, o)
}

// IntradayRange computes ln(H_i / L_i), nonnegative whenever H >= L.
func IntradayRange(h, l series.Series) series.Series {
	return series.LogRatio(h, l)
}

// LogReturns computes day-over-day log returns ln(v_i / v_{i-1}). Unlike
// OvernightReturns, the undefined leading position is dropped: the result is
// one element shorter than the input.
func LogReturns(v series.Series) series.Series {
	return series.LogRatio(v, v.Shift(1)).DropNaN()
}
