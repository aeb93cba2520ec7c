package vol

import "HistVol/pkg/series"

// Frame variants apply an estimator column by column: inputs are frames with
// matching column names, the result is one sigma per column. Columns never
// interact.

// CloseToCloseFrame applies CloseToClose per column.
func CloseToCloseFrame(c *series.Frame) map[string]float64 {
	return c.Apply(CloseToClose)
}

// ParkinsonFrame applies Parkinson per column.
func ParkinsonFrame(h, l *series.Frame) map[string]float64 {
	out := make(map[string]float64, len(h.Columns()))
	for _, name := range h.Columns() {
		out[name] = Parkinson(h.Col(name), l.Col(name))
	}
	return out
}

// GarmanKlassFrame applies GarmanKlass per column.
func GarmanKlassFrame(o, h, l, c *series.Frame) map[string]float64 {
	return applyOHLC(o, h, l, c, GarmanKlass)
}

// GarmanKlassExtFrame applies GarmanKlassExt per column.
func GarmanKlassExtFrame(o, h, l, c *series.Frame) map[string]float64 {
	return applyOHLC(o, h, l, c, GarmanKlassExt)
}

// RodgersSatchellFrame applies RodgersSatchell per column.
func RodgersSatchellFrame(o, h, l, c *series.Frame) map[string]float64 {
	return applyOHLC(o, h, l, c, RodgersSatchell)
}

// YangZhangFrame applies YangZhang per column.
func YangZhangFrame(o, h, l, c *series.Frame) map[string]float64 {
	return applyOHLC(o, h, l, c, YangZhang)
}

func applyOHLC(o, h, l, c *series.Frame, fn func(o, h, l, c series.Series) float64) map[string]float64 {
	out := make(map[string]float64, len(o.Columns()))
	for _, name := range o.Columns() {
		out[name] = fn(o.Col(name), h.Col(name), l.Col(name), c.Col(name))
	}
	return out
}
