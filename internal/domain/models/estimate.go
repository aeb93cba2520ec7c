package models

import (
	"encoding/json"
	"math"
	"time"
)

// JSONFloat is a float64 that marshals NaN and ±Inf as null, since JSON has
// no encoding for them. Estimators legitimately produce NaN (negative
// pre-sqrt variance, degenerate windows) and that must survive the transport
// unmasked rather than be clamped.
type JSONFloat float64

func (f JSONFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (f *JSONFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = JSONFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = JSONFloat(v)
	return nil
}

// VolEstimate is the per-window output of the volatility estimators for one
// symbol. Sigmas holds one daily (annualization-free) sigma per estimator
// name.
type VolEstimate struct {
	Symbol     string               `json:"symbol"`
	Timeframe  string               `json:"tf"`
	Window     int                  `json:"window"`
	Sigmas     map[string]JSONFloat `json:"sigmas"`
	ComputedAt time.Time            `json:"computed_at"`
}

// SeriesEstimate is the per-column output when estimators run over
// caller-supplied OHLC series instead of stored bars.
type SeriesEstimate struct {
	Name   string               `json:"name"`
	Rows   int                  `json:"rows"`
	Sigmas map[string]JSONFloat `json:"sigmas"`
}
