package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJSONFloatMarshal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.0123, "0.0123"},
		{0, "0"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(JSONFloat(tc.in))
		if err != nil {
			t.Fatalf("marshal %v: %v", tc.in, err)
		}
		if string(b) != tc.want {
			t.Fatalf("marshal %v = %s, want %s", tc.in, b, tc.want)
		}
	}
}

func TestJSONFloatUnmarshalNull(t *testing.T) {
	var f JSONFloat
	if err := json.Unmarshal([]byte("null"), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsNaN(float64(f)) {
		t.Fatalf("got %v, want NaN", float64(f))
	}
}

func TestVolEstimateRoundTrip(t *testing.T) {
	est := VolEstimate{
		Symbol:    "BTCUSDT",
		Timeframe: "1d",
		Window:    30,
		Sigmas: map[string]JSONFloat{
			"parkinson":    JSONFloat(0.012),
			"garman_klass": JSONFloat(math.NaN()),
		},
	}
	b, err := json.Marshal(est)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got VolEstimate
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Sigmas["parkinson"] != JSONFloat(0.012) {
		t.Fatalf("parkinson = %v", got.Sigmas["parkinson"])
	}
	if !math.IsNaN(float64(got.Sigmas["garman_klass"])) {
		t.Fatalf("garman_klass = %v, want NaN", got.Sigmas["garman_klass"])
	}
}
