package models

import "time"

// Bar represents one OHLCV observation for a symbol and bucket.
type Bar struct {
	Bucket time.Time
	Symbol string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
