package models

// Requests for the volatility HTTP endpoints. Defined in domain for
// consistency and reuse.

type VolRequest struct {
	Symbol     string   `query:"symbol" json:"symbol" validate:"required"`
	N          int      `query:"n" json:"n" default:"30" validate:"gte=2,lte=5000"`
	TF         string   `query:"tf" json:"tf" default:"1d" validate:"oneof=1m 1h 1d"`
	Estimators []string `query:"estimators" json:"estimators" validate:"omitempty,dive,oneof=close_to_close parkinson garman_klass garman_klass_ext rodgers_satchell yang_zhang"`
}

// OHLCSeries is one named column of caller-supplied prices.
type OHLCSeries struct {
	Name  string    `json:"name" validate:"required"`
	Open  []float64 `json:"open" validate:"required,min=1"`
	High  []float64 `json:"high" validate:"required,min=1"`
	Low   []float64 `json:"low" validate:"required,min=1"`
	Close []float64 `json:"close" validate:"required,min=1"`
}

type VolSeriesRequest struct {
	Series     []OHLCSeries `json:"series" validate:"required,min=1,dive"`
	Estimators []string     `json:"estimators" validate:"omitempty,dive,oneof=close_to_close parkinson garman_klass garman_klass_ext rodgers_satchell yang_zhang"`
}

type BarsRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
	TF     string `query:"tf" json:"tf" default:"1d" validate:"oneof=1m 1h 1d"`
	Limit  int    `query:"limit" json:"limit" default:"1000" validate:"gte=1,lte=50000"`
}

type SweepRequest struct {
	Symbols []string `json:"symbols" validate:"required,min=1"`
	N       int      `json:"n" default:"30" validate:"gte=2,lte=5000"`
	TF      string   `json:"tf" default:"1d" validate:"oneof=1m 1h 1d"`
}
