package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	barsIngested *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	lastSigma    *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		barsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "histvol_bars_ingested_total",
				Help: "Total number of bars ingested per backend",
			},
			[]string{"backend", "symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "histvol_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastSigma: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "histvol_last_sigma",
				Help: "Last computed daily sigma per symbol and estimator",
			},
			[]string{"symbol", "estimator"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "histvol_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordBarIngested records a bar routed to a backend.
func (r *Recorder) RecordBarIngested(backend, symbol string) {
	r.barsIngested.WithLabelValues(backend, symbol).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordSigma records the last computed sigma for a symbol. NaN sigmas (an
// estimator's variance went negative, or the window was degenerate) are not
// exported; Prometheus treats NaN as a stale marker.
func (r *Recorder) RecordSigma(symbol, estimator string, sigma float64) {
	if math.IsNaN(sigma) {
		return
	}
	r.lastSigma.WithLabelValues(symbol, estimator).Set(sigma)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
