package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"HistVol/internal/domain/models"
	domrepo "HistVol/internal/domain/repository"
	icache "HistVol/internal/service/cache"
	"HistVol/pkg/series"
	"HistVol/pkg/vol"
)

// VolAggregator computes volatility estimates over stored bars, with a
// read-through cache keyed by (symbol, timeframe, window, estimator set).
type VolAggregator struct {
	store   domrepo.BarStore
	cache   icache.BytesCache
	metrics domrepo.Metrics
	ttl     time.Duration
}

func NewVolAggregator(store domrepo.BarStore, c icache.BytesCache, metrics domrepo.Metrics, ttl time.Duration) *VolAggregator {
	return &VolAggregator{store: store, cache: c, metrics: metrics, ttl: ttl}
}

// resolveEstimators maps raw names to estimators, defaulting to all.
func resolveEstimators(names []string) ([]vol.Estimator, error) {
	if len(names) == 0 {
		return vol.All(), nil
	}
	out := make([]vol.Estimator, 0, len(names))
	for _, n := range names {
		e := vol.Estimator(n)
		if !vol.IsValid(e) {
			return nil, fmt.Errorf("unknown estimator: %s", n)
		}
		out = append(out, e)
	}
	return out, nil
}

// Estimate computes the requested estimators over the latest n bars of one
// symbol.
func (a *VolAggregator) Estimate(ctx context.Context, symbol string, n int, tf domrepo.Timeframe, estimators []string) (models.VolEstimate, error) {
	ests, err := resolveEstimators(estimators)
	if err != nil {
		return models.VolEstimate{}, err
	}

	key := cacheKey(symbol, tf, n, ests)
	if a.cache != nil {
		if b, ok, _ := a.cache.GetBytes(key); ok {
			var cached models.VolEstimate
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	start := time.Now()
	bars, err := a.store.GetLatestNBars(ctx, symbol, n, tf)
	if err != nil {
		a.metrics.RecordError("vol_store")
		return models.VolEstimate{}, fmt.Errorf("latest bars: %w", err)
	}
	if len(bars) == 0 {
		return models.VolEstimate{}, fmt.Errorf("no bars for %s", symbol)
	}

	o, h, l, c := barsToSeries(bars)
	est := models.VolEstimate{
		Symbol:     symbol,
		Timeframe:  string(tf),
		Window:     len(bars),
		Sigmas:     make(map[string]models.JSONFloat, len(ests)),
		ComputedAt: time.Now().UTC(),
	}
	for _, e := range ests {
		sigma, _ := vol.Compute(e, o, h, l, c)
		est.Sigmas[string(e)] = models.JSONFloat(sigma)
		a.metrics.RecordSigma(symbol, string(e), sigma)
	}
	a.metrics.RecordLatency("vol_estimate", time.Since(start).Seconds())

	if a.cache != nil {
		if b, err := json.Marshal(est); err == nil {
			_ = a.cache.SetBytes(key, b, a.ttl)
		}
	}
	return est, nil
}

// EstimateSeries computes the requested estimators over caller-supplied OHLC
// columns. No storage or cache is involved; each column is independent.
func (a *VolAggregator) EstimateSeries(cols []models.OHLCSeries, estimators []string) ([]models.SeriesEstimate, error) {
	ests, err := resolveEstimators(estimators)
	if err != nil {
		return nil, err
	}

	out := make([]models.SeriesEstimate, 0, len(cols))
	for _, col := range cols {
		o := series.Series(col.Open)
		h := series.Series(col.High)
		l := series.Series(col.Low)
		c := series.Series(col.Close)
		se := models.SeriesEstimate{
			Name:   col.Name,
			Rows:   len(o),
			Sigmas: make(map[string]models.JSONFloat, len(ests)),
		}
		for _, e := range ests {
			sigma, _ := vol.Compute(e, o, h, l, c)
			se.Sigmas[string(e)] = models.JSONFloat(sigma)
		}
		out = append(out, se)
	}
	return out, nil
}

func barsToSeries(bars []models.Bar) (o, h, l, c series.Series) {
	o = make(series.Series, len(bars))
	h = make(series.Series, len(bars))
	l = make(series.Series, len(bars))
	c = make(series.Series, len(bars))
	for i, b := range bars {
		o[i], h[i], l[i], c[i] = b.Open, b.High, b.Low, b.Close
	}
	return
}

func cacheKey(symbol string, tf domrepo.Timeframe, n int, ests []vol.Estimator) string {
	names := make([]string, len(ests))
	for i, e := range ests {
		names[i] = string(e)
	}
	return fmt.Sprintf("vol:%s:%s:%d:%s", symbol, tf, n, strings.Join(names, ","))
}
