package usecase

import (
	"context"
	"fmt"

	"HistVol/internal/domain/models"
	domrepo "HistVol/internal/domain/repository"
	"HistVol/internal/services/notify"
	"HistVol/pkg/logger"
	"HistVol/pkg/queue"
)

const SweepJobType = "vol_sweep"

// SweepJob recomputes volatility estimates for a batch of symbols off the
// request path. Payloads arrive via the Redis queue.
type SweepJob struct {
	agg      *VolAggregator
	notifier *notify.WebhookNotifier
	logger   *logger.Logger
}

func NewSweepJob(agg *VolAggregator, notifier *notify.WebhookNotifier, lgr *logger.Logger) *SweepJob {
	return &SweepJob{agg: agg, notifier: notifier, logger: lgr}
}

func (j *SweepJob) Name() string { return "vol-sweep" }
func (j *SweepJob) Type() string { return SweepJobType }

func (j *SweepJob) Handle(ctx context.Context, payload interface{}) error {
	req, err := queue.ParsePayload[models.SweepRequest](payload)
	if err != nil {
		return fmt.Errorf("sweep payload: %w", err)
	}
	if req.N < 2 {
		req.N = 30
	}
	tf := domrepo.NormalizeTimeframe(req.TF)

	var failed int
	for _, sym := range req.Symbols {
		est, err := j.agg.Estimate(ctx, sym, req.N, tf, nil)
		if err != nil {
			failed++
			j.logger.Warn("sweep estimate failed",
				logger.String("symbol", sym),
				logger.Error(err))
			continue
		}
		j.logger.Info("sweep estimate",
			logger.String("symbol", sym),
			logger.String("tf", string(tf)),
			logger.Int("n", est.Window))
		_ = j.notifier.NotifyEstimate(ctx, est)
	}
	if failed == len(req.Symbols) {
		return fmt.Errorf("sweep: all %d symbols failed", failed)
	}
	return nil
}

var _ queue.Job = (*SweepJob)(nil)
