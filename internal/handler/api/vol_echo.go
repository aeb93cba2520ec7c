package api

import (
	"time"

	models "HistVol/internal/domain/models"
	domrepo "HistVol/internal/domain/repository"
	"HistVol/internal/service/metrics"
	"HistVol/internal/service/ratelimit"
	"HistVol/internal/usecase"
	xhttp "HistVol/pkg/http"
	xlogger "HistVol/pkg/logger"
	"HistVol/pkg/queue"
	"HistVol/pkg/util"

	"github.com/labstack/echo/v4"
)

// VolEchoHandler exposes the volatility API over Echo.
type VolEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.VolAggregator
	bars   *usecase.BarsUseCase
	sweeps queue.QueueService
	rl     *ratelimit.Limiter
}

func NewVolEchoHandler(logger *xlogger.Logger, agg *usecase.VolAggregator, bars *usecase.BarsUseCase, sweeps queue.QueueService) *VolEchoHandler {
	metrics.Register()
	return &VolEchoHandler{logger: logger, agg: agg, bars: bars, sweeps: sweeps, rl: ratelimit.New()}
}

func (h *VolEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/vol", h.Vol)
	g.POST("/vol/series", h.VolSeries)
	g.GET("/bars", h.Bars)
	g.POST("/vol/sweep", h.Sweep)
}

func (h *VolEchoHandler) Vol(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("vol").Observe(time.Since(start).Seconds()) }()

	req := &models.VolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":vol", 10, 5) {
		return echo.NewHTTPError(429, "rate limited")
	}
	tf := domrepo.NormalizeTimeframe(req.TF)

	res, err := h.agg.Estimate(c.Request().Context(), req.Symbol, req.N, tf, req.Estimators)
	if err != nil {
		metrics.APIErrors.WithLabelValues("vol").Inc()
		h.logger.Error("vol usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

func (h *VolEchoHandler) VolSeries(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("vol_series").Observe(time.Since(start).Seconds()) }()

	req := &models.VolSeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.agg.EstimateSeries(req.Series, req.Estimators)
	if err != nil {
		metrics.APIErrors.WithLabelValues("vol_series").Inc()
		h.logger.Error("vol series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *VolEchoHandler) Bars(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("bars").Observe(time.Since(start).Seconds()) }()

	req := &models.BarsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tf := domrepo.NormalizeTimeframe(req.TF)
	now := time.Now().UTC()
	from := xhttp.ParseTimeDefault(req.From, now.AddDate(0, 0, -30))
	to := xhttp.ParseTimeDefault(req.To, now)
	from, to = util.AlignFromTo(from, to, string(tf))

	res, err := h.bars.GetBars(c.Request().Context(), usecase.GetBarsParams{
		Symbol:    req.Symbol,
		From:      from,
		To:        to,
		Timeframe: tf,
		Limit:     req.Limit,
	})
	if err != nil {
		metrics.APIErrors.WithLabelValues("bars").Inc()
		h.logger.Error("bars usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Sweep enqueues a background recomputation over a batch of symbols.
func (h *VolEchoHandler) Sweep(c echo.Context) error {
	req := &models.SweepRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.sweeps == nil {
		return echo.NewHTTPError(503, "sweep queue unavailable")
	}
	if err := h.sweeps.PublishMessage(c.Request().Context(), usecase.SweepJobType, req); err != nil {
		metrics.APIErrors.WithLabelValues("sweep").Inc()
		h.logger.Error("sweep enqueue error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"enqueued": len(req.Symbols),
	})
}

