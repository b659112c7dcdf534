package api

import (
	"net/http"
	"time"

	models "NewsRank/internal/domain/models"
	drepo "NewsRank/internal/domain/repository"
	smetrics "NewsRank/internal/service/metrics"
	"NewsRank/internal/service/ratelimit"
	"NewsRank/internal/usecase"
	xhttp "NewsRank/pkg/http"
	xlogger "NewsRank/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FeedEchoHandler serves the personalized feed endpoints.
type FeedEchoHandler struct {
	logger   *xlogger.Logger
	feed     *usecase.FeedUseCase
	trending drepo.TrendingSource
	rl       *ratelimit.Limiter

	rlCapacity float64
	rlRefill   float64
}

func NewFeedEchoHandler(logger *xlogger.Logger, feed *usecase.FeedUseCase, trending drepo.TrendingSource, rlCapacity, rlRefill float64) *FeedEchoHandler {
	smetrics.Register()
	if rlCapacity <= 0 {
		rlCapacity = 10
	}
	if rlRefill <= 0 {
		rlRefill = 5
	}
	return &FeedEchoHandler{
		logger:     logger,
		feed:       feed,
		trending:   trending,
		rl:         ratelimit.New(),
		rlCapacity: rlCapacity,
		rlRefill:   rlRefill,
	}
}

func (h *FeedEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/feed", h.Feed)
	g.POST("/score", h.Score)
	g.GET("/trending", h.Trending)
	g.GET("/health", h.Health)
}

func (h *FeedEchoHandler) Feed(c echo.Context) error {
	req := &models.FeedRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":feed", h.rlCapacity, h.rlRefill) {
		h.logger.Warn("feed rate_limited", xlogger.String("remote", c.RealIP()))
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
	}

	res, err := h.feed.GetFeed(c.Request().Context(), usecase.FeedParams{
		UserID:   req.UserID,
		Limit:    req.Limit,
		MinScore: req.MinScore,
	})
	if err != nil {
		h.logger.Error("feed usecase error", xlogger.Error(err), xlogger.String("user", req.UserID))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to build feed").WithError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=30")
	return xhttp.SuccessResponse(c, res)
}

func (h *FeedEchoHandler) Score(c echo.Context) error {
	req := &models.ScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if req.Article.ID == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("article.id is required"))
	}

	res, err := h.feed.ScoreArticle(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("score usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to score article").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FeedEchoHandler) Trending(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"tickers":   h.trending.Tickers(),
		"updatedAt": h.trending.UpdatedAt(),
	})
}

func (h *FeedEchoHandler) Health(c echo.Context) error {
	status := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	}
	if err := h.feed.Health(c.Request().Context()); err != nil {
		status["status"] = "degraded"
		status["storage"] = err.Error()
		return xhttp.DataResponse(c, http.StatusServiceUnavailable, status)
	}
	return xhttp.SuccessResponse(c, status)
}
