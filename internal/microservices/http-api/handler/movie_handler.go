package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cineverse/internal/microservices/http-api/service"
	"cineverse/internal/tmdb"

	"github.com/gin-gonic/gin"
)

// upstreamBudget covers one proxied call including retries.
const upstreamBudget = 30 * time.Second

type MovieHandler struct {
	svc    service.MovieService
	logger *slog.Logger
}

func NewMovieHandler(svc service.MovieService, logger *slog.Logger) *MovieHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieHandler{svc: svc, logger: logger}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/trending", h.Trending)
	rg.GET("/latest", h.Latest)
	rg.GET("/genre/:name", h.ByGenre)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Details)
	rg.GET("/:id/reviews", h.Reviews)
}

func (h *MovieHandler) Trending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamBudget)
	defer cancel()

	body, err := h.svc.Trending(ctx)
	h.relay(c, "Failed to fetch trending", body, err)
}

func (h *MovieHandler) Latest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamBudget)
	defer cancel()

	body, err := h.svc.Latest(ctx, c.Query("region"), parsePage(c))
	h.relay(c, "Failed to fetch latest releases", body, err)
}

func (h *MovieHandler) ByGenre(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamBudget)
	defer cancel()

	body, err := h.svc.ByGenre(ctx, c.Param("name"), parsePage(c))
	h.relay(c, "Failed to fetch genre list", body, err)
}

func (h *MovieHandler) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamBudget)
	defer cancel()

	body, err := h.svc.Search(ctx, c.Query("query"), parsePage(c))
	h.relay(c, "Search failed", body, err)
}

func (h *MovieHandler) Details(c *gin.Context) {
	if !h.svc.Configured() {
		h.relay(c, "", nil, tmdb.ErrNotConfigured)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrInvalidMovieID)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamBudget)
	defer cancel()

	body, err := h.svc.Details(ctx, id)
	h.relay(c, "Movie details failed", body, err)
}

func (h *MovieHandler) Reviews(c *gin.Context) {
	if !h.svc.Configured() {
		h.relay(c, "", nil, tmdb.ErrNotConfigured)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrInvalidMovieID)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamBudget)
	defer cancel()

	body, err := h.svc.Reviews(ctx, id, parsePage(c))
	h.relay(c, "Failed to fetch reviews", body, err)
}

// relay writes the upstream body as-is, or maps the failure. tag is the
// route-specific error label.
func (h *MovieHandler) relay(c *gin.Context, tag string, body []byte, err error) {
	if err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	var (
		svcErr   *service.Error
		upstream *tmdb.UpstreamError
	)
	switch {
	case errors.Is(err, tmdb.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": tmdb.ErrNotConfigured.Error()})
	case errors.As(err, &svcErr):
		respondError(c, err)
	case errors.As(err, &upstream):
		h.logger.WarnContext(c.Request.Context(), "tmdb returned an error",
			"route", c.FullPath(), "status", upstream.StatusCode, "body", string(upstream.Body))
		c.JSON(upstreamStatus(upstream.StatusCode), gin.H{
			"error":  tag,
			"code":   service.KindUpstream,
			"detail": upstream.Error(),
		})
	default:
		h.logger.ErrorContext(c.Request.Context(), "tmdb request failed", "route", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  tag,
			"code":   service.KindUpstream,
			"detail": "Upstream TMDb request failed",
		})
	}
}

// upstreamStatus passes client and server errors through and turns
// anything else (3xx, 1xx) into 500.
func upstreamStatus(status int) int {
	if status >= 400 && status <= 599 {
		return status
	}
	return http.StatusInternalServerError
}

// parsePage reads ?page=, treating missing, non-numeric and < 1 as 1.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
