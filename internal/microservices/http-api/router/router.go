package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cineverse/internal/config"
	"cineverse/internal/microservices/http-api/handler"
	"cineverse/internal/microservices/http-api/middleware"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the HTTP front door is built from.
type Dependencies struct {
	Config            *config.Config
	Logger            *slog.Logger
	AuthService       service.AuthService
	UserService       service.UserService
	CollectionService service.CollectionService
	ReviewService     service.ReviewService
	MovieService      service.MovieService

	// HealthCheck reports whether the database is reachable.
	HealthCheck func(ctx context.Context) error
}

// New wires middleware and every route onto a fresh gin engine.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	if cfg.PrometheusEnabled {
		r.Use(middleware.Metrics())
	}
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "CineVerse API is running...")
	})
	r.GET("/healthz", healthz(deps.HealthCheck))
	if cfg.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	requireAuth := middleware.AuthMiddleware(deps.AuthService)
	optionalAuth := middleware.OptionalAuth(deps.AuthService)

	api := r.Group("/api")

	authLimiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	handler.NewAuthHandler(deps.AuthService, cfg.IsProduction()).
		RegisterRoutes(api.Group("/auth"), middleware.RateLimit(authLimiter))

	handler.NewUserHandler(deps.UserService).
		RegisterRoutes(api.Group("/user", requireAuth))

	handler.NewCollectionHandler(deps.CollectionService).
		RegisterRoutes(api.Group("/collections"), requireAuth, optionalAuth)

	handler.NewReviewHandler(deps.ReviewService).
		RegisterRoutes(api.Group("/reviews"), requireAuth)

	handler.NewMovieHandler(deps.MovieService, logger).
		RegisterRoutes(api.Group("/movies"))

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.AllowsAllOrigins() {
		// echo the caller's origin so credentialed requests still work
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Content-Length",
		"Accept",
		"Authorization",
		middleware.RequestIDHeader,
	}
	corsCfg.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

func healthz(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				slog.ErrorContext(c.Request.Context(), "health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
