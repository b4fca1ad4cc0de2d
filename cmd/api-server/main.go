package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cineverse/database"
	"cineverse/internal/cache"
	"cineverse/internal/config"
	"cineverse/internal/microservices/http-api/repository"
	"cineverse/internal/microservices/http-api/router"
	"cineverse/internal/microservices/http-api/service"
	"cineverse/internal/tmdb"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Setup structured logging
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	responseCache, err := cache.New(cfg, logger)
	if err != nil {
		logger.Error("cache_init_failed", "error", err)
		os.Exit(1)
	}
	defer closeCache(responseCache, logger)

	tmdbClient := tmdb.NewClient(tmdb.Config{
		BaseURL:   cfg.TMDBBaseURL,
		APIKey:    cfg.TMDBAPIKey,
		RateLimit: cfg.TMDBRateLimit,
		RateBurst: cfg.TMDBRateBurst,
		Timeout:   cfg.TMDBTimeout,
	}, logger)
	if !tmdbClient.HasAPIKey() {
		logger.Warn("TMDB_API_KEY not set, movie routes will answer 500")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	engine := router.New(router.Dependencies{
		Config:            cfg,
		Logger:            logger,
		AuthService:       service.NewAuthService(userRepo, cfg),
		UserService:       service.NewUserService(userRepo, watchlistRepo),
		CollectionService: service.NewCollectionService(collectionRepo),
		ReviewService:     service.NewReviewService(reviewRepo),
		MovieService:      service.NewMovieService(tmdbClient, responseCache),
		HealthCheck: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	if err := run(cfg, engine, logger); err != nil {
		logger.Error("server_error", "error", err)
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM, then drains in-flight requests.
func run(cfg *config.Config, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("received_shutdown_signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server_stopped_gracefully")
	return nil
}

// closeCache releases the backend connection when the cache holds one.
func closeCache(c cache.ResponseCache, logger *slog.Logger) {
	closer, ok := c.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn("cache_close_failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
