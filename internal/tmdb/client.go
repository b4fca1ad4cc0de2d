package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cineverse/internal/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// Retry configuration
	defaultMaxRetries = 2
	initialDelay      = 250 * time.Millisecond
	maxDelay          = 2 * time.Second

	breakerName = "tmdb-api"
)

type Config struct {
	BaseURL    string
	APIKey     string
	RateLimit  float64 // requests per second
	RateBurst  int
	Timeout    time.Duration
	MaxRetries int
}

// Client talks to TMDb v3 with rate limiting, retries and a circuit breaker.
// Response bodies are returned untouched so handlers can relay them.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	rateLimiter  *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[[]byte]
	logger       *slog.Logger
	maxRetries   int
	initialDelay time.Duration
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 40
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 20
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	} else if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return !countsAsFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(metrics.BreakerStateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		breaker:     breaker,
		logger:      logger,
		maxRetries:  cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		initialDelay: initialDelay,
	}
}

func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// Trending fetches this week's trending movies.
func (c *Client) Trending(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "trending", "/trending/movie/week", url.Values{})
}

// LatestReleases lists movies by release date, newest first.
func (c *Client) LatestReleases(ctx context.Context, region string, page int) ([]byte, error) {
	return c.get(ctx, "latest", "/discover/movie", BuildLatestParams(region, page))
}

// DiscoverByGenre lists popular movies for a comma separated set of genre ids.
func (c *Client) DiscoverByGenre(ctx context.Context, genreIDs string, page int) ([]byte, error) {
	return c.get(ctx, "genre", "/discover/movie", BuildGenreParams(genreIDs, page))
}

func (c *Client) SearchMovies(ctx context.Context, query string, page int) ([]byte, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	return c.get(ctx, "search", "/search/movie", params)
}

// MovieDetails fetches one movie with videos, credits and similar titles.
func (c *Client) MovieDetails(ctx context.Context, id int64) ([]byte, error) {
	params := url.Values{}
	params.Set("append_to_response", "videos,credits,similar")
	return c.get(ctx, "details", fmt.Sprintf("/movie/%d", id), params)
}

func (c *Client) MovieReviews(ctx context.Context, id int64, page int) ([]byte, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("page", strconv.Itoa(page))
	return c.get(ctx, "reviews", fmt.Sprintf("/movie/%d/reviews", id), params)
}

// BuildLatestParams creates the discover query for newest releases.
// An empty region is left out.
func BuildLatestParams(region string, page int) url.Values {
	params := url.Values{}
	params.Set("sort_by", "release_date.desc")
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(page))
	if region != "" {
		params.Set("region", region)
	}
	return params
}

func BuildGenreParams(genreIDs string, page int) url.Values {
	params := url.Values{}
	params.Set("with_genres", genreIDs)
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(page))
	return params
}

// get runs one logical request through the breaker.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	if !c.HasAPIKey() {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		body, err := c.doRequest(ctx, endpoint, path, params)
		if err != nil && ctx.Err() != nil {
			return nil, &callerGoneError{err: err}
		}
		return body, err
	})
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		var (
			upstream *UpstreamError
			gone     *callerGoneError
		)
		switch {
		case errors.As(err, &gone):
			metrics.UpstreamRequests.WithLabelValues(endpoint, "canceled").Inc()
			return nil, gone.err
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.UpstreamRequests.WithLabelValues(endpoint, "rejected").Inc()
		case errors.As(err, &upstream):
			metrics.UpstreamRequests.WithLabelValues(endpoint, "http_error").Inc()
		default:
			metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		}
		return nil, err
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "success").Inc()
	return body, nil
}

// doRequest performs the HTTP call with rate limiting and retry logic
func (c *Client) doRequest(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + query.Encode()

	var lastErr error
	delay := c.initialDelay

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying TMDb request", "endpoint", endpoint, "attempt", attempt+1, "delay", delay, "error", lastErr)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay = min(delay*2, maxDelay)
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		body, err := c.fetch(ctx, fullURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var upstream *UpstreamError
		if errors.As(err, &upstream) && !shouldRetry(upstream.StatusCode) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CineVerse/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tmdb response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}
	return body, nil
}

// shouldRetry determines if an HTTP status code warrants a retry
func shouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
