package service

import (
	"context"
	"fmt"
	"strings"

	"cineverse/internal/cache"
	"cineverse/internal/metrics"
	"cineverse/internal/tmdb"
)

// MovieCatalog is the upstream metadata provider. *tmdb.Client implements it.
type MovieCatalog interface {
	HasAPIKey() bool
	Trending(ctx context.Context) ([]byte, error)
	LatestReleases(ctx context.Context, region string, page int) ([]byte, error)
	DiscoverByGenre(ctx context.Context, genreIDs string, page int) ([]byte, error)
	SearchMovies(ctx context.Context, query string, page int) ([]byte, error)
	MovieDetails(ctx context.Context, id int64) ([]byte, error)
	MovieReviews(ctx context.Context, id int64, page int) ([]byte, error)
}

// MovieService proxies catalog reads. Every method returns the upstream JSON
// body unchanged, tmdb.ErrNotConfigured without an API key, or the
// *tmdb.UpstreamError for a non-2xx answer.
type MovieService interface {
	Configured() bool
	Trending(ctx context.Context) ([]byte, error)
	Latest(ctx context.Context, region string, page int) ([]byte, error)
	ByGenre(ctx context.Context, name string, page int) ([]byte, error)
	Search(ctx context.Context, query string, page int) ([]byte, error)
	Details(ctx context.Context, id int64) ([]byte, error)
	Reviews(ctx context.Context, id int64, page int) ([]byte, error)
}

type movieService struct {
	catalog MovieCatalog
	cache   cache.ResponseCache
}

func NewMovieService(catalog MovieCatalog, responseCache cache.ResponseCache) MovieService {
	return &movieService{
		catalog: catalog,
		cache:   responseCache,
	}
}

// ReviewsCacheKey identifies one page of upstream reviews for a movie.
func ReviewsCacheKey(movieID int64, page int) string {
	return fmt.Sprintf("tmdb:reviews:%d:p%d", movieID, page)
}

func (s *movieService) Configured() bool {
	return s.catalog.HasAPIKey()
}

func (s *movieService) Trending(ctx context.Context) ([]byte, error) {
	if !s.Configured() {
		return nil, tmdb.ErrNotConfigured
	}
	return s.catalog.Trending(ctx)
}

func (s *movieService) Latest(ctx context.Context, region string, page int) ([]byte, error) {
	if !s.Configured() {
		return nil, tmdb.ErrNotConfigured
	}
	return s.catalog.LatestReleases(ctx, strings.TrimSpace(region), normalizePage(page))
}

func (s *movieService) ByGenre(ctx context.Context, name string, page int) ([]byte, error) {
	if !s.Configured() {
		return nil, tmdb.ErrNotConfigured
	}
	ids, ok := tmdb.LookupGenre(name)
	if !ok {
		return nil, errUnknownGenre(strings.ToLower(name), tmdb.SupportedGenres())
	}
	return s.catalog.DiscoverByGenre(ctx, ids, normalizePage(page))
}

func (s *movieService) Search(ctx context.Context, query string, page int) ([]byte, error) {
	if !s.Configured() {
		return nil, tmdb.ErrNotConfigured
	}
	return s.catalog.SearchMovies(ctx, query, normalizePage(page))
}

func (s *movieService) Details(ctx context.Context, id int64) ([]byte, error) {
	if !s.Configured() {
		return nil, tmdb.ErrNotConfigured
	}
	if id <= 0 {
		return nil, ErrInvalidMovieID
	}
	return s.catalog.MovieDetails(ctx, id)
}

// Reviews is the only cached upstream call. Failures are never cached.
func (s *movieService) Reviews(ctx context.Context, id int64, page int) ([]byte, error) {
	if !s.Configured() {
		return nil, tmdb.ErrNotConfigured
	}
	if id <= 0 {
		return nil, ErrInvalidMovieID
	}
	page = normalizePage(page)

	key := ReviewsCacheKey(id, page)
	if body, ok := s.cache.Get(ctx, key); ok {
		metrics.RecordCacheLookup(true)
		return body, nil
	}
	metrics.RecordCacheLookup(false)

	body, err := s.catalog.MovieReviews(ctx, id, page)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, body)
	return body, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
