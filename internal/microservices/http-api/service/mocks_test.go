package service

import (
	"context"

	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailTakenByOther(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	args := m.Called(ctx, id, name, email)
	return args.Error(0)
}

// MockWatchlistRepository mocks the WatchlistRepository interface
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) Upsert(ctx context.Context, entry *models.WatchlistEntry) (*models.WatchlistEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) FindByID(ctx context.Context, id int64) (*models.WatchlistEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCollectionRepository mocks the CollectionRepository interface
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) ListByUser(ctx context.Context, userID string) ([]models.Collection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Collection), args.Error(1)
}

func (m *MockCollectionRepository) Previews(ctx context.Context, collectionIDs []int64, perCollection int) (map[int64]repository.CollectionPreview, error) {
	args := m.Called(ctx, collectionIDs, perCollection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]repository.CollectionPreview), args.Error(1)
}

func (m *MockCollectionRepository) FindByID(ctx context.Context, id int64, withItems bool) (*models.Collection, error) {
	args := m.Called(ctx, id, withItems)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockCollectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionRepository) ItemExists(ctx context.Context, collectionID, tmdbID int64) (bool, error) {
	args := m.Called(ctx, collectionID, tmdbID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionRepository) AddItem(ctx context.Context, item *models.CollectionItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCollectionRepository) RemoveItem(ctx context.Context, collectionID, tmdbID int64) error {
	args := m.Called(ctx, collectionID, tmdbID)
	return args.Error(0)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByMovie(ctx context.Context, tmdbID int64, limit int) ([]models.Review, error) {
	args := m.Called(ctx, tmdbID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMovieCatalog mocks the upstream movie catalog
type MockMovieCatalog struct {
	mock.Mock
}

func (m *MockMovieCatalog) HasAPIKey() bool {
	return m.Called().Bool(0)
}

func (m *MockMovieCatalog) bytes(args mock.Arguments) ([]byte, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMovieCatalog) Trending(ctx context.Context) ([]byte, error) {
	return m.bytes(m.Called(ctx))
}

func (m *MockMovieCatalog) LatestReleases(ctx context.Context, region string, page int) ([]byte, error) {
	return m.bytes(m.Called(ctx, region, page))
}

func (m *MockMovieCatalog) DiscoverByGenre(ctx context.Context, genreIDs string, page int) ([]byte, error) {
	return m.bytes(m.Called(ctx, genreIDs, page))
}

func (m *MockMovieCatalog) SearchMovies(ctx context.Context, query string, page int) ([]byte, error) {
	return m.bytes(m.Called(ctx, query, page))
}

func (m *MockMovieCatalog) MovieDetails(ctx context.Context, id int64) ([]byte, error) {
	return m.bytes(m.Called(ctx, id))
}

func (m *MockMovieCatalog) MovieReviews(ctx context.Context, id int64, page int) ([]byte, error) {
	return m.bytes(m.Called(ctx, id, page))
}
