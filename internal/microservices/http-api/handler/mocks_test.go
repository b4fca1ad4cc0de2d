package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cineverse/internal/microservices/http-api/dto"
	"cineverse/internal/microservices/http-api/middleware"
	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) TokenTTL() time.Duration {
	return 24 * time.Hour
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error) {
	args := m.Called(ctx, userID, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetWatchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchlistEntry), args.Error(1)
}

func (m *MockUserService) AddToWatchlist(ctx context.Context, userID string, input service.WatchlistInput) (*models.WatchlistEntry, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchlistEntry), args.Error(1)
}

func (m *MockUserService) RemoveFromWatchlist(ctx context.Context, userID string, entryID int64) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

// MockCollectionService mocks the CollectionService interface
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) Create(ctx context.Context, userID string, input service.CollectionInput) (*models.Collection, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockCollectionService) ListMine(ctx context.Context, userID string) ([]dto.CollectionSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CollectionSummary), args.Error(1)
}

func (m *MockCollectionService) Get(ctx context.Context, requesterID string, id int64) (*models.Collection, error) {
	args := m.Called(ctx, requesterID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockCollectionService) Update(ctx context.Context, requesterID string, id int64, patch service.CollectionPatch) (*models.Collection, error) {
	args := m.Called(ctx, requesterID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockCollectionService) Delete(ctx context.Context, requesterID string, id int64) error {
	args := m.Called(ctx, requesterID, id)
	return args.Error(0)
}

func (m *MockCollectionService) AddItem(ctx context.Context, requesterID string, collectionID int64, input service.CollectionItemInput) (*models.CollectionItem, error) {
	args := m.Called(ctx, requesterID, collectionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollectionItem), args.Error(1)
}

func (m *MockCollectionService) RemoveItem(ctx context.Context, requesterID string, collectionID, tmdbID int64) error {
	args := m.Called(ctx, requesterID, collectionID, tmdbID)
	return args.Error(0)
}

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Add(ctx context.Context, userID string, input service.ReviewInput) (*models.Review, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) ListForMovie(ctx context.Context, tmdbID int64) ([]models.Review, error) {
	args := m.Called(ctx, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, requesterID string, reviewID int64) error {
	args := m.Called(ctx, requesterID, reviewID)
	return args.Error(0)
}

// MockMovieService mocks the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) body(args mock.Arguments) ([]byte, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMovieService) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockMovieService) Trending(ctx context.Context) ([]byte, error) {
	return m.body(m.Called(ctx))
}

func (m *MockMovieService) Latest(ctx context.Context, region string, page int) ([]byte, error) {
	return m.body(m.Called(ctx, region, page))
}

func (m *MockMovieService) ByGenre(ctx context.Context, name string, page int) ([]byte, error) {
	return m.body(m.Called(ctx, name, page))
}

func (m *MockMovieService) Search(ctx context.Context, query string, page int) ([]byte, error) {
	return m.body(m.Called(ctx, query, page))
}

func (m *MockMovieService) Details(ctx context.Context, id int64) ([]byte, error) {
	return m.body(m.Called(ctx, id))
}

func (m *MockMovieService) Reviews(ctx context.Context, id int64, page int) ([]byte, error) {
	return m.body(m.Called(ctx, id, page))
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser stands in for AuthMiddleware in handler tests.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextKeyUserID, userID)
		}
		c.Next()
	}
}

func doJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	switch p := payload.(type) {
	case nil:
		body = &bytes.Buffer{}
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, _ := json.Marshal(p)
		body = bytes.NewBuffer(raw)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// idsOf extracts the "id" field of a JSON array as a JSON array of numbers.
func idsOf(t *testing.T, raw []byte) string {
	t.Helper()
	var items []map[string]any
	require.NoError(t, json.Unmarshal(raw, &items))
	ids := make([]any, 0, len(items))
	for _, item := range items {
		ids = append(ids, item["id"])
	}
	out, err := json.Marshal(ids)
	require.NoError(t, err)
	return string(out)
}
