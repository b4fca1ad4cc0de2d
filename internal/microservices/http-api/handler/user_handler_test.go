package handler

import (
	"net/http"
	"testing"
	"time"

	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(svc *MockUserService, userID string) *gin.Engine {
	router := setupRouter()
	NewUserHandler(svc).RegisterRoutes(router.Group("/api/user", asUser(userID)))
	return router
}

func TestGetProfile(t *testing.T) {
	svc := new(MockUserService)
	router := newUserRouter(svc, "u1")

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.On("GetProfile", mock.Anything, "u1").Return(&models.User{
		ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "hash", CreatedAt: created,
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/user/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body["createdAt"])
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	router := newUserRouter(new(MockUserService), "")

	w := doJSON(router, http.MethodGet, "/api/user/profile", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile_EmailInUse(t *testing.T) {
	svc := new(MockUserService)
	router := newUserRouter(svc, "u1")

	svc.On("UpdateProfile", mock.Anything, "u1", "B", "taken@x.com").Return(nil, service.ErrEmailInUse)

	w := doJSON(router, http.MethodPut, "/api/user/profile", map[string]string{"name": "B", "email": "taken@x.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Email already in use", body["error"])
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestAddToWatchlist_AcceptsStringID(t *testing.T) {
	svc := new(MockUserService)
	router := newUserRouter(svc, "u1")

	input := service.WatchlistInput{TMDBID: 550, Title: "Fight Club", Poster: "/p.jpg"}
	svc.On("AddToWatchlist", mock.Anything, "u1", input).Return(&models.WatchlistEntry{
		ID: 1, UserID: "u1", TMDBID: 550, Title: "Fight Club", Poster: "/p.jpg",
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/user/watchlist", `{"tmdbId":"550","title":"Fight Club","poster":"/p.jpg"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(550), body["tmdbId"])
	assert.Equal(t, "/p.jpg", body["poster"])
	svc.AssertExpectations(t)
}

func TestGetWatchlist(t *testing.T) {
	svc := new(MockUserService)
	router := newUserRouter(svc, "u1")

	svc.On("GetWatchlist", mock.Anything, "u1").Return([]models.WatchlistEntry{{ID: 2}, {ID: 1}}, nil)

	w := doJSON(router, http.MethodGet, "/api/user/watchlist", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[2,1]`, idsOf(t, w.Body.Bytes()))
}

func TestRemoveFromWatchlist(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{"deleted", "/api/user/watchlist/7", nil, http.StatusOK},
		{"missing", "/api/user/watchlist/8", service.ErrWatchlistEntryNotFound, http.StatusNotFound},
		{"not owner", "/api/user/watchlist/9", service.ErrForbidden, http.StatusForbidden},
	}

	svc := new(MockUserService)
	svc.On("RemoveFromWatchlist", mock.Anything, "u1", int64(7)).Return(nil)
	svc.On("RemoveFromWatchlist", mock.Anything, "u1", int64(8)).Return(service.ErrWatchlistEntryNotFound)
	svc.On("RemoveFromWatchlist", mock.Anything, "u1", int64(9)).Return(service.ErrForbidden)
	router := newUserRouter(svc, "u1")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodDelete, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err == nil {
				assert.Equal(t, true, decodeBody(t, w)["success"])
			}
		})
	}

	w := doJSON(router, http.MethodDelete, "/api/user/watchlist/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
