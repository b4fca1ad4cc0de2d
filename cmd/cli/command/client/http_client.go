package client

// http_client.go talks to the CineVerse HTTP API on behalf of the cli commands.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// APIError is a non-2xx answer from the API, decoded from {"error","code"}.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends one request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var payload struct {
		Error  string `json:"error"`
		Code   string `json:"code"`
		Detail string `json:"detail"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Code = payload.Code
		if payload.Detail != "" {
			apiErr.Message += ": " + payload.Detail
		}
	}
	return apiErr
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// Auth
func (c *HTTPClient) Signup(ctx context.Context, request *SignupRequest) (*SignupResponse, error) {
	var result SignupResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	var result LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Verify(ctx context.Context) (*VerifyResponse, error) {
	var result VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile
func (c *HTTPClient) Profile(ctx context.Context) (*User, error) {
	var result User
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, request *UpdateProfileRequest) (*User, error) {
	var result User
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Watchlist
func (c *HTTPClient) Watchlist(ctx context.Context) ([]WatchlistEntry, error) {
	var result []WatchlistEntry
	if err := c.do(ctx, http.MethodGet, "/api/user/watchlist", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) AddToWatchlist(ctx context.Context, request *AddToWatchlistRequest) (*WatchlistEntry, error) {
	var result WatchlistEntry
	if err := c.do(ctx, http.MethodPost, "/api/user/watchlist", nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RemoveFromWatchlist(ctx context.Context, entryID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/watchlist/%d", entryID), nil, nil, nil)
}

// Collections
func (c *HTTPClient) Collections(ctx context.Context) ([]Collection, error) {
	var result []Collection
	if err := c.do(ctx, http.MethodGet, "/api/collections", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) Collection(ctx context.Context, id int64) (*Collection, error) {
	var result Collection
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/collections/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateCollection(ctx context.Context, request *CreateCollectionRequest) (*Collection, error) {
	var result Collection
	if err := c.do(ctx, http.MethodPost, "/api/collections", nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteCollection(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/collections/%d", id), nil, nil, nil)
}

func (c *HTTPClient) AddCollectionItem(ctx context.Context, collectionID int64, request *AddCollectionItemRequest) (*CollectionItem, error) {
	var result CollectionItem
	path := fmt.Sprintf("/api/collections/%d/items", collectionID)
	if err := c.do(ctx, http.MethodPost, path, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RemoveCollectionItem(ctx context.Context, collectionID, tmdbID int64) error {
	path := fmt.Sprintf("/api/collections/%d/items/%d", collectionID, tmdbID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Reviews
func (c *HTTPClient) Reviews(ctx context.Context, tmdbID int64) ([]Review, error) {
	var result []Review
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/reviews/%d", tmdbID), nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) AddReview(ctx context.Context, request *CreateReviewRequest) (*Review, error) {
	var result Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews", nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", reviewID), nil, nil, nil)
}

// Movies
func (c *HTTPClient) Trending(ctx context.Context) (*MoviePage, error) {
	return c.moviePage(ctx, "/api/movies/trending", nil)
}

func (c *HTTPClient) Latest(ctx context.Context, page int) (*MoviePage, error) {
	return c.moviePage(ctx, "/api/movies/latest", pageQuery(page))
}

func (c *HTTPClient) ByGenre(ctx context.Context, genre string, page int) (*MoviePage, error) {
	return c.moviePage(ctx, "/api/movies/genre/"+url.PathEscape(genre), pageQuery(page))
}

func (c *HTTPClient) Search(ctx context.Context, query string, page int) (*MoviePage, error) {
	q := pageQuery(page)
	q.Set("query", query)
	return c.moviePage(ctx, "/api/movies/search", q)
}

func (c *HTTPClient) moviePage(ctx context.Context, path string, query url.Values) (*MoviePage, error) {
	var result MoviePage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	var result MovieDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/movies/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ExternalReviews(ctx context.Context, id int64, page int) (*ExternalReviewPage, error) {
	var result ExternalReviewPage
	path := fmt.Sprintf("/api/movies/%d/reviews", id)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(page), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
