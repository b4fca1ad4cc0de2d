package client

import "time"

// Auth
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type SignupResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
	User      User   `json:"user"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
	User  *struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
		Name   string `json:"name"`
	} `json:"user,omitempty"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Watchlist
type AddToWatchlistRequest struct {
	TMDBID int64  `json:"tmdbId"`
	Title  string `json:"title,omitempty"`
	Poster string `json:"poster,omitempty"`
}

type WatchlistEntry struct {
	ID      int64     `json:"id"`
	TMDBID  int64     `json:"tmdbId"`
	Title   string    `json:"title"`
	Poster  string    `json:"poster"`
	AddedAt time.Time `json:"addedAt"`
}

// Collections
type CreateCollectionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

type AddCollectionItemRequest struct {
	TMDBID      int64  `json:"tmdbId"`
	Title       string `json:"title,omitempty"`
	PosterPath  string `json:"posterPath,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

type CollectionItem struct {
	ID          int64     `json:"id"`
	TMDBID      int64     `json:"tmdbId"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"posterPath"`
	ReleaseDate string    `json:"releaseDate"`
	AddedAt     time.Time `json:"addedAt"`
}

type Collection struct {
	ID             int64            `json:"id"`
	UserID         string           `json:"userId"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	IsPublic       bool             `json:"isPublic"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	Items          []CollectionItem `json:"items,omitempty"`
	PreviewPosters []string         `json:"previewPosters,omitempty"`
	ItemCount      int64            `json:"itemCount"`
}

// Reviews written on CineVerse
type CreateReviewRequest struct {
	TMDBID  int64    `json:"tmdbId"`
	Content string   `json:"content"`
	Rating  *float64 `json:"rating,omitempty"`
}

type Review struct {
	ID        int64     `json:"id"`
	TMDBID    int64     `json:"tmdbId"`
	Content   string    `json:"content"`
	Rating    *float64  `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

// Upstream movie payloads, relayed as TMDb sends them
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
}

type MoviePage struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []MovieSummary `json:"results"`
}

type MovieDetails struct {
	MovieSummary
	Tagline  string `json:"tagline"`
	Overview string `json:"overview"`
	Runtime  int    `json:"runtime"`
	Genres   []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

type ExternalReview struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type ExternalReviewPage struct {
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Results    []ExternalReview `json:"results"`
}
