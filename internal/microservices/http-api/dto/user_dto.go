package dto

// UpdateProfileRequest: payload for PUT /api/user/profile
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddToWatchlistRequest: payload for POST /api/user/watchlist
type AddToWatchlistRequest struct {
	TMDBID MovieID `json:"tmdbId"`
	Title  string  `json:"title"`
	Poster string  `json:"poster"`
}
