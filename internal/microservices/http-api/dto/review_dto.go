package dto

import (
	"time"

	"cineverse/internal/microservices/http-api/models"
)

// CreateReviewRequest for posting a review
type CreateReviewRequest struct {
	TMDBID  MovieID `json:"tmdbId"`
	Content string  `json:"content"`
	Rating  Rating  `json:"rating"`
}

// ReviewAuthor is the public projection of the review's author
type ReviewAuthor struct {
	Name string `json:"name"`
}

// ReviewResponse for returning a review joined with its author
type ReviewResponse struct {
	ID        int64        `json:"id"`
	UserID    string       `json:"userId"`
	TMDBID    int64        `json:"tmdbId"`
	Content   string       `json:"content"`
	Rating    *float64     `json:"rating"`
	CreatedAt time.Time    `json:"createdAt"`
	User      ReviewAuthor `json:"user"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		TMDBID:    review.TMDBID,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		User:      ReviewAuthor{Name: review.User.Name},
	}
}

// FromModelsToReviewResponses converts a list, never returning nil
func FromModelsToReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, FromModelToReviewResponse(&reviews[i]))
	}
	return out
}
