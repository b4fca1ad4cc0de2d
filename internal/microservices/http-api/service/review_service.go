package service

import (
	"context"
	"fmt"
	"strings"

	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/repository"
)

// ReviewListLimit caps how many reviews a movie page shows.
const ReviewListLimit = 20

type ReviewInput struct {
	TMDBID  int64
	Content string
	Rating  *float64
}

type ReviewService interface {
	Add(ctx context.Context, userID string, input ReviewInput) (*models.Review, error)
	ListForMovie(ctx context.Context, tmdbID int64) ([]models.Review, error)
	Delete(ctx context.Context, requesterID string, reviewID int64) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

// Add stores a review. A user may review the same movie more than once.
func (s *reviewService) Add(ctx context.Context, userID string, input ReviewInput) (*models.Review, error) {
	content := strings.TrimSpace(input.Content)
	if input.TMDBID <= 0 || content == "" {
		return nil, ErrReviewFieldsRequired
	}

	return s.repo.Create(ctx, &models.Review{
		UserID:  userID,
		TMDBID:  input.TMDBID,
		Content: content,
		Rating:  input.Rating,
	})
}

func (s *reviewService) ListForMovie(ctx context.Context, tmdbID int64) ([]models.Review, error) {
	if tmdbID <= 0 {
		return nil, ErrInvalidMovieID
	}
	return s.repo.ListByMovie(ctx, tmdbID, ReviewListLimit)
}

func (s *reviewService) Delete(ctx context.Context, requesterID string, reviewID int64) error {
	review, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("find review: %w", err)
	}

	if err := authorizeOwner(review.UserID, requesterID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		if repository.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
