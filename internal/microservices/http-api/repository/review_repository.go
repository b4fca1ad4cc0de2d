package repository

import (
	"context"
	"fmt"

	"cineverse/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListByMovie(ctx context.Context, tmdbID int64, limit int) ([]models.Review, error)
	FindByID(ctx context.Context, id int64) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create stores a review and reloads it with its author.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	db := r.db.WithContext(ctx)
	if err := db.Omit("User").Create(review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	var stored models.Review
	if err := db.Preload("User").First(&stored, review.ID).Error; err != nil {
		return nil, fmt.Errorf("reload review: %w", err)
	}
	return &stored, nil
}

func (r *reviewRepository) ListByMovie(ctx context.Context, tmdbID int64, limit int) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.WithContext(ctx).
		Where("tmdb_id = ?", tmdbID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
