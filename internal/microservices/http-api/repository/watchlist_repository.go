package repository

import (
	"context"
	"fmt"

	"cineverse/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchlistRepository interface {
	List(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	Upsert(ctx context.Context, entry *models.WatchlistEntry) (*models.WatchlistEntry, error)
	FindByID(ctx context.Context, id int64) (*models.WatchlistEntry, error)
	Delete(ctx context.Context, id int64) error
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	entries := make([]models.WatchlistEntry, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return entries, nil
}

// Upsert inserts the entry unless (user_id, tmdb_id) already exists, then
// returns the stored row either way.
func (r *watchlistRepository) Upsert(ctx context.Context, entry *models.WatchlistEntry) (*models.WatchlistEntry, error) {
	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "tmdb_id"}},
		DoNothing: true,
	}).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("upsert watchlist: %w", err)
	}

	var stored models.WatchlistEntry
	if err := db.Where("user_id = ? AND tmdb_id = ?", entry.UserID, entry.TMDBID).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("reload watchlist entry: %w", err)
	}
	return &stored, nil
}

func (r *watchlistRepository) FindByID(ctx context.Context, id int64) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.WatchlistEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete watchlist entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
