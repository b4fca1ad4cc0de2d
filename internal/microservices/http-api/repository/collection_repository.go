package repository

import (
	"context"
	"fmt"
	"time"

	"cineverse/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// CollectionPreview summarises the items of one collection for list views.
type CollectionPreview struct {
	Posters   []string
	ItemCount int64
}

type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	ListByUser(ctx context.Context, userID string) ([]models.Collection, error)
	Previews(ctx context.Context, collectionIDs []int64, perCollection int) (map[int64]CollectionPreview, error)
	FindByID(ctx context.Context, id int64, withItems bool) (*models.Collection, error)
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id int64) error

	ItemExists(ctx context.Context, collectionID, tmdbID int64) (bool, error)
	AddItem(ctx context.Context, item *models.CollectionItem) error
	RemoveItem(ctx context.Context, collectionID, tmdbID int64) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	if err := r.db.WithContext(ctx).Create(collection).Error; err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID string) ([]models.Collection, error) {
	collections := make([]models.Collection, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

// Previews returns up to perCollection poster paths (oldest items first) and
// the total item count for each of the given collections.
func (r *collectionRepository) Previews(ctx context.Context, collectionIDs []int64, perCollection int) (map[int64]CollectionPreview, error) {
	previews := make(map[int64]CollectionPreview, len(collectionIDs))
	if len(collectionIDs) == 0 {
		return previews, nil
	}

	var posters []struct {
		CollectionID int64
		PosterPath   string
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT collection_id, poster_path FROM (
			SELECT collection_id, poster_path,
			       ROW_NUMBER() OVER (PARTITION BY collection_id ORDER BY id) AS rn
			FROM collection_items
			WHERE collection_id IN ?
		) ranked
		WHERE rn <= ?
		ORDER BY collection_id, rn`, collectionIDs, perCollection).
		Scan(&posters).Error; err != nil {
		return nil, fmt.Errorf("collection previews: %w", err)
	}

	var counts []struct {
		CollectionID int64
		Total        int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.CollectionItem{}).
		Select("collection_id, COUNT(*) AS total").
		Where("collection_id IN ?", collectionIDs).
		Group("collection_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("collection item counts: %w", err)
	}

	for _, p := range posters {
		preview := previews[p.CollectionID]
		preview.Posters = append(preview.Posters, p.PosterPath)
		previews[p.CollectionID] = preview
	}
	for _, c := range counts {
		preview := previews[c.CollectionID]
		preview.ItemCount = c.Total
		previews[c.CollectionID] = preview
	}
	return previews, nil
}

func (r *collectionRepository) FindByID(ctx context.Context, id int64, withItems bool) (*models.Collection, error) {
	var collection models.Collection
	query := r.db.WithContext(ctx)
	if withItems {
		query = query.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("added_at DESC")
		})
	}
	if err := query.First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	if err := r.db.WithContext(ctx).
		Model(collection).
		Select("title", "description", "is_public", "updated_at").
		Updates(collection).Error; err != nil {
		return fmt.Errorf("update collection: %w", err)
	}
	return nil
}

// Delete removes the collection and its items in one transaction.
func (r *collectionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionItem{}).Error; err != nil {
			return fmt.Errorf("delete collection items: %w", err)
		}
		result := tx.Delete(&models.Collection{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete collection: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *collectionRepository) ItemExists(ctx context.Context, collectionID, tmdbID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CollectionItem{}).
		Where("collection_id = ? AND tmdb_id = ?", collectionID, tmdbID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check collection item: %w", err)
	}
	return count > 0, nil
}

// AddItem inserts the item and bumps the parent's updated_at. A concurrent
// duplicate insert surfaces as ErrDuplicate.
func (r *collectionRepository) AddItem(ctx context.Context, item *models.CollectionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("add collection item: %w", err)
		}
		return touchCollection(tx, item.CollectionID)
	})
}

func (r *collectionRepository) RemoveItem(ctx context.Context, collectionID, tmdbID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("collection_id = ? AND tmdb_id = ?", collectionID, tmdbID).
			Delete(&models.CollectionItem{})
		if result.Error != nil {
			return fmt.Errorf("remove collection item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return touchCollection(tx, collectionID)
	})
}

func touchCollection(tx *gorm.DB, id int64) error {
	if err := tx.Model(&models.Collection{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", time.Now()).Error; err != nil {
		return fmt.Errorf("touch collection: %w", err)
	}
	return nil
}
