package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cineverse/internal/microservices/http-api/dto"
	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/repository"
)

const previewPostersPerCollection = 4

type CollectionInput struct {
	Title       string
	Description string
	IsPublic    bool
}

// CollectionPatch holds optional changes; nil means keep the current value.
type CollectionPatch struct {
	Title       *string
	Description *string
	IsPublic    *bool
}

type CollectionItemInput struct {
	TMDBID      int64
	Title       string
	PosterPath  string
	ReleaseDate string
}

type CollectionService interface {
	Create(ctx context.Context, userID string, input CollectionInput) (*models.Collection, error)
	ListMine(ctx context.Context, userID string) ([]dto.CollectionSummary, error)
	Get(ctx context.Context, requesterID string, id int64) (*models.Collection, error)
	Update(ctx context.Context, requesterID string, id int64, patch CollectionPatch) (*models.Collection, error)
	Delete(ctx context.Context, requesterID string, id int64) error
	AddItem(ctx context.Context, requesterID string, collectionID int64, input CollectionItemInput) (*models.CollectionItem, error)
	RemoveItem(ctx context.Context, requesterID string, collectionID, tmdbID int64) error
}

type collectionService struct {
	repo repository.CollectionRepository
}

func NewCollectionService(repo repository.CollectionRepository) CollectionService {
	return &collectionService{repo: repo}
}

func (s *collectionService) Create(ctx context.Context, userID string, input CollectionInput) (*models.Collection, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	collection := &models.Collection{
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		IsPublic:    input.IsPublic,
	}
	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// ListMine returns the requester's collections, most recently updated first,
// each with up to four poster paths and the total item count.
func (s *collectionService) ListMine(ctx context.Context, userID string) ([]dto.CollectionSummary, error) {
	collections, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID)
	}
	previews, err := s.repo.Previews(ctx, ids, previewPostersPerCollection)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CollectionSummary, 0, len(collections))
	for _, c := range collections {
		preview := previews[c.ID]
		posters := preview.Posters
		if posters == nil {
			posters = []string{}
		}
		summaries = append(summaries, dto.CollectionSummary{
			Collection:     c,
			PreviewPosters: posters,
			ItemCount:      preview.ItemCount,
		})
	}
	return summaries, nil
}

// Get loads a collection with its items. An empty requesterID is an
// anonymous caller and only sees public collections.
func (s *collectionService) Get(ctx context.Context, requesterID string, id int64) (*models.Collection, error) {
	collection, err := s.find(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if !canViewCollection(collection, requesterID) {
		return nil, ErrForbidden
	}
	return collection, nil
}

func (s *collectionService) Update(ctx context.Context, requesterID string, id int64, patch CollectionPatch) (*models.Collection, error) {
	collection, err := s.findOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	// an empty title is ignored rather than rejected
	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			collection.Title = title
		}
	}
	if patch.Description != nil {
		collection.Description = *patch.Description
	}
	if patch.IsPublic != nil {
		collection.IsPublic = *patch.IsPublic
	}

	if err := s.repo.Update(ctx, collection); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return collection, nil
}

func (s *collectionService) Delete(ctx context.Context, requesterID string, id int64) error {
	if _, err := s.findOwned(ctx, requesterID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrCollectionNotFound
		}
		return err
	}
	return nil
}

func (s *collectionService) AddItem(ctx context.Context, requesterID string, collectionID int64, input CollectionItemInput) (*models.CollectionItem, error) {
	if input.TMDBID <= 0 {
		return nil, ErrMovieIDRequired
	}
	if _, err := s.findOwned(ctx, requesterID, collectionID); err != nil {
		return nil, err
	}

	exists, err := s.repo.ItemExists(ctx, collectionID, input.TMDBID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrItemAlreadyExists
	}

	item := &models.CollectionItem{
		CollectionID: collectionID,
		TMDBID:       input.TMDBID,
		Title:        strings.TrimSpace(input.Title),
		PosterPath:   input.PosterPath,
		ReleaseDate:  input.ReleaseDate,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		// the unique index caught a concurrent add of the same movie
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrItemAlreadyExists
		}
		return nil, err
	}
	return item, nil
}

func (s *collectionService) RemoveItem(ctx context.Context, requesterID string, collectionID, tmdbID int64) error {
	if _, err := s.findOwned(ctx, requesterID, collectionID); err != nil {
		return err
	}
	if err := s.repo.RemoveItem(ctx, collectionID, tmdbID); err != nil {
		if repository.IsNotFound(err) {
			return ErrItemNotInCollection
		}
		return err
	}
	return nil
}

func (s *collectionService) find(ctx context.Context, id int64, withItems bool) (*models.Collection, error) {
	collection, err := s.repo.FindByID(ctx, id, withItems)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("find collection %d: %w", id, err)
	}
	return collection, nil
}

func (s *collectionService) findOwned(ctx context.Context, requesterID string, id int64) (*models.Collection, error) {
	collection, err := s.find(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(collection.UserID, requesterID); err != nil {
		return nil, err
	}
	return collection, nil
}
