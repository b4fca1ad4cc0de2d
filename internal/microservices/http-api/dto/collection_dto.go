package dto

import "cineverse/internal/microservices/http-api/models"

// CreateCollectionRequest for creating a collection
type CreateCollectionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdateCollectionRequest is a partial update: nil fields keep their value
type UpdateCollectionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// AddCollectionItemRequest for adding a movie to a collection
type AddCollectionItemRequest struct {
	TMDBID      MovieID `json:"tmdbId"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"posterPath"`
	ReleaseDate string  `json:"releaseDate"`
}

// CollectionSummary is the list view of a collection with poster previews
type CollectionSummary struct {
	models.Collection
	PreviewPosters []string `json:"previewPosters"`
	ItemCount      int64    `json:"itemCount"`
}

// CollectionDetail is the single-collection view; items is always present
type CollectionDetail struct {
	models.Collection
	Items []models.CollectionItem `json:"items"`
}

func FromModelToCollectionDetail(collection *models.Collection) CollectionDetail {
	items := collection.Items
	if items == nil {
		items = []models.CollectionItem{}
	}
	return CollectionDetail{Collection: *collection, Items: items}
}
