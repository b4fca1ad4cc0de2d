package models

import "time"

type Collection struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsPublic    bool      `gorm:"not null" json:"isPublic"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;index" json:"updatedAt"`

	// Associations
	User  *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Items []CollectionItem `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE;" json:"items,omitempty"`
}

func (Collection) TableName() string {
	return "collections"
}

type CollectionItem struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CollectionID int64     `gorm:"not null;uniqueIndex:idx_collection_movie" json:"collectionId"`
	TMDBID       int64     `gorm:"column:tmdb_id;not null;uniqueIndex:idx_collection_movie" json:"tmdbId"`
	Title        string    `json:"title"`
	PosterPath   string    `json:"posterPath"`
	ReleaseDate  string    `json:"releaseDate"`
	AddedAt      time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

func (CollectionItem) TableName() string {
	return "collection_items"
}
