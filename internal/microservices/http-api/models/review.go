package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	TMDBID    int64     `json:"tmdbId" gorm:"column:tmdb_id;not null;index:idx_reviews_movie_created,priority:1"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	Rating    *float64  `json:"rating"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index:idx_reviews_movie_created,priority:2"`

	// Associations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
