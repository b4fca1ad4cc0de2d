package models

import "time"

// WatchlistEntry is a movie a user marked for later viewing.
// (user_id, tmdb_id) is unique so re-adding a movie can be an upsert.
type WatchlistEntry struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_movie" json:"userId"`
	TMDBID  int64     `gorm:"column:tmdb_id;not null;uniqueIndex:idx_watchlist_user_movie" json:"tmdbId"`
	Title   string    `json:"title"`
	Poster  string    `json:"poster"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"addedAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
