package models

import (
	"time"
)

// FavoriteCollection is a named grouping of favorited homes owned by a user.
type FavoriteCollection struct {
	ID        int64     `json:"id" db:"collection_id"`
	Name      string    `json:"name" db:"name" validate:"required,min=2,max=50"`
	UserID    int64     `json:"user_id" db:"user_id" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the database table name for the FavoriteCollection model.
func (fc *FavoriteCollection) TableName() string {
	return "favorite_collections"
}

// HomeFavorite is the join row linking a collection to a home. It has no
// surrogate key; identity is the (collection, home) pair.
type HomeFavorite struct {
	FavoriteCollectionID int64 `json:"favorite_collection_id" db:"favorite_collection_id" validate:"required,gt=0"`
	HomeID               int64 `json:"home_id" db:"home_id" validate:"required,gt=0"`
}

// TableName returns the database table name for the HomeFavorite model.
func (hf *HomeFavorite) TableName() string {
	return "home_favorites"
}

// FavoriteCreate is the payload accepted by POST /{user_id}/add_favorite.
// HomeID is optional; when present the home is linked into the new
// collection in the same transaction.
type FavoriteCreate struct {
	Name   string `json:"name" validate:"required,min=2,max=50"`
	HomeID int64  `json:"home_id" validate:"omitempty,gt=0"`
}

// FavoriteSummary is the projection returned for a collection: its fields
// plus the derived homes view (the homes reachable through its join rows).
type FavoriteSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Homes     []*Home   `json:"homes"`
}
