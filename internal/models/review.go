package models

import (
	"time"
)

// Review is a rating plus text left by a user about a home. Both foreign
// keys must reference existing rows at write time.
type Review struct {
	ID        int64     `json:"id" db:"review_id"`
	Rating    int       `json:"rating" db:"rating" validate:"required,min=1,max=5"`
	Review    string    `json:"review" db:"review" validate:"required,min=5,max=5000"`
	HomeID    int64     `json:"home_id" db:"home_id" validate:"required,gt=0"`
	UserID    int64     `json:"user_id" db:"user_id" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the database table name for the Review model.
func (r *Review) TableName() string {
	return "reviews"
}

// ReviewCreate is the payload accepted by POST /homes/{home_id}/reviews.
// The home and user ids come from the path and the session.
type ReviewCreate struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required,min=5,max=5000"`
}

// ReviewUpdate is the allow-listed update struct for PATCH /reviews/{id}.
type ReviewUpdate struct {
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Review string `json:"review" validate:"omitempty,min=5,max=5000"`
}

// ReviewWithAuthor is the projection used under a home detail: the review
// plus the author's username, nothing deeper.
type ReviewWithAuthor struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	HomeID    int64     `json:"home_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
