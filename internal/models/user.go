// Package models defines the database entities, the allow-listed update
// structs accepted by PATCH endpoints, and the explicit response projections.
// Serialization never walks the live relational graph: each projection
// enumerates exactly the fields and nested shapes it exposes, which is what
// keeps User→Review→User cycles out of responses.
package models

import (
	"time"
)

// User represents a registered user account. PasswordHash and Salt are
// excluded from JSON output; plaintext credentials never touch this struct.
type User struct {
	ID           int64     `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username" validate:"required,min=3,max=20"`
	Email        string    `json:"email" db:"email" validate:"required,min=5,max=40,email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Salt         string    `json:"-" db:"salt"`
	ProfileImage string    `json:"profile_image,omitempty" db:"profile_image" validate:"omitempty,https_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NewUser creates a User with the given profile fields. Credential fields
// are populated by the auth layer during signup.
func NewUser(username, email, profileImage string) *User {
	return &User{
		Username:     username,
		Email:        email,
		ProfileImage: profileImage,
		CreatedAt:    time.Now(),
	}
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// Sanitize returns a copy safe to serialize to clients. The json tags
// already hide the credential fields; clearing them as well means a future
// tag regression cannot leak a hash.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	sanitized.Salt = ""
	return &sanitized
}

// UserSignup is the payload accepted by POST /signup. The image arrives as a
// separate multipart file, not a field here.
type UserSignup struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,min=5,max=40,email"`
	Password string `json:"password" validate:"required,min=8,max=50"`
}

// UserLogin is the payload accepted by POST /login.
type UserLogin struct {
	Email    string `json:"email" validate:"required,min=5,max=40,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate is the allow-listed update struct for PATCH /users/{id}.
// Only these fields can change; anything else in the request is rejected at
// decode time. Empty fields are left untouched.
type UserUpdate struct {
	Username string `json:"username" validate:"omitempty,min=3,max=20"`
	Email    string `json:"email" validate:"omitempty,min=5,max=40,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=50"`
}

// UserProfile is the projection returned by GET /users/{id}: the sanitized
// account plus its reviews and favorite collections, one level deep.
type UserProfile struct {
	ID                  int64              `json:"id"`
	Username            string             `json:"username"`
	Email               string             `json:"email"`
	ProfileImage        string             `json:"profile_image,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	Reviews             []*Review          `json:"reviews"`
	FavoriteCollections []*FavoriteSummary `json:"favorite_collections"`
}
