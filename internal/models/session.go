package models

import (
	"time"
)

// Session is a server-tracked authentication session. The client holds only
// the opaque ID in a cookie; validity is binary and decided here.
type Session struct {
	ID        string    `json:"id" db:"session_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the database table name for the Session model.
func (s *Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
