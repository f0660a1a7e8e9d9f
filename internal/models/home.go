package models

import (
	"time"
)

// Home represents a rentable property listing. The host must reference an
// existing user; that check lives in the service layer so the repository
// stays mockable.
type Home struct {
	ID             int64     `json:"id" db:"home_id"`
	Title          string    `json:"title" db:"title" validate:"required,min=5,max=50"`
	Description    string    `json:"description" db:"description" validate:"required,min=10,max=500"`
	HomeType       string    `json:"home_type" db:"home_type" validate:"required,oneof=house apartment condo cabin"`
	MaxGuests      int       `json:"max_guests" db:"max_guests" validate:"required,gt=0"`
	TotalOccupancy int       `json:"total_occupancy,omitempty" db:"total_occupancy" validate:"omitempty,gt=0"`
	TotalBedrooms  int       `json:"total_bedrooms,omitempty" db:"total_bedrooms" validate:"omitempty,gt=0"`
	TotalBathrooms int       `json:"total_bathrooms,omitempty" db:"total_bathrooms" validate:"omitempty,gt=0"`
	Location       string    `json:"location,omitempty" db:"location"`
	Amenities      string    `json:"amenities,omitempty" db:"amenities"`
	PricePerNight  float64   `json:"price_per_night" db:"price_per_night" validate:"required,gt=0"`
	Image          string    `json:"image" db:"image" validate:"required,https_url"`
	HostID         int64     `json:"host_id" db:"host_id" validate:"required,gt=0"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the database table name for the Home model.
func (h *Home) TableName() string {
	return "homes"
}

// HomeUpdate is the allow-listed update struct for PATCH /homes/{id}.
// The host is fixed at creation and cannot be reassigned.
type HomeUpdate struct {
	Title          string  `json:"title" validate:"omitempty,min=5,max=50"`
	Description    string  `json:"description" validate:"omitempty,min=10,max=500"`
	HomeType       string  `json:"home_type" validate:"omitempty,oneof=house apartment condo cabin"`
	MaxGuests      int     `json:"max_guests" validate:"omitempty,gt=0"`
	TotalOccupancy int     `json:"total_occupancy" validate:"omitempty,gt=0"`
	TotalBedrooms  int     `json:"total_bedrooms" validate:"omitempty,gt=0"`
	TotalBathrooms int     `json:"total_bathrooms" validate:"omitempty,gt=0"`
	Location       string  `json:"location" validate:"omitempty"`
	Amenities      string  `json:"amenities" validate:"omitempty"`
	PricePerNight  float64 `json:"price_per_night" validate:"omitempty,gt=0"`
	Image          string  `json:"image" validate:"omitempty,https_url"`
}

// HomeDetail is the projection returned by GET /homes/{id}: the listing plus
// its reviews with each reviewer's username.
type HomeDetail struct {
	Home    *Home               `json:"home"`
	Reviews []*ReviewWithAuthor `json:"reviews"`
}
