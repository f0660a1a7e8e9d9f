package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// HomeService handles home listings. Referential checks (the host must be a
// real user) happen here, before any insert.
type HomeService struct {
	homeRepo   repository.HomeRepository
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

// NewHomeService creates a new HomeService.
func NewHomeService(
	homeRepo repository.HomeRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
) *HomeService {
	return &HomeService{
		homeRepo:   homeRepo,
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

// List returns all homes, newest first.
func (s *HomeService) List(ctx context.Context) ([]*models.Home, error) {
	return s.homeRepo.List(ctx)
}

// GetDetail returns the home with its reviews, each carrying the reviewer's
// username.
func (s *HomeService) GetDetail(ctx context.Context, id int64) (*models.HomeDetail, error) {
	home, err := s.homeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByHomeID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.HomeDetail{
		Home:    home,
		Reviews: reviews,
	}, nil
}

// Create validates the host reference and inserts the home.
func (s *HomeService) Create(ctx context.Context, home *models.Home) (*models.Home, error) {
	exists, err := s.userRepo.Exists(ctx, home.HostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewValidationError("host_id", "host_id does not reference an existing user")
	}

	home.CreatedAt = time.Now()
	if err := s.homeRepo.Create(ctx, home); err != nil {
		return nil, err
	}

	return home, nil
}

// Update applies an allow-listed update to the home. The host cannot change.
func (s *HomeService) Update(ctx context.Context, id int64, update *models.HomeUpdate) (*models.Home, error) {
	home, err := s.homeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != "" {
		home.Title = update.Title
	}
	if update.Description != "" {
		home.Description = update.Description
	}
	if update.HomeType != "" {
		home.HomeType = update.HomeType
	}
	if update.MaxGuests > 0 {
		home.MaxGuests = update.MaxGuests
	}
	if update.TotalOccupancy > 0 {
		home.TotalOccupancy = update.TotalOccupancy
	}
	if update.TotalBedrooms > 0 {
		home.TotalBedrooms = update.TotalBedrooms
	}
	if update.TotalBathrooms > 0 {
		home.TotalBathrooms = update.TotalBathrooms
	}
	if update.Location != "" {
		home.Location = update.Location
	}
	if update.Amenities != "" {
		home.Amenities = update.Amenities
	}
	if update.PricePerNight > 0 {
		home.PricePerNight = update.PricePerNight
	}
	if update.Image != "" {
		home.Image = update.Image
	}

	if err := s.homeRepo.Update(ctx, home); err != nil {
		return nil, err
	}

	log.Info().
		Int64(constants.ColumnHomeID, id).
		Msg("Home listing updated")

	return home, nil
}

// Delete removes the home with its reviews and favorite links. Collections
// that pointed at it stay.
func (s *HomeService) Delete(ctx context.Context, id int64) error {
	return s.homeRepo.Delete(ctx, id)
}
