// Package handlers contains the HTTP layer: request decoding, session
// plumbing, and response writing. Handlers stay thin; every business rule
// lives in the service layer behind the interfaces declared here, which is
// also what lets handler tests run against hand-rolled fakes.
package handlers

import (
	"context"

	"github.com/homenest/HomeNest_Backend/internal/models"
)

// AuthServiceInterface defines the account operations used by AuthHandler.
type AuthServiceInterface interface {
	SignUp(ctx context.Context, signup *models.UserSignup, profileImage string) (*models.User, error)
	Login(ctx context.Context, login *models.UserLogin) (*models.User, error)
}

// UserServiceInterface defines the user operations used by UserHandler and
// the /me endpoint.
type UserServiceInterface interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetProfile(ctx context.Context, id int64) (*models.UserProfile, error)
	Update(ctx context.Context, id int64, update *models.UserUpdate, profileImage string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// HomeServiceInterface defines the listing operations used by HomeHandler.
type HomeServiceInterface interface {
	List(ctx context.Context) ([]*models.Home, error)
	GetDetail(ctx context.Context, id int64) (*models.HomeDetail, error)
	Create(ctx context.Context, home *models.Home) (*models.Home, error)
	Update(ctx context.Context, id int64, update *models.HomeUpdate) (*models.Home, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewServiceInterface defines the review operations used by ReviewHandler.
type ReviewServiceInterface interface {
	Create(ctx context.Context, homeID, userID int64, create *models.ReviewCreate) (*models.Review, error)
	Update(ctx context.Context, id, userID int64, update *models.ReviewUpdate) (*models.Review, error)
	Delete(ctx context.Context, id, userID int64) error
}

// FavoriteServiceInterface defines the favorite operations used by
// FavoriteHandler.
type FavoriteServiceInterface interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error)
	AddFavorite(ctx context.Context, userID int64, create *models.FavoriteCreate) (*models.FavoriteCollection, error)
	AddHome(ctx context.Context, userID, collectionID, homeID int64) error
	Remove(ctx context.Context, userID, collectionID int64) error
}
