package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// UserService handles user profile reads, allow-listed updates, and the
// account deletion cascade.
type UserService struct {
	userRepo     repository.UserRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	passwordCfg  *auth.PasswordConfig
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
	passwordCfg *auth.PasswordConfig,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
		passwordCfg:  passwordCfg,
	}
}

// GetByID returns the sanitized user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// GetProfile assembles the profile projection: the sanitized account plus
// its reviews and favorite collections, one level deep.
func (s *UserService) GetProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		ID:                  user.ID,
		Username:            user.Username,
		Email:               user.Email,
		ProfileImage:        user.ProfileImage,
		CreatedAt:           user.CreatedAt,
		Reviews:             reviews,
		FavoriteCollections: favorites,
	}, nil
}

// Update applies an allow-listed update to the user. Only fields present in
// the update struct can change; a submitted password is re-hashed, and a
// non-empty profileImage replaces the stored URL.
func (s *UserService) Update(ctx context.Context, id int64, update *models.UserUpdate, profileImage string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != "" {
		user.Username = update.Username
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if profileImage != "" {
		user.ProfileImage = profileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if update.Password != "" {
		passwordHash, salt, err := auth.HashPassword(update.Password, s.passwordCfg)
		if err != nil {
			return nil, utils.NewInternalServerError(err)
		}
		if err := s.userRepo.ChangePassword(ctx, id, passwordHash, salt); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int64(constants.ColumnUserID, id).
		Bool("password_changed", update.Password != "").
		Msg("User profile updated")

	return user.Sanitize(), nil
}

// Delete removes the account and everything owned by it: favorite
// collections with their links, reviews, and sessions go in the same
// transaction. Hosted homes survive the owner.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
