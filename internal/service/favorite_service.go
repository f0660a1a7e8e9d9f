package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// FavoriteService handles favorite collections and their home links.
// Ownership checks answer with a plain not-found: whether a collection
// belongs to someone else or does not exist at all looks the same to the
// caller.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	homeRepo     repository.HomeRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	homeRepo repository.HomeRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		homeRepo:     homeRepo,
	}
}

// ListByUser returns the user's collections, each with its homes view.
func (s *FavoriteService) ListByUser(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	return s.favoriteRepo.ListByUserID(ctx, userID)
}

// AddFavorite creates a collection for the user and, when a home is named,
// links it in the same transaction. A home_id that matches nothing fails the
// whole operation before any insert.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID int64, create *models.FavoriteCreate) (*models.FavoriteCollection, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	if create.HomeID > 0 {
		exists, err := s.homeRepo.Exists(ctx, create.HomeID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, utils.NewValidationError(constants.ColumnHomeID, "home_id does not reference an existing home")
		}
	}

	createdAt, updatedAt := newTimestamps()
	collection := &models.FavoriteCollection{
		Name:      create.Name,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if err := s.favoriteRepo.Create(ctx, collection, create.HomeID); err != nil {
		return nil, err
	}

	log.Info().
		Int64(constants.ColumnCollectionID, collection.ID).
		Int64(constants.ColumnUserID, userID).
		Bool("with_home", create.HomeID > 0).
		Msg("Favorite collection added")

	return collection, nil
}

// AddHome links a home into one of the user's own collections.
func (s *FavoriteService) AddHome(ctx context.Context, userID, collectionID, homeID int64) error {
	collection, err := s.favoriteRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection.UserID != userID {
		return utils.NewNotFoundError(constants.MsgFavoriteNotFound)
	}

	exists, err := s.homeRepo.Exists(ctx, homeID)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NewValidationError(constants.ColumnHomeID, "home_id does not reference an existing home")
	}

	return s.favoriteRepo.AddHome(ctx, collectionID, homeID)
}

// Remove deletes one of the user's own collections together with its links.
func (s *FavoriteService) Remove(ctx context.Context, userID, collectionID int64) error {
	collection, err := s.favoriteRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection.UserID != userID {
		return utils.NewNotFoundError(constants.MsgFavoriteNotFound)
	}

	return s.favoriteRepo.Delete(ctx, collectionID)
}
