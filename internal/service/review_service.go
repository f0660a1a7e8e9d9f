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

// ReviewService handles reviews. Both foreign keys are verified before the
// insert, and edits are scoped to the author: a review belonging to someone
// else is reported as absent, not forbidden.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	homeRepo   repository.HomeRepository
	userRepo   repository.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	homeRepo repository.HomeRepository,
	userRepo repository.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		homeRepo:   homeRepo,
		userRepo:   userRepo,
	}
}

// Create validates both references and inserts the review for the given
// author.
func (s *ReviewService) Create(ctx context.Context, homeID, userID int64, create *models.ReviewCreate) (*models.Review, error) {
	exists, err := s.homeRepo.Exists(ctx, homeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewValidationError(constants.ColumnHomeID, "home_id does not reference an existing home")
	}

	exists, err = s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewValidationError(constants.ColumnUserID, "user_id does not reference an existing user")
	}

	createdAt, updatedAt := newTimestamps()
	review := &models.Review{
		Rating:    create.Rating,
		Review:    create.Review,
		HomeID:    homeID,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Update applies an allow-listed update to the author's own review.
func (s *ReviewService) Update(ctx context.Context, id, userID int64, update *models.ReviewUpdate) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, utils.NewNotFoundError(constants.MsgReviewNotFound)
	}

	if update.Rating != 0 {
		review.Rating = update.Rating
	}
	if update.Review != "" {
		review.Review = update.Review
	}
	review.UpdatedAt = time.Now()

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	log.Info().
		Int64(constants.ColumnReviewID, id).
		Int64(constants.ColumnUserID, userID).
		Msg("Review updated by author")

	return review, nil
}

// Delete removes the author's own review.
func (s *ReviewService) Delete(ctx context.Context, id, userID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != userID {
		return utils.NewNotFoundError(constants.MsgReviewNotFound)
	}

	return s.reviewRepo.Delete(ctx, id)
}
