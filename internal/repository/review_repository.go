// This file implements the review repository. Reviews carry two foreign
// keys; the service layer verifies both rows exist before calling Create,
// and the FK mapping here is the backstop for races.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/database"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// ReviewRepository defines methods for interacting with reviews in the
// database.
type ReviewRepository interface {
	// Create inserts a new review and populates its ID. A foreign key
	// violation surfaces as a validation error.
	Create(ctx context.Context, review *models.Review) error

	// GetByID retrieves a review by ID. Returns a NotFoundError if the
	// review does not exist.
	GetByID(ctx context.Context, id int64) (*models.Review, error)

	// ListByHomeID retrieves all reviews for a home with each author's
	// username, newest first.
	ListByHomeID(ctx context.Context, homeID int64) ([]*models.ReviewWithAuthor, error)

	// ListByUserID retrieves all reviews written by a user, newest first.
	ListByUserID(ctx context.Context, userID int64) ([]*models.Review, error)

	// Update writes the review's rating and text. Returns a NotFoundError
	// if the review does not exist.
	Update(ctx context.Context, review *models.Review) error

	// Delete removes a review. Returns a NotFoundError if the review does
	// not exist.
	Delete(ctx context.Context, id int64) error
}

// PostgresReviewRepository is a PostgreSQL implementation of ReviewRepository.
type PostgresReviewRepository struct {
	db *database.Pool
}

// NewReviewRepository creates a new ReviewRepository implementation for PostgreSQL.
func NewReviewRepository(db *database.Pool) ReviewRepository {
	return &PostgresReviewRepository{
		db: db,
	}
}

// Create inserts a new review and populates its ID.
func (r *PostgresReviewRepository) Create(ctx context.Context, review *models.Review) error {
	startTime := time.Now()

	query := `
		INSERT INTO reviews (rating, review, home_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		review.Rating,
		review.Review,
		review.HomeID,
		review.UserID,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{review.Rating, review.HomeID, review.UserID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if string(pqErr.Code) == constants.PGErrorForeignKeyViolation {
				return utils.ParseError(pqErr)
			}
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	log.Info().
		Int64(constants.ColumnReviewID, review.ID).
		Int64(constants.ColumnHomeID, review.HomeID).
		Int64(constants.ColumnUserID, review.UserID).
		Msg("Review created")

	return nil
}

// GetByID retrieves a review by ID.
func (r *PostgresReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	startTime := time.Now()

	query := `
		SELECT review_id, rating, review, home_id, user_id, created_at, updated_at
		FROM reviews
		WHERE review_id = $1
	`

	review := &models.Review{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID,
		&review.Rating,
		&review.Review,
		&review.HomeID,
		&review.UserID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgReviewNotFound)
		}
		return nil, fmt.Errorf("failed to get review by ID: %w", err)
	}

	return review, nil
}

// ListByHomeID retrieves all reviews for a home with each author's username.
func (r *PostgresReviewRepository) ListByHomeID(ctx context.Context, homeID int64) ([]*models.ReviewWithAuthor, error) {
	startTime := time.Now()

	query := `
		SELECT r.review_id, r.rating, r.review, r.home_id, r.user_id, u.username, r.created_at
		FROM reviews r
		JOIN users u ON u.user_id = r.user_id
		WHERE r.home_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, homeID)

	utils.LogDBQuery(
		query,
		[]interface{}{homeID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by home ID: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	reviews := []*models.ReviewWithAuthor{}
	for rows.Next() {
		review := &models.ReviewWithAuthor{}
		err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.Review,
			&review.HomeID,
			&review.UserID,
			&review.Username,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// ListByUserID retrieves all reviews written by a user.
func (r *PostgresReviewRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Review, error) {
	startTime := time.Now()

	query := `
		SELECT review_id, rating, review, home_id, user_id, created_at, updated_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)

	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by user ID: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.Review,
			&review.HomeID,
			&review.UserID,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// Update writes the review's rating and text.
func (r *PostgresReviewRepository) Update(ctx context.Context, review *models.Review) error {
	startTime := time.Now()

	query := `
		UPDATE reviews
		SET rating = $1, review = $2, updated_at = $3
		WHERE review_id = $4
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		review.Rating,
		review.Review,
		review.UpdatedAt,
		review.ID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{review.Rating, review.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgReviewNotFound)
	}

	log.Info().
		Int64(constants.ColumnReviewID, review.ID).
		Msg("Review updated")

	return nil
}

// Delete removes a review from the database.
func (r *PostgresReviewRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `DELETE FROM reviews WHERE review_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgReviewNotFound)
	}

	log.Info().
		Int64(constants.ColumnReviewID, id).
		Msg("Review deleted")

	return nil
}
