// This file implements the favorite repository: named collections plus the
// home_favorites join rows that make up each collection's derived homes view.
// Creating a collection with an initial home and deleting a collection with
// its links are single transactions.
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

// FavoriteRepository defines methods for interacting with favorite
// collections and their home links in the database.
type FavoriteRepository interface {
	// Create inserts a new collection and, when homeID is positive, the
	// join row linking it to that home, both in one transaction. A failing
	// link insert leaves no collection behind.
	Create(ctx context.Context, collection *models.FavoriteCollection, homeID int64) error

	// GetByID retrieves a collection by ID. Returns a NotFoundError if the
	// collection does not exist.
	GetByID(ctx context.Context, id int64) (*models.FavoriteCollection, error)

	// ListByUserID retrieves all of a user's collections, each with its
	// derived homes view, newest collection first.
	ListByUserID(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error)

	// AddHome links a home into an existing collection. A duplicate pair is
	// a DuplicateError; a missing home or collection is a validation error.
	AddHome(ctx context.Context, collectionID, homeID int64) error

	// Delete removes the collection and its join rows in one transaction.
	// Returns a NotFoundError if the collection does not exist.
	Delete(ctx context.Context, id int64) error
}

// PostgresFavoriteRepository is a PostgreSQL implementation of FavoriteRepository.
type PostgresFavoriteRepository struct {
	db *database.Pool
}

// NewFavoriteRepository creates a new FavoriteRepository implementation for PostgreSQL.
func NewFavoriteRepository(db *database.Pool) FavoriteRepository {
	return &PostgresFavoriteRepository{
		db: db,
	}
}

// Create inserts a new collection and optionally its first home link.
func (r *PostgresFavoriteRepository) Create(ctx context.Context, collection *models.FavoriteCollection, homeID int64) error {
	startTime := time.Now()

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO favorite_collections (name, user_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4)
			RETURNING collection_id
		`

		err := tx.QueryRowContext(
			ctx,
			query,
			collection.Name,
			collection.UserID,
			collection.CreatedAt,
			collection.UpdatedAt,
		).Scan(&collection.ID)
		if err != nil {
			return fmt.Errorf("failed to create favorite collection: %w", err)
		}

		if homeID > 0 {
			linkQuery := `
				INSERT INTO home_favorites (favorite_collection_id, home_id)
				VALUES ($1, $2)
			`
			if _, err := tx.ExecContext(ctx, linkQuery, collection.ID, homeID); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					if string(pqErr.Code) == constants.PGErrorForeignKeyViolation {
						return utils.ParseError(pqErr)
					}
				}
				return fmt.Errorf("failed to link home to collection: %w", err)
			}
		}

		return nil
	})

	utils.LogDBQuery(
		"INSERT favorite collection",
		[]interface{}{collection.Name, collection.UserID, homeID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return err
	}

	log.Info().
		Int64(constants.ColumnCollectionID, collection.ID).
		Int64(constants.ColumnUserID, collection.UserID).
		Msg("Favorite collection created")

	return nil
}

// GetByID retrieves a collection by ID.
func (r *PostgresFavoriteRepository) GetByID(ctx context.Context, id int64) (*models.FavoriteCollection, error) {
	startTime := time.Now()

	query := `
		SELECT collection_id, name, user_id, created_at, updated_at
		FROM favorite_collections
		WHERE collection_id = $1
	`

	collection := &models.FavoriteCollection{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&collection.ID,
		&collection.Name,
		&collection.UserID,
		&collection.CreatedAt,
		&collection.UpdatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgFavoriteNotFound)
		}
		return nil, fmt.Errorf("failed to get favorite collection by ID: %w", err)
	}

	return collection, nil
}

// ListByUserID retrieves all of a user's collections with their homes. One
// query fetches the collections, a second fetches every linked home for the
// user, and the rows are stitched together in memory.
func (r *PostgresFavoriteRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error) {
	startTime := time.Now()

	query := `
		SELECT collection_id, name, user_id, created_at
		FROM favorite_collections
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
		return nil, fmt.Errorf("failed to list favorite collections: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	summaries := []*models.FavoriteSummary{}
	byID := map[int64]*models.FavoriteSummary{}
	for rows.Next() {
		summary := &models.FavoriteSummary{Homes: []*models.Home{}}
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.UserID,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite collection row: %w", err)
		}
		summaries = append(summaries, summary)
		byID[summary.ID] = summary
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite collection rows: %w", err)
	}

	if len(summaries) == 0 {
		return summaries, nil
	}

	linkedHomes, err := r.listLinkedHomes(ctx, userID)
	if err != nil {
		return nil, err
	}

	for collectionID, homes := range linkedHomes {
		if summary, ok := byID[collectionID]; ok {
			summary.Homes = homes
		}
	}

	return summaries, nil
}

// listLinkedHomes fetches every home linked into any of the user's
// collections, keyed by collection ID.
func (r *PostgresFavoriteRepository) listLinkedHomes(ctx context.Context, userID int64) (map[int64][]*models.Home, error) {
	startTime := time.Now()

	query := `
		SELECT hf.favorite_collection_id,
			h.home_id, h.title, h.description, h.home_type, h.max_guests,
			h.total_occupancy, h.total_bedrooms, h.total_bathrooms, h.location,
			h.amenities, h.price_per_night, h.image, h.host_id, h.created_at
		FROM home_favorites hf
		JOIN favorite_collections fc ON fc.collection_id = hf.favorite_collection_id
		JOIN homes h ON h.home_id = hf.home_id
		WHERE fc.user_id = $1
		ORDER BY hf.favorite_collection_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)

	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list linked homes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	linked := map[int64][]*models.Home{}
	for rows.Next() {
		var collectionID int64
		home := &models.Home{}
		err := rows.Scan(
			&collectionID,
			&home.ID,
			&home.Title,
			&home.Description,
			&home.HomeType,
			&home.MaxGuests,
			&home.TotalOccupancy,
			&home.TotalBedrooms,
			&home.TotalBathrooms,
			&home.Location,
			&home.Amenities,
			&home.PricePerNight,
			&home.Image,
			&home.HostID,
			&home.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked home row: %w", err)
		}
		linked[collectionID] = append(linked[collectionID], home)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating linked home rows: %w", err)
	}

	return linked, nil
}

// AddHome links a home into an existing collection.
func (r *PostgresFavoriteRepository) AddHome(ctx context.Context, collectionID, homeID int64) error {
	startTime := time.Now()

	query := `
		INSERT INTO home_favorites (favorite_collection_id, home_id)
		VALUES ($1, $2)
	`

	_, err := r.db.ExecContext(ctx, query, collectionID, homeID)

	utils.LogDBQuery(
		query,
		[]interface{}{collectionID, homeID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch string(pqErr.Code) {
			case constants.PGErrorUniqueViolation:
				return utils.NewDuplicateError("Favorite", constants.ColumnHomeID, homeID)
			case constants.PGErrorForeignKeyViolation:
				return utils.ParseError(pqErr)
			}
		}
		return fmt.Errorf("failed to add home to collection: %w", err)
	}

	log.Info().
		Int64(constants.ColumnCollectionID, collectionID).
		Int64(constants.ColumnHomeID, homeID).
		Msg("Home added to favorite collection")

	return nil
}

// Delete removes the collection and its join rows.
func (r *PostgresFavoriteRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM home_favorites WHERE favorite_collection_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete favorite links: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM favorite_collections WHERE collection_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete favorite collection: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return utils.NewNotFoundError(constants.MsgFavoriteNotFound)
		}

		return nil
	})

	utils.LogDBQuery(
		"DELETE favorite collection cascade",
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return err
	}

	log.Info().
		Int64(constants.ColumnCollectionID, id).
		Msg("Favorite collection deleted")

	return nil
}
