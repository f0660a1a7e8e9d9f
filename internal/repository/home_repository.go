// This file implements the home repository. Deleting a home cascades its
// reviews and favorite links; the collections that referenced it stay alive.
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

// HomeRepository defines methods for interacting with home listings in the
// database.
type HomeRepository interface {
	// Create inserts a new home and populates its ID.
	Create(ctx context.Context, home *models.Home) error

	// GetByID retrieves a home by ID. Returns a NotFoundError if the home
	// does not exist.
	GetByID(ctx context.Context, id int64) (*models.Home, error)

	// List retrieves all homes, newest first.
	List(ctx context.Context) ([]*models.Home, error)

	// ListByIDs retrieves the homes matching the given IDs. Missing IDs are
	// silently skipped; the result order is unspecified.
	ListByIDs(ctx context.Context, ids []int64) ([]*models.Home, error)

	// Update writes the home's mutable fields. Returns a NotFoundError if
	// the home does not exist.
	Update(ctx context.Context, home *models.Home) error

	// Delete removes the home together with its reviews and favorite links
	// in one transaction. Returns a NotFoundError if the home does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a home with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}

// PostgresHomeRepository is a PostgreSQL implementation of HomeRepository.
type PostgresHomeRepository struct {
	db *database.Pool
}

// NewHomeRepository creates a new HomeRepository implementation for PostgreSQL.
func NewHomeRepository(db *database.Pool) HomeRepository {
	return &PostgresHomeRepository{
		db: db,
	}
}

const homeColumns = `home_id, title, description, home_type, max_guests,
		total_occupancy, total_bedrooms, total_bathrooms, location, amenities,
		price_per_night, image, host_id, created_at`

// scanHome reads one home row in column order.
func scanHome(row interface{ Scan(...interface{}) error }) (*models.Home, error) {
	home := &models.Home{}
	err := row.Scan(
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
		return nil, err
	}
	return home, nil
}

// Create inserts a new home and populates its ID.
func (r *PostgresHomeRepository) Create(ctx context.Context, home *models.Home) error {
	startTime := time.Now()

	query := `
		INSERT INTO homes (title, description, home_type, max_guests,
			total_occupancy, total_bedrooms, total_bathrooms, location,
			amenities, price_per_night, image, host_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING home_id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		home.Title,
		home.Description,
		home.HomeType,
		home.MaxGuests,
		home.TotalOccupancy,
		home.TotalBedrooms,
		home.TotalBathrooms,
		home.Location,
		home.Amenities,
		home.PricePerNight,
		home.Image,
		home.HostID,
		home.CreatedAt,
	).Scan(&home.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{home.Title, home.HomeType, home.PricePerNight, home.HostID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to create home: %w", err)
	}

	log.Info().
		Int64(constants.ColumnHomeID, home.ID).
		Int64("host_id", home.HostID).
		Msg("Home created")

	return nil
}

// GetByID retrieves a home by ID.
func (r *PostgresHomeRepository) GetByID(ctx context.Context, id int64) (*models.Home, error) {
	startTime := time.Now()

	query := `
		SELECT ` + homeColumns + `
		FROM homes
		WHERE home_id = $1
	`

	home, err := scanHome(r.db.QueryRowContext(ctx, query, id))

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgHomeNotFound)
		}
		return nil, fmt.Errorf("failed to get home by ID: %w", err)
	}

	return home, nil
}

// List retrieves all homes, newest first.
func (r *PostgresHomeRepository) List(ctx context.Context) ([]*models.Home, error) {
	startTime := time.Now()

	query := `
		SELECT ` + homeColumns + `
		FROM homes
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)

	utils.LogDBQuery(
		query,
		nil,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list homes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	homes := []*models.Home{}
	for rows.Next() {
		home, err := scanHome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan home row: %w", err)
		}
		homes = append(homes, home)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating home rows: %w", err)
	}

	return homes, nil
}

// ListByIDs retrieves the homes matching the given IDs.
func (r *PostgresHomeRepository) ListByIDs(ctx context.Context, ids []int64) ([]*models.Home, error) {
	if len(ids) == 0 {
		return []*models.Home{}, nil
	}

	startTime := time.Now()

	query := `
		SELECT ` + homeColumns + `
		FROM homes
		WHERE home_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))

	utils.LogDBQuery(
		query,
		[]interface{}{ids},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list homes by IDs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	homes := []*models.Home{}
	for rows.Next() {
		home, err := scanHome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan home row: %w", err)
		}
		homes = append(homes, home)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating home rows: %w", err)
	}

	return homes, nil
}

// Update writes the home's mutable fields.
func (r *PostgresHomeRepository) Update(ctx context.Context, home *models.Home) error {
	startTime := time.Now()

	query := `
		UPDATE homes
		SET title = $1, description = $2, home_type = $3, max_guests = $4,
			total_occupancy = $5, total_bedrooms = $6, total_bathrooms = $7,
			location = $8, amenities = $9, price_per_night = $10, image = $11
		WHERE home_id = $12
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		home.Title,
		home.Description,
		home.HomeType,
		home.MaxGuests,
		home.TotalOccupancy,
		home.TotalBedrooms,
		home.TotalBathrooms,
		home.Location,
		home.Amenities,
		home.PricePerNight,
		home.Image,
		home.ID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{home.Title, home.HomeType, home.PricePerNight, home.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update home: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgHomeNotFound)
	}

	log.Info().
		Int64(constants.ColumnHomeID, home.ID).
		Msg("Home updated")

	return nil
}

// Delete removes the home with its reviews and favorite links. Collections
// that pointed at the home survive with one home fewer.
func (r *PostgresHomeRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM home_favorites WHERE home_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete favorite links: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE home_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM homes WHERE home_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete home: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return utils.NewNotFoundError(constants.MsgHomeNotFound)
		}

		return nil
	})

	utils.LogDBQuery(
		"DELETE home cascade",
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return err
	}

	log.Info().
		Int64(constants.ColumnHomeID, id).
		Msg("Home deleted")

	return nil
}

// Exists reports whether a home with the given ID exists.
func (r *PostgresHomeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM homes WHERE home_id = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return false, fmt.Errorf("failed to check home existence: %w", err)
	}

	return exists, nil
}
