// This file implements the user repository. Besides plain CRUD it owns the
// user deletion cascade: collections, their join rows, reviews, and sessions
// go in the same transaction as the user row.
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

// UserRepository defines methods for interacting with user accounts in the
// database.
type UserRepository interface {
	// Create inserts a new user and populates its ID. Returns a
	// DuplicateError when the username or email is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID. Returns a NotFoundError if the user
	// does not exist.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail retrieves a user by email, credential fields included.
	// Returns a NotFoundError if no account uses the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByUsername retrieves a user by username. Returns a NotFoundError if
	// no account uses the username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Update writes the user's mutable profile fields (username, email,
	// profile image). Returns a NotFoundError if the user does not exist and
	// a DuplicateError when the new username or email collides.
	Update(ctx context.Context, user *models.User) error

	// ChangePassword replaces the stored hash and salt for a user.
	ChangePassword(ctx context.Context, userID int64, passwordHash, salt string) error

	// Delete removes the user together with their favorite collections, the
	// collections' join rows, their reviews, and their sessions, all in one
	// transaction. Returns a NotFoundError if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository.
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository implementation for PostgreSQL.
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// mapUserConstraintError translates a unique violation on the users table
// into the matching DuplicateError.
func mapUserConstraintError(pqErr *pq.Error, user *models.User) error {
	switch pqErr.Constraint {
	case "idx_username":
		return utils.NewDuplicateError("User", constants.ColumnUsername, user.Username)
	case "idx_email":
		return utils.NewDuplicateError("User", constants.ColumnEmail, user.Email)
	}
	return utils.NewDuplicateError("User", "", "")
}

// Create inserts a new user and populates its ID.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	query := `
		INSERT INTO users (username, email, password_hash, salt, profile_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Salt,
		user.ProfileImage,
		user.CreatedAt,
	).Scan(&user.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Username, user.Email, user.PasswordHash, user.Salt, user.ProfileImage, user.CreatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if string(pqErr.Code) == constants.PGErrorUniqueViolation {
				return mapUserConstraintError(pqErr, user)
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Int64(constants.ColumnUserID, user.ID).
		Str(constants.ColumnUsername, user.Username).
		Msg("User created")

	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	startTime := time.Now()

	query := `
		SELECT user_id, username, email, password_hash, salt, profile_image, created_at
		FROM users
		WHERE user_id = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.ProfileImage,
		&user.CreatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, credential fields included. The auth
// service reads the hash and salt off the result to verify a login.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := `
		SELECT user_id, username, email, password_hash, salt, profile_image, created_at
		FROM users
		WHERE email = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.ProfileImage,
		&user.CreatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{email},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	startTime := time.Now()

	query := `
		SELECT user_id, username, email, password_hash, salt, profile_image, created_at
		FROM users
		WHERE username = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.ProfileImage,
		&user.CreatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{username},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// Update writes the user's mutable profile fields.
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	query := `
		UPDATE users
		SET username = $1, email = $2, profile_image = $3
		WHERE user_id = $4
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.ProfileImage,
		user.ID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Username, user.Email, user.ProfileImage, user.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if string(pqErr.Code) == constants.PGErrorUniqueViolation {
				return mapUserConstraintError(pqErr, user)
			}
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	log.Info().
		Int64(constants.ColumnUserID, user.ID).
		Msg("User updated")

	return nil
}

// ChangePassword replaces the stored hash and salt for a user.
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, userID int64, passwordHash, salt string) error {
	startTime := time.Now()

	query := `
		UPDATE users
		SET password_hash = $1, salt = $2
		WHERE user_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, salt, userID)

	utils.LogDBQuery(
		query,
		[]interface{}{passwordHash, salt, userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	log.Info().
		Int64(constants.ColumnUserID, userID).
		Msg("Password changed")

	return nil
}

// Delete removes the user and everything hanging off the account. The order
// matters: join rows before their collections, then reviews, sessions, and
// finally the user row. Homes hosted by the user are intentionally left in
// place.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		joinQuery := `
			DELETE FROM home_favorites
			WHERE favorite_collection_id IN (
				SELECT collection_id FROM favorite_collections WHERE user_id = $1
			)
		`
		if _, err := tx.ExecContext(ctx, joinQuery, id); err != nil {
			return fmt.Errorf("failed to delete favorite links: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM favorite_collections WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete favorite collections: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return utils.NewNotFoundError(constants.MsgUserNotFound)
		}

		return nil
	})

	utils.LogDBQuery(
		"DELETE user cascade",
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return err
	}

	log.Info().
		Int64(constants.ColumnUserID, id).
		Msg("User deleted")

	return nil
}

// Exists reports whether a user with the given ID exists.
func (r *PostgresUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
