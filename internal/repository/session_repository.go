// Package repository provides data access interfaces and PostgreSQL
// implementations for the HomeNest application. It follows the repository
// pattern: services depend on the interfaces, never on SQL, which keeps
// existence checks and cascade rules testable with sqlmock.
//
// This file implements the session repository backing the cookie-based
// authentication layer. Sessions are opaque server-side rows; validity is
// binary and revocation is immediate.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/database"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// SessionRepository defines methods for interacting with authentication
// sessions in the database.
type SessionRepository interface {
	// Create adds a new session. If the session ID is empty, a new UUID is
	// generated automatically.
	Create(ctx context.Context, session *models.Session) error

	// GetByID retrieves a session by its unique identifier. Returns a
	// NotFoundError if the session does not exist.
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session. Returns a NotFoundError if the session does
	// not exist.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes all sessions for a user. Deleting a user revokes
	// every device at once through this method.
	DeleteByUserID(ctx context.Context, userID int64) error

	// DeleteExpired removes all expired sessions and returns how many rows
	// were deleted. Used by the periodic sweeper.
	DeleteExpired(ctx context.Context) (int64, error)
}

// PostgresSessionRepository is a PostgreSQL implementation of SessionRepository.
type PostgresSessionRepository struct {
	db *database.Pool
}

// NewSessionRepository creates a new SessionRepository implementation for PostgreSQL.
func NewSessionRepository(db *database.Pool) SessionRepository {
	return &PostgresSessionRepository{
		db: db,
	}
}

// Create adds a new session to the database.
func (r *PostgresSessionRepository) Create(ctx context.Context, session *models.Session) error {
	startTime := time.Now()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	query := `
		INSERT INTO sessions (session_id, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.ExpiresAt,
		session.CreatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{session.ID, session.UserID, session.ExpiresAt, session.CreatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if string(pqErr.Code) == constants.PGErrorUniqueViolation {
				return utils.NewDuplicateError("Session", "id", session.ID)
			}
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().
		Str(constants.ColumnSessionID, session.ID).
		Int64(constants.ColumnUserID, session.UserID).
		Time("expires_at", session.ExpiresAt).
		Msg("Session created")

	return nil
}

// GetByID retrieves a session by ID.
func (r *PostgresSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	startTime := time.Now()

	query := `
		SELECT session_id, user_id, expires_at, created_at
		FROM sessions
		WHERE session_id = $1
	`

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Session not found.")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}

	return session, nil
}

// Delete removes a session from the database.
func (r *PostgresSessionRepository) Delete(ctx context.Context, id string) error {
	startTime := time.Now()

	query := `DELETE FROM sessions WHERE session_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Session not found.")
	}

	log.Info().
		Str(constants.ColumnSessionID, id).
		Msg("Session deleted")

	return nil
}

// DeleteByUserID removes all sessions for a user.
func (r *PostgresSessionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	startTime := time.Now()

	query := `DELETE FROM sessions WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)

	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete sessions by user ID: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	log.Info().
		Int64(constants.ColumnUserID, userID).
		Int64("count", rowsAffected).
		Msg("Sessions deleted for user")

	return nil
}

// DeleteExpired removes all expired sessions from the database.
func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	startTime := time.Now()

	query := `DELETE FROM sessions WHERE expires_at < $1`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now)

	utils.LogDBQuery(
		query,
		[]interface{}{now},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if count > 0 {
		log.Info().
			Int64("count", count).
			Msg("Expired sessions deleted")
	}

	return count, nil
}
