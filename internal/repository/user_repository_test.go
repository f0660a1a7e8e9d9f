package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/database"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

func setupUserRepositoryTest(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbPool := &database.Pool{DB: db}
	repo := repository.NewUserRepository(dbPool)

	return repo, mock, func() {
		db.Close()
	}
}

var userColumns = []string{"user_id", "username", "email", "password_hash", "salt", "profile_image", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := models.NewUser("frida", "frida@example.com", "")
	user.PasswordHash = "hash"
	user.Salt = "salt"

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Salt, user.ProfileImage, user.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := models.NewUser("frida", "frida@example.com", "")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{
			Code:       pq.ErrorCode(constants.PGErrorUniqueViolation),
			Constraint: "idx_email",
		})

	err := repo.Create(context.Background(), user)

	assert.True(t, utils.IsDuplicateError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(int64(7), "frida", "frida@example.com", "hash", "salt", "https://img.example.com/f.jpg", now)

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, profile_image, created_at FROM users WHERE user_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "frida", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, profile_image, created_at FROM users WHERE user_id").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByID(context.Background(), 999)

	assert.Nil(t, user)
	require.True(t, utils.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "User not found.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(userColumns).
		AddRow(int64(7), "frida", "frida@example.com", "hash", "salt", "", time.Now())

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, profile_image, created_at FROM users WHERE email").
		WithArgs("frida@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "frida@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := &models.User{ID: 7, Username: "frida", Email: "taken@example.com"}

	mock.ExpectExec("UPDATE users SET username").
		WillReturnError(&pq.Error{
			Code:       pq.ErrorCode(constants.PGErrorUniqueViolation),
			Constraint: "idx_username",
		})

	err := repo.Update(context.Background(), user)

	assert.True(t, utils.IsDuplicateError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ChangePassword(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("newhash", "newsalt", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.ChangePassword(context.Background(), 7, "newhash", "newsalt"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_Cascade(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	// The cascade runs inside one transaction: join rows, collections,
	// reviews, sessions, then the user row.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM home_favorites").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM favorite_collections WHERE user_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM reviews WHERE user_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users WHERE user_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFoundRollsBack(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM home_favorites").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM favorite_collections WHERE user_id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM reviews WHERE user_id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM users WHERE user_id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 999)

	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Exists(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
