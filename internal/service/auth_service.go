// Package service implements the business rules between handlers and
// repositories: uniqueness and referential existence checks, ownership
// scoping, credential handling, and the assembly of response projections.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// AuthService handles account registration and credential verification.
// Session issuance stays in the handler via the session manager; this
// service only decides whether the credentials are acceptable.
type AuthService struct {
	userRepo    repository.UserRepository
	passwordCfg *auth.PasswordConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, passwordCfg *auth.PasswordConfig) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		passwordCfg: passwordCfg,
	}
}

// SignUp registers a new account. The plaintext password is validated for
// length before hashing and never stored; profileImage is the already-hosted
// URL, or empty when no image was uploaded.
func (s *AuthService) SignUp(ctx context.Context, signup *models.UserSignup, profileImage string) (*models.User, error) {
	if err := utils.ValidatePassword(signup.Password); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByUsername(ctx, signup.Username); err == nil && existing != nil {
		return nil, utils.NewDuplicateError("User", constants.ColumnUsername, signup.Username)
	} else if err != nil && !utils.IsNotFoundError(err) {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, signup.Email); err == nil && existing != nil {
		return nil, utils.NewDuplicateError("User", constants.ColumnEmail, signup.Email)
	} else if err != nil && !utils.IsNotFoundError(err) {
		return nil, err
	}

	passwordHash, salt, err := auth.HashPassword(signup.Password, s.passwordCfg)
	if err != nil {
		return nil, utils.NewInternalServerError(err)
	}

	user := models.NewUser(signup.Username, signup.Email, profileImage)
	user.PasswordHash = passwordHash
	user.Salt = salt

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().
		Int64(constants.ColumnUserID, user.ID).
		Str(constants.ColumnUsername, user.Username).
		Msg("User signed up")

	return user, nil
}

// Login verifies the email and password pair. Every failure path returns the
// same generic invalid-login error so the response reveals nothing about
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, login *models.UserLogin) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, login.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, utils.NewInvalidLoginError()
		}
		return nil, err
	}

	match, err := auth.VerifyPassword(login.Password, user.PasswordHash, user.Salt, s.passwordCfg)
	if err != nil {
		return nil, utils.NewInternalServerError(err)
	}
	if !match {
		return nil, utils.NewInvalidLoginError()
	}

	log.Info().
		Int64(constants.ColumnUserID, user.ID).
		Msg("User logged in")

	return user, nil
}

// newTimestamps returns matching created/updated times for a fresh row.
func newTimestamps() (time.Time, time.Time) {
	now := time.Now()
	return now, now
}
