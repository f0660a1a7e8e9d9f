package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// ErrNoSession is returned when a request carries no resolvable session.
var ErrNoSession = errors.New("no active session")

// SessionManager issues, resolves, and revokes the cookie-backed sessions.
// The browser holds only an opaque UUID; the authoritative state is the
// sessions table, so revocation is immediate and validity is binary.
type SessionManager struct {
	sessions     repository.SessionRepository
	ttl          time.Duration
	cookieSecure bool
}

// NewSessionManager creates a SessionManager over the given session store.
func NewSessionManager(sessions repository.SessionRepository, ttl time.Duration, cookieSecure bool) *SessionManager {
	return &SessionManager{
		sessions:     sessions,
		ttl:          ttl,
		cookieSecure: cookieSecure,
	}
}

// Establish creates a session bound to userID and sets the session cookie.
func (m *SessionManager) Establish(ctx context.Context, w http.ResponseWriter, userID int64) (*models.Session, error) {
	session := &models.Session{
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.ttl),
		CreatedAt: time.Now(),
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.ID,
		Path:     constants.SessionCookiePath,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().
		Str(constants.ColumnSessionID, session.ID).
		Int64(constants.ColumnUserID, userID).
		Msg("Session established")

	return session, nil
}

// Resolve looks up the session referenced by the request cookie. A missing
// cookie, an unknown ID, or an expired row all resolve to ErrNoSession.
func (m *SessionManager) Resolve(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	session, err := m.sessions.GetByID(r.Context(), cookie.Value)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrNoSession
	}

	return session, nil
}

// Clear deletes the session row and expires the cookie. Returns ErrNoSession
// when the request carried no session to clear.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := m.Resolve(r)
	if err != nil {
		return err
	}

	if err := m.sessions.Delete(r.Context(), session.ID); err != nil && !utils.IsNotFoundError(err) {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().
		Str(constants.ColumnSessionID, session.ID).
		Int64(constants.ColumnUserID, session.UserID).
		Msg("Session cleared")

	return nil
}

// RequireSession is the access gate for protected routes. It resolves the
// session cookie and stores the user and session IDs on the request context;
// an unauthenticated request is answered with 422 Access Denied, which keeps
// "not logged in" distinct from "not found."
func RequireSession(m *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := m.Resolve(r)
			if err != nil {
				if errors.Is(err, ErrNoSession) {
					utils.AccessDenied(w, constants.MsgAccessDenied)
					return
				}
				utils.InternalServerError(w, err)
				return
			}

			ctx := WithUserID(r.Context(), session.UserID)
			ctx = WithSessionID(ctx, session.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
