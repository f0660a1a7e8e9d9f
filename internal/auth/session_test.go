package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// fakeSessionRepo keeps sessions in a map, mirroring the store's contract:
// unknown IDs come back as not-found errors.
type fakeSessionRepo struct {
	sessions map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, utils.NewNotFoundError("Session not found.")
	}
	return session, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return utils.NewNotFoundError("Session not found.")
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	for id, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var n int64
	for id, session := range f.sessions {
		if session.IsExpired() {
			delete(f.sessions, id)
			n++
		}
	}
	return n, nil
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("response carries no %s cookie", constants.SessionCookieName)
	return nil
}

func TestSessionManager_Establish(t *testing.T) {
	repo := newFakeSessionRepo()
	manager := NewSessionManager(repo, time.Hour, false)

	rec := httptest.NewRecorder()
	session, err := manager.Establish(context.Background(), rec, 7)

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, int64(7), session.UserID)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, session.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSessionManager_Resolve(t *testing.T) {
	repo := newFakeSessionRepo()
	manager := NewSessionManager(repo, time.Hour, false)

	rec := httptest.NewRecorder()
	established, err := manager.Establish(context.Background(), rec, 7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(sessionCookie(t, rec))

	session, err := manager.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, established.ID, session.ID)
	assert.Equal(t, int64(7), session.UserID)
}

func TestSessionManager_Resolve_NoCookie(t *testing.T) {
	manager := NewSessionManager(newFakeSessionRepo(), time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)

	session, err := manager.Resolve(req)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionManager_Resolve_UnknownID(t *testing.T) {
	manager := NewSessionManager(newFakeSessionRepo(), time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: uuid.NewString()})

	session, err := manager.Resolve(req)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionManager_Resolve_Expired(t *testing.T) {
	repo := newFakeSessionRepo()
	manager := NewSessionManager(repo, time.Hour, false)

	expired := &models.Session{
		UserID:    7,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), expired))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: expired.ID})

	session, err := manager.Resolve(req)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionManager_Clear(t *testing.T) {
	repo := newFakeSessionRepo()
	manager := NewSessionManager(repo, time.Hour, false)

	rec := httptest.NewRecorder()
	session, err := manager.Establish(context.Background(), rec, 7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
	req.AddCookie(sessionCookie(t, rec))

	clearRec := httptest.NewRecorder()
	require.NoError(t, manager.Clear(clearRec, req))

	// The row is gone and the replacement cookie expires immediately.
	_, err = repo.GetByID(context.Background(), session.ID)
	assert.True(t, utils.IsNotFoundError(err))

	cookie := sessionCookie(t, clearRec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestSessionManager_Clear_NoSession(t *testing.T) {
	manager := NewSessionManager(newFakeSessionRepo(), time.Hour, false)

	req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
	rec := httptest.NewRecorder()

	assert.ErrorIs(t, manager.Clear(rec, req), ErrNoSession)
}

func TestRequireSession_Denied(t *testing.T) {
	manager := NewSessionManager(newFakeSessionRepo(), time.Hour, false)

	handler := RequireSession(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, constants.MsgAccessDenied, body["error"])
}

func TestRequireSession_PassesIdentity(t *testing.T) {
	repo := newFakeSessionRepo()
	manager := NewSessionManager(repo, time.Hour, false)

	rec := httptest.NewRecorder()
	session, err := manager.Establish(context.Background(), rec, 7)
	require.NoError(t, err)

	var gotUserID int64
	var gotSessionID string
	handler := RequireSession(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r)
		gotSessionID, _ = GetSessionID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(sessionCookie(t, rec))

	gateRec := httptest.NewRecorder()
	handler.ServeHTTP(gateRec, req)

	assert.Equal(t, http.StatusOK, gateRec.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, session.ID, gotSessionID)
}
