package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// Function-field fakes for the service interfaces, plus a map-backed session
// store so handler tests can run a real session manager.

type fakeAuthService struct {
	SignUpFn func(ctx context.Context, signup *models.UserSignup, profileImage string) (*models.User, error)
	LoginFn  func(ctx context.Context, login *models.UserLogin) (*models.User, error)
}

func (f *fakeAuthService) SignUp(ctx context.Context, signup *models.UserSignup, profileImage string) (*models.User, error) {
	return f.SignUpFn(ctx, signup, profileImage)
}
func (f *fakeAuthService) Login(ctx context.Context, login *models.UserLogin) (*models.User, error) {
	return f.LoginFn(ctx, login)
}

type fakeUserService struct {
	GetByIDFn    func(ctx context.Context, id int64) (*models.User, error)
	GetProfileFn func(ctx context.Context, id int64) (*models.UserProfile, error)
	UpdateFn     func(ctx context.Context, id int64, update *models.UserUpdate, profileImage string) (*models.User, error)
	DeleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeUserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUserService) GetProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	return f.GetProfileFn(ctx, id)
}
func (f *fakeUserService) Update(ctx context.Context, id int64, update *models.UserUpdate, profileImage string) (*models.User, error) {
	return f.UpdateFn(ctx, id, update, profileImage)
}
func (f *fakeUserService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeHomeService struct {
	ListFn      func(ctx context.Context) ([]*models.Home, error)
	GetDetailFn func(ctx context.Context, id int64) (*models.HomeDetail, error)
	CreateFn    func(ctx context.Context, home *models.Home) (*models.Home, error)
	UpdateFn    func(ctx context.Context, id int64, update *models.HomeUpdate) (*models.Home, error)
	DeleteFn    func(ctx context.Context, id int64) error
}

func (f *fakeHomeService) List(ctx context.Context) ([]*models.Home, error) {
	return f.ListFn(ctx)
}
func (f *fakeHomeService) GetDetail(ctx context.Context, id int64) (*models.HomeDetail, error) {
	return f.GetDetailFn(ctx, id)
}
func (f *fakeHomeService) Create(ctx context.Context, home *models.Home) (*models.Home, error) {
	return f.CreateFn(ctx, home)
}
func (f *fakeHomeService) Update(ctx context.Context, id int64, update *models.HomeUpdate) (*models.Home, error) {
	return f.UpdateFn(ctx, id, update)
}
func (f *fakeHomeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeReviewService struct {
	CreateFn func(ctx context.Context, homeID, userID int64, create *models.ReviewCreate) (*models.Review, error)
	UpdateFn func(ctx context.Context, id, userID int64, update *models.ReviewUpdate) (*models.Review, error)
	DeleteFn func(ctx context.Context, id, userID int64) error
}

func (f *fakeReviewService) Create(ctx context.Context, homeID, userID int64, create *models.ReviewCreate) (*models.Review, error) {
	return f.CreateFn(ctx, homeID, userID, create)
}
func (f *fakeReviewService) Update(ctx context.Context, id, userID int64, update *models.ReviewUpdate) (*models.Review, error) {
	return f.UpdateFn(ctx, id, userID, update)
}
func (f *fakeReviewService) Delete(ctx context.Context, id, userID int64) error {
	return f.DeleteFn(ctx, id, userID)
}

type fakeFavoriteService struct {
	ListByUserFn  func(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error)
	AddFavoriteFn func(ctx context.Context, userID int64, create *models.FavoriteCreate) (*models.FavoriteCollection, error)
	AddHomeFn     func(ctx context.Context, userID, collectionID, homeID int64) error
	RemoveFn      func(ctx context.Context, userID, collectionID int64) error
}

func (f *fakeFavoriteService) ListByUser(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error) {
	return f.ListByUserFn(ctx, userID)
}
func (f *fakeFavoriteService) AddFavorite(ctx context.Context, userID int64, create *models.FavoriteCreate) (*models.FavoriteCollection, error) {
	return f.AddFavoriteFn(ctx, userID, create)
}
func (f *fakeFavoriteService) AddHome(ctx context.Context, userID, collectionID, homeID int64) error {
	return f.AddHomeFn(ctx, userID, collectionID, homeID)
}
func (f *fakeFavoriteService) Remove(ctx context.Context, userID, collectionID int64) error {
	return f.RemoveFn(ctx, userID, collectionID)
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionStore) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, utils.NewNotFoundError("Session not found.")
	}
	return session, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return utils.NewNotFoundError("Session not found.")
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) DeleteByUserID(ctx context.Context, userID int64) error {
	for id, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func (f *fakeSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

// jsonRequest builds a request with a JSON body, optional chi URL params, and
// optionally the authenticated user on the context.
func jsonRequest(t *testing.T, method, target string, payload interface{}, params map[string]string, userID int64) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if userID > 0 {
		ctx = auth.WithUserID(ctx, userID)
	}
	if params != nil {
		rctx := chi.NewRouteContext()
		for name, value := range params {
			rctx.URLParams.Add(name, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

// errorBody decodes the error envelope from a response.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
