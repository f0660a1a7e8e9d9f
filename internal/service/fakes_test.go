package service

import (
	"context"

	"github.com/homenest/HomeNest_Backend/internal/models"
)

// Function-field fakes for the repository interfaces. Each test sets only
// the calls it expects; an unset call panics, which surfaces unexpected
// repository traffic immediately.

type fakeUserRepo struct {
	CreateFn         func(ctx context.Context, user *models.User) error
	GetByIDFn        func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*models.User, error)
	GetByUsernameFn  func(ctx context.Context, username string) (*models.User, error)
	UpdateFn         func(ctx context.Context, user *models.User) error
	ChangePasswordFn func(ctx context.Context, userID int64, passwordHash, salt string) error
	DeleteFn         func(ctx context.Context, id int64) error
	ExistsFn         func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.GetByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	return f.UpdateFn(ctx, user)
}
func (f *fakeUserRepo) ChangePassword(ctx context.Context, userID int64, passwordHash, salt string) error {
	return f.ChangePasswordFn(ctx, userID, passwordHash, salt)
}
func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.ExistsFn(ctx, id)
}

type fakeHomeRepo struct {
	CreateFn    func(ctx context.Context, home *models.Home) error
	GetByIDFn   func(ctx context.Context, id int64) (*models.Home, error)
	ListFn      func(ctx context.Context) ([]*models.Home, error)
	ListByIDsFn func(ctx context.Context, ids []int64) ([]*models.Home, error)
	UpdateFn    func(ctx context.Context, home *models.Home) error
	DeleteFn    func(ctx context.Context, id int64) error
	ExistsFn    func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeHomeRepo) Create(ctx context.Context, home *models.Home) error {
	return f.CreateFn(ctx, home)
}
func (f *fakeHomeRepo) GetByID(ctx context.Context, id int64) (*models.Home, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeHomeRepo) List(ctx context.Context) ([]*models.Home, error) {
	return f.ListFn(ctx)
}
func (f *fakeHomeRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Home, error) {
	return f.ListByIDsFn(ctx, ids)
}
func (f *fakeHomeRepo) Update(ctx context.Context, home *models.Home) error {
	return f.UpdateFn(ctx, home)
}
func (f *fakeHomeRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeHomeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.ExistsFn(ctx, id)
}

type fakeReviewRepo struct {
	CreateFn       func(ctx context.Context, review *models.Review) error
	GetByIDFn      func(ctx context.Context, id int64) (*models.Review, error)
	ListByHomeIDFn func(ctx context.Context, homeID int64) ([]*models.ReviewWithAuthor, error)
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*models.Review, error)
	UpdateFn       func(ctx context.Context, review *models.Review) error
	DeleteFn       func(ctx context.Context, id int64) error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return f.CreateFn(ctx, review)
}
func (f *fakeReviewRepo) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeReviewRepo) ListByHomeID(ctx context.Context, homeID int64) ([]*models.ReviewWithAuthor, error) {
	return f.ListByHomeIDFn(ctx, homeID)
}
func (f *fakeReviewRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Review, error) {
	return f.ListByUserIDFn(ctx, userID)
}
func (f *fakeReviewRepo) Update(ctx context.Context, review *models.Review) error {
	return f.UpdateFn(ctx, review)
}
func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeFavoriteRepo struct {
	CreateFn       func(ctx context.Context, collection *models.FavoriteCollection, homeID int64) error
	GetByIDFn      func(ctx context.Context, id int64) (*models.FavoriteCollection, error)
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error)
	AddHomeFn      func(ctx context.Context, collectionID, homeID int64) error
	DeleteFn       func(ctx context.Context, id int64) error
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, collection *models.FavoriteCollection, homeID int64) error {
	return f.CreateFn(ctx, collection, homeID)
}
func (f *fakeFavoriteRepo) GetByID(ctx context.Context, id int64) (*models.FavoriteCollection, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeFavoriteRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error) {
	return f.ListByUserIDFn(ctx, userID)
}
func (f *fakeFavoriteRepo) AddHome(ctx context.Context, collectionID, homeID int64) error {
	return f.AddHomeFn(ctx, collectionID, homeID)
}
func (f *fakeFavoriteRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}
