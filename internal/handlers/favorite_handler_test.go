package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

func newFavoriteHandlerTest() (*FavoriteHandler, *fakeFavoriteService) {
	utils.InitValidator()
	favoriteService := &fakeFavoriteService{}
	return NewFavoriteHandler(favoriteService), favoriteService
}

func TestFavoriteHandler_ListByUser(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	favoriteService.ListByUserFn = func(ctx context.Context, userID int64) ([]*models.FavoriteSummary, error) {
		return []*models.FavoriteSummary{
			{ID: 5, Name: "Summer trip", UserID: userID, Homes: []*models.Home{{ID: 3, Title: "Seaside cabin"}}},
		}, nil
	}

	req := jsonRequest(t, http.MethodGet, "/users/7/favorites", nil, map[string]string{"id": "7"}, 7)
	rec := httptest.NewRecorder()

	handler.ListByUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Summer trip", body[0]["name"])
}

func TestFavoriteHandler_AddFavorite(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	favoriteService.AddFavoriteFn = func(ctx context.Context, userID int64, create *models.FavoriteCreate) (*models.FavoriteCollection, error) {
		return &models.FavoriteCollection{ID: 5, Name: create.Name, UserID: userID}, nil
	}

	req := jsonRequest(t, http.MethodPost, "/7/add_favorite", map[string]interface{}{
		"name":    "Summer trip",
		"home_id": 3,
	}, map[string]string{"user_id": "7"}, 7)
	rec := httptest.NewRecorder()

	handler.AddFavorite(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Summer trip", body["name"])
}

func TestFavoriteHandler_AddFavorite_UnknownHome(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	favoriteService.AddFavoriteFn = func(ctx context.Context, userID int64, create *models.FavoriteCreate) (*models.FavoriteCollection, error) {
		return nil, utils.NewValidationError(constants.ColumnHomeID, "home_id does not reference an existing home")
	}

	req := jsonRequest(t, http.MethodPost, "/7/add_favorite", map[string]interface{}{
		"name":    "Summer trip",
		"home_id": 999,
	}, map[string]string{"user_id": "7"}, 7)
	rec := httptest.NewRecorder()

	handler.AddFavorite(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoriteHandler_AddFavorite_ShortName(t *testing.T) {
	handler, _ := newFavoriteHandlerTest()

	req := jsonRequest(t, http.MethodPost, "/7/add_favorite", map[string]interface{}{
		"name": "S",
	}, map[string]string{"user_id": "7"}, 7)
	rec := httptest.NewRecorder()

	handler.AddFavorite(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoriteHandler_AddHome(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	var linked [3]int64
	favoriteService.AddHomeFn = func(ctx context.Context, userID, collectionID, homeID int64) error {
		linked = [3]int64{userID, collectionID, homeID}
		return nil
	}

	req := jsonRequest(t, http.MethodPost, "/favorites/5/homes", map[string]interface{}{
		"home_id": 3,
	}, map[string]string{"collection_id": "5"}, 7)
	rec := httptest.NewRecorder()

	handler.AddHome(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, [3]int64{7, 5, 3}, linked)
}

func TestFavoriteHandler_AddHome_MissingHomeID(t *testing.T) {
	handler, _ := newFavoriteHandlerTest()

	req := jsonRequest(t, http.MethodPost, "/favorites/5/homes", map[string]interface{}{}, map[string]string{"collection_id": "5"}, 7)
	rec := httptest.NewRecorder()

	handler.AddHome(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoriteHandler_AddHome_Duplicate(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	favoriteService.AddHomeFn = func(ctx context.Context, userID, collectionID, homeID int64) error {
		return utils.NewDuplicateError("Favorite", constants.ColumnHomeID, homeID)
	}

	req := jsonRequest(t, http.MethodPost, "/favorites/5/homes", map[string]interface{}{
		"home_id": 3,
	}, map[string]string{"collection_id": "5"}, 7)
	rec := httptest.NewRecorder()

	handler.AddHome(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFavoriteHandler_RemoveFavorite(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	var removed [2]int64
	favoriteService.RemoveFn = func(ctx context.Context, userID, collectionID int64) error {
		removed = [2]int64{userID, collectionID}
		return nil
	}

	req := jsonRequest(t, http.MethodDelete, "/7/remove_favorite/5", nil,
		map[string]string{"user_id": "7", "favorite_id": "5"}, 7)
	rec := httptest.NewRecorder()

	handler.RemoveFavorite(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, [2]int64{7, 5}, removed)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, constants.MsgFavoriteRemoved, body["success"])
}

func TestFavoriteHandler_RemoveFavorite_Foreign(t *testing.T) {
	handler, favoriteService := newFavoriteHandlerTest()

	favoriteService.RemoveFn = func(ctx context.Context, userID, collectionID int64) error {
		return utils.NewNotFoundError(constants.MsgFavoriteNotFound)
	}

	req := jsonRequest(t, http.MethodDelete, "/7/remove_favorite/5", nil,
		map[string]string{"user_id": "7", "favorite_id": "5"}, 7)
	rec := httptest.NewRecorder()

	handler.RemoveFavorite(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.MsgFavoriteNotFound, errorBody(t, rec)["error"])
}
