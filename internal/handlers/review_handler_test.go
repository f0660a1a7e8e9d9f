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

func newReviewHandlerTest() (*ReviewHandler, *fakeReviewService) {
	utils.InitValidator()
	reviewService := &fakeReviewService{}
	return NewReviewHandler(reviewService), reviewService
}

func TestReviewHandler_Create(t *testing.T) {
	handler, reviewService := newReviewHandlerTest()

	reviewService.CreateFn = func(ctx context.Context, homeID, userID int64, create *models.ReviewCreate) (*models.Review, error) {
		return &models.Review{ID: 11, Rating: create.Rating, Review: create.Review, HomeID: homeID, UserID: userID}, nil
	}

	req := jsonRequest(t, http.MethodPost, "/homes/3/reviews", map[string]interface{}{
		"rating": 5,
		"review": "Lovely place, would stay again.",
	}, map[string]string{"home_id": "3"}, 7)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// The author comes from the session, never the body.
	assert.Equal(t, float64(7), body["user_id"])
	assert.Equal(t, float64(3), body["home_id"])
}

func TestReviewHandler_Create_NoSession(t *testing.T) {
	handler, _ := newReviewHandlerTest()

	req := jsonRequest(t, http.MethodPost, "/homes/3/reviews", map[string]interface{}{
		"rating": 5,
		"review": "Lovely place.",
	}, map[string]string{"home_id": "3"}, 0)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, constants.MsgAccessDenied, errorBody(t, rec)["error"])
}

func TestReviewHandler_Create_BadRating(t *testing.T) {
	handler, _ := newReviewHandlerTest()

	req := jsonRequest(t, http.MethodPost, "/homes/3/reviews", map[string]interface{}{
		"rating": 6,
		"review": "Lovely place.",
	}, map[string]string{"home_id": "3"}, 7)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewHandler_Update(t *testing.T) {
	handler, reviewService := newReviewHandlerTest()

	reviewService.UpdateFn = func(ctx context.Context, id, userID int64, update *models.ReviewUpdate) (*models.Review, error) {
		return &models.Review{ID: id, Rating: update.Rating, UserID: userID}, nil
	}

	req := jsonRequest(t, http.MethodPatch, "/reviews/11", map[string]interface{}{
		"rating": 3,
	}, map[string]string{"id": "11"}, 7)
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestReviewHandler_Update_ForeignAuthor(t *testing.T) {
	handler, reviewService := newReviewHandlerTest()

	reviewService.UpdateFn = func(ctx context.Context, id, userID int64, update *models.ReviewUpdate) (*models.Review, error) {
		return nil, utils.NewNotFoundError(constants.MsgReviewNotFound)
	}

	req := jsonRequest(t, http.MethodPatch, "/reviews/11", map[string]interface{}{
		"rating": 1,
	}, map[string]string{"id": "11"}, 7)
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.MsgReviewNotFound, errorBody(t, rec)["error"])
}

func TestReviewHandler_Delete(t *testing.T) {
	handler, reviewService := newReviewHandlerTest()

	var deleted int64
	reviewService.DeleteFn = func(ctx context.Context, id, userID int64) error {
		deleted = id
		return nil
	}

	req := jsonRequest(t, http.MethodDelete, "/reviews/11", nil, map[string]string{"id": "11"}, 7)
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(11), deleted)
}
