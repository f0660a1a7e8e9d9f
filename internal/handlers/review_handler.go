package handlers

import (
	"net/http"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// ReviewHandler serves the review endpoints. The author always comes from
// the session, never from the request body.
type ReviewHandler struct {
	reviewService ReviewServiceInterface
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create handles POST /homes/{home_id}/reviews. Responds 201 with the
// stored review.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	homeID, err := parseIDParam(r, "home_id")
	if err != nil {
		handleError(w, err)
		return
	}

	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.AccessDenied(w, constants.MsgAccessDenied)
		return
	}

	create := &models.ReviewCreate{}
	if err := utils.DecodeAndValidate(r, create); err != nil {
		handleError(w, err)
		return
	}

	review, err := h.reviewService.Create(r.Context(), homeID, userID, create)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, review)
}

// Update handles PATCH /reviews/{id}, scoped to the author. Responds 202
// with the updated review.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.AccessDenied(w, constants.MsgAccessDenied)
		return
	}

	update := &models.ReviewUpdate{}
	if err := utils.DecodeAndValidate(r, update); err != nil {
		handleError(w, err)
		return
	}

	review, err := h.reviewService.Update(r.Context(), id, userID, update)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusAccepted, review)
}

// Delete handles DELETE /reviews/{id}, scoped to the author. Responds 204.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.AccessDenied(w, constants.MsgAccessDenied)
		return
	}

	if err := h.reviewService.Delete(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	utils.NoContent(w)
}
