package handlers

import (
	"net/http"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// FavoriteHandler serves the favorite collection endpoints.
type FavoriteHandler struct {
	favoriteService FavoriteServiceInterface
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService FavoriteServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// ListByUser handles GET /users/{id}/favorites: the user's collections,
// each with its homes view.
func (h *FavoriteHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	favorites, err := h.favoriteService.ListByUser(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, favorites)
}

// AddFavorite handles POST /{user_id}/add_favorite. The body names the new
// collection and may reference a home to link immediately; a bad home
// reference fails before anything is inserted. Responds 201 with the
// collection.
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		handleError(w, err)
		return
	}

	create := &models.FavoriteCreate{}
	if err := utils.DecodeAndValidate(r, create); err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.favoriteService.AddFavorite(r.Context(), userID, create)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, collection)
}

// AddHome handles POST /favorites/{collection_id}/homes: links a home into
// an existing owned collection. Responds 201.
func (h *FavoriteHandler) AddHome(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.AccessDenied(w, constants.MsgAccessDenied)
		return
	}

	collectionID, err := parseIDParam(r, "collection_id")
	if err != nil {
		handleError(w, err)
		return
	}

	link := &models.HomeFavorite{}
	if err := utils.DecodeJSON(r, link); err != nil {
		handleError(w, err)
		return
	}
	if link.HomeID <= 0 {
		handleError(w, utils.NewValidationError(constants.ColumnHomeID, "Must be a positive integer"))
		return
	}

	if err := h.favoriteService.AddHome(r.Context(), userID, collectionID, link.HomeID); err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"favorite_collection_id": collectionID,
		"home_id":                link.HomeID,
	})
}

// RemoveFavorite handles DELETE /{user_id}/remove_favorite/{favorite_id}.
// A collection owned by someone else reads as absent. Responds 200 with the
// removal confirmation.
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		handleError(w, err)
		return
	}

	favoriteID, err := parseIDParam(r, "favorite_id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.favoriteService.Remove(r.Context(), userID, favoriteID); err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"success": constants.MsgFavoriteRemoved})
}
