package handlers

import (
	"net/http"

	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// HomeHandler serves the home listing endpoints.
type HomeHandler struct {
	homeService HomeServiceInterface
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(homeService HomeServiceInterface) *HomeHandler {
	return &HomeHandler{
		homeService: homeService,
	}
}

// List handles GET /homes.
func (h *HomeHandler) List(w http.ResponseWriter, r *http.Request) {
	homes, err := h.homeService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, homes)
}

// Get handles GET /homes/{id}: the listing with its reviews.
func (h *HomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	detail, err := h.homeService.GetDetail(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, detail)
}

// Create handles POST /homes. Responds 201 with the stored listing.
func (h *HomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	home := &models.Home{}
	if err := utils.DecodeAndValidate(r, home); err != nil {
		handleError(w, err)
		return
	}

	created, err := h.homeService.Create(r.Context(), home)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, created)
}

// Update handles PATCH /homes/{id} with the allow-listed update struct.
// Responds 202 with the updated listing.
func (h *HomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	update := &models.HomeUpdate{}
	if err := utils.DecodeAndValidate(r, update); err != nil {
		handleError(w, err)
		return
	}

	home, err := h.homeService.Update(r.Context(), id, update)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusAccepted, home)
}

// Delete handles DELETE /homes/{id}. Responds 204.
func (h *HomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.homeService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	utils.NoContent(w)
}
