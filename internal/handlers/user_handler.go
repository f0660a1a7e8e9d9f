package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/imageupload"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// UserHandler serves the user resource endpoints.
type UserHandler struct {
	userService UserServiceInterface
	uploader    imageupload.Uploader
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService UserServiceInterface, uploader imageupload.Uploader) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploader:    uploader,
	}
}

// Get handles GET /users/{id}: the profile projection with the user's
// reviews and favorite collections, one level deep.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, profile)
}

// Update handles PATCH /users/{id}. The body is a multipart form so a new
// profile_image can ride along with any subset of username, email, and
// password; a JSON body without an image works as well. Each submitted field
// is re-validated against the same bounds as signup. Responds 202 with the
// sanitized user.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	update := &models.UserUpdate{}
	profileImage := ""

	if isMultipart(r) {
		if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
			utils.BadRequest(w, "Unable to parse the submitted form", nil)
			return
		}

		update.Username = r.FormValue(constants.ColumnUsername)
		update.Email = r.FormValue(constants.ColumnEmail)
		update.Password = r.FormValue("password")

		if err := utils.ValidateStruct(update); err != nil {
			handleError(w, err)
			return
		}

		file, header, err := formFile(r, constants.ProfileImageField)
		if err != nil {
			handleError(w, err)
			return
		}
		if file != nil {
			defer func() {
				if closeErr := file.Close(); closeErr != nil {
					log.Error().Err(closeErr).Msg("failed to close uploaded file")
				}
			}()

			url, err := h.uploader.Upload(r.Context(), header.Filename, file)
			if err != nil {
				handleError(w, err)
				return
			}
			profileImage = url
		}
	} else {
		if err := utils.DecodeAndValidate(r, update); err != nil {
			handleError(w, err)
			return
		}
	}

	user, err := h.userService.Update(r.Context(), id, update, profileImage)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusAccepted, user)
}

// Delete handles DELETE /users/{id}: the account and everything owned by it
// go in one transaction. Responds 204.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	utils.NoContent(w)
}
