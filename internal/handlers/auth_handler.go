package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/imageupload"
	"github.com/homenest/HomeNest_Backend/internal/models"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// AuthHandler serves signup, login, logout, and the current-user endpoint.
type AuthHandler struct {
	authService AuthServiceInterface
	userService UserServiceInterface
	sessions    *auth.SessionManager
	uploader    imageupload.Uploader
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService AuthServiceInterface,
	userService UserServiceInterface,
	sessions *auth.SessionManager,
	uploader imageupload.Uploader,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		sessions:    sessions,
		uploader:    uploader,
	}
}

// SignUp handles POST /signup. The body is a multipart form with username,
// email, password, and an optional profile_image file; a plain JSON body
// without an image is accepted too. The image is uploaded before any
// database write, so an upload failure aborts the signup cleanly. Responds
// 201 with the sanitized user and sets the session cookie.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	signup := &models.UserSignup{}
	profileImage := ""

	if isMultipart(r) {
		if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
			utils.BadRequest(w, "Unable to parse the submitted form", nil)
			return
		}

		signup.Username = r.FormValue(constants.ColumnUsername)
		signup.Email = r.FormValue(constants.ColumnEmail)
		signup.Password = r.FormValue("password")

		if err := utils.ValidateStruct(signup); err != nil {
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
		if err := utils.DecodeAndValidate(r, signup); err != nil {
			handleError(w, err)
			return
		}
	}

	user, err := h.authService.SignUp(r.Context(), signup, profileImage)
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.sessions.Establish(r.Context(), w, user.ID); err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, user.Sanitize())
}

// Login handles POST /login. Accepts a JSON body or a classic form post.
// Any credential failure produces the same generic 422 Invalid Login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	login := &models.UserLogin{}

	if isMultipart(r) || r.Header.Get("Content-Type") == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			utils.BadRequest(w, "Unable to parse the submitted form", nil)
			return
		}
		login.Email = r.FormValue(constants.ColumnEmail)
		login.Password = r.FormValue("password")

		if err := utils.ValidateStruct(login); err != nil {
			handleError(w, err)
			return
		}
	} else {
		if err := utils.DecodeAndValidate(r, login); err != nil {
			handleError(w, err)
			return
		}
	}

	user, err := h.authService.Login(r.Context(), login)
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.sessions.Establish(r.Context(), w, user.ID); err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, user.Sanitize())
}

// Logout handles DELETE /logout. Deletes the session row and expires the
// cookie; without an active session the answer is 404.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			utils.NotFound(w, constants.MsgNotLoggedIn)
			return
		}
		handleError(w, err)
		return
	}

	utils.NoContent(w)
}

// Me handles GET /me behind the session gate and returns the sanitized
// current user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.AccessDenied(w, constants.MsgAccessDenied)
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
