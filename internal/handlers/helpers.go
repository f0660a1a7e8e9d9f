package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewValidationError(name, "Must be a positive integer")
	}
	return id, nil
}

// isMultipart reports whether the request carries a multipart form.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formFile returns the named multipart file, or (nil, nil, nil) when the
// field was simply not submitted.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, utils.NewBadRequestError("Unable to read the uploaded file")
	}
	return file, header, nil
}

// handleError writes the AppError translation of err.
func handleError(w http.ResponseWriter, err error) {
	utils.ErrorFromAppError(w, utils.ParseError(err))
}
