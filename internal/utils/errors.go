package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/homenest/HomeNest_Backend/internal/constants"
)

// Sentinel errors for the application's error taxonomy.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrAuthDenied     = errors.New("access denied")
	ErrBadRequest     = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation error")
	ErrDuplicate      = errors.New("duplicate resource")
	ErrInvalidLogin   = errors.New("invalid login")
)

// AppError is an application error carrying the HTTP status it maps to and a
// message safe to show to clients. DevInfo is logged, never serialized.
type AppError struct {
	Err        error
	StatusCode int
	Message    string
	DevInfo    string
	Field      string
	Details    map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying sentinel error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for a specific field.
// Validation failures are always client-caused and map to 400.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Field:      field,
	}
}

// NewValidationErrorWithDetails creates a validation error covering several fields.
func NewValidationErrorWithDetails(message string, details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    details,
	}
}

// NewBadRequestError creates a generic 400 error.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewNotFoundError creates a 404 error for an absent entity. The message is
// entity-specific ("User not found.") to match the API contract.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// NewAuthDeniedError creates a 422 error for a missing or invalid session.
// 422 is deliberate: it keeps "you are not logged in" distinct from 404 and
// from the 400 validation path.
func NewAuthDeniedError(message string) *AppError {
	if message == "" {
		message = constants.MsgAccessDenied
	}
	return &AppError{
		Err:        ErrAuthDenied,
		StatusCode: http.StatusUnprocessableEntity,
		Message:    message,
	}
}

// NewInvalidLoginError creates the generic login failure. The same error is
// returned for an unknown email and a wrong password so that login responses
// carry no account-enumeration signal.
func NewInvalidLoginError() *AppError {
	return &AppError{
		Err:        ErrInvalidLogin,
		StatusCode: http.StatusUnprocessableEntity,
		Message:    constants.MsgInvalidLogin,
	}
}

// NewDuplicateError creates a 409 error for a uniqueness violation.
func NewDuplicateError(resourceType, field string, value interface{}) *AppError {
	return &AppError{
		Err:        ErrDuplicate,
		StatusCode: http.StatusConflict,
		Message:    fmt.Sprintf("%s with %s '%v' already exists", resourceType, field, value),
		Field:      field,
	}
}

// NewInternalServerError creates a 500 error. The cause goes into DevInfo for
// logging; clients only ever see the generic message.
func NewInternalServerError(err error) *AppError {
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: http.StatusInternalServerError,
		Message:    constants.MsgInternalError,
		DevInfo:    devInfo,
	}
}

// ParseError translates any error into an AppError. Store and driver faults
// land on 500 rather than being folded into the 400 validation path.
func ParseError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError(err.Error())
	case errors.Is(err, ErrAuthDenied):
		return NewAuthDeniedError("")
	case errors.Is(err, ErrInvalidLogin):
		return NewInvalidLoginError()
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrValidation):
		return NewValidationError("", err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewDuplicateError("Resource", "", "")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constants.PGErrorUniqueViolation:
			field := ""
			if parts := strings.SplitN(pqErr.Constraint, "idx_", 2); len(parts) == 2 {
				field = parts[1]
			}
			return &AppError{
				Err:        ErrDuplicate,
				StatusCode: http.StatusConflict,
				Message:    "A resource with the same unique identifier already exists",
				DevInfo:    pqErr.Error(),
				Field:      field,
			}
		case constants.PGErrorForeignKeyViolation:
			return &AppError{
				Err:        ErrValidation,
				StatusCode: http.StatusBadRequest,
				Message:    "This operation references a row that does not exist",
				DevInfo:    pqErr.Error(),
			}
		case constants.PGErrorNotNullViolation:
			return &AppError{
				Err:        ErrValidation,
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("The %s field cannot be empty", pqErr.Column),
				DevInfo:    pqErr.Error(),
				Field:      pqErr.Column,
			}
		}
	}

	return NewInternalServerError(err)
}

// IsNotFoundError reports whether err maps to a 404.
func IsNotFoundError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is a uniqueness violation.
func IsDuplicateError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusConflict
	}
	return errors.Is(err, ErrDuplicate)
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// StatusCode returns the HTTP status an error maps to.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
