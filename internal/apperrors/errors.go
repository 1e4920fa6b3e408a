package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the request is well formed but conflicts with the current
// state of the ledger (category type mismatch, insufficient funds).
var ErrConflict = errors.New("conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but may not perform the action.
var ErrForbidden = errors.New("forbidden")

// NewNotFoundError wraps ErrNotFound with the resource name and lookup key.
func NewNotFoundError(resource, key string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, resource, key)
}

// NewValidationError wraps ErrValidation with a reason.
func NewValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// NewConflictError wraps ErrConflict with a reason.
func NewConflictError(reason string) error {
	return fmt.Errorf("%w: %s", ErrConflict, reason)
}

// AppError carries an HTTP status code alongside an error.
// It is used where a layer already knows how the failure should surface.
type AppError struct {
	Code    int    `json:"status"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates a 400 AppError wrapping ErrValidation.
func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewUnauthorizedError creates a 401 AppError wrapping ErrUnauthorized.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

// StatusCode maps an error onto the HTTP status the API reports for it.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.As(err, &appErr):
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
