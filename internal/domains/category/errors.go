package category

import (
	"errors"
	"net/http"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrParentNotFound   = errors.New("parent category not found")
	ErrCircularParent   = errors.New("category cannot be its own ancestor")
	ErrNotOwner         = errors.New("category belongs to another user")
	ErrValidation       = errors.New("category validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrParentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCircularParent), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
