package hero

import (
	"errors"
	"net/http"
)

var ErrValidation = errors.New("hero settings validation failed")

func GetHTTPStatusCode(err error) int {
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
