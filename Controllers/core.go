package Controllers

import (
	"errors"
	"net/http"

	"github.com/YeyeJames/jiale15/Models"
)

// Controller carries the store handle into every handler; there is no
// package-level database.
type Controller struct {
	Store *Models.Store
}

func New(store *Models.Store) *Controller {
	return &Controller{Store: store}
}

// statusFor maps the store's error taxonomy onto HTTP codes. Every failure
// is surfaced in the response body; nothing is retried or swallowed.
func statusFor(err error) int {
	switch {
	case errors.Is(err, Models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, Models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, Models.ErrAuthentication):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
