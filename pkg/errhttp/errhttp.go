// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/curio/pkg/httpx"
	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	profiledomain "github.com/ghuser/curio/services/profile/domain"
	socialdomain "github.com/ghuser/curio/services/social/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, socialdomain.ErrAuthRequired):
		return http.StatusUnauthorized // 401
	case errors.Is(err, catalogdomain.ErrNotOwner):
		return http.StatusForbidden // 403
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrCollectionNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrInvalidItem),
		errors.Is(err, catalogdomain.ErrInvalidCollectionName),
		errors.Is(err, profiledomain.ErrInvalidUsername),
		errors.Is(err, socialdomain.ErrSelfFollow),
		errors.Is(err, socialdomain.ErrEmptyComment):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
