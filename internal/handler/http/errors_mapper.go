package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrMissingCredentials: http.StatusUnprocessableEntity,
	service.ErrWrongPassword:      http.StatusUnauthorized,
	service.ErrInvalidRecipeData:  http.StatusUnprocessableEntity,

	store.ErrUsernameTaken:     http.StatusUnprocessableEntity,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrNoSessionWasFound: http.StatusUnauthorized,
	store.ErrRecipeNotSaved:    http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message for every classified
// error. Anything not listed here surfaces as a generic 500 message so
// storage detail never leaks to clients.
var errorMessageMap = map[error]string{
	service.ErrMissingCredentials: "Missing username or password",
	service.ErrWrongPassword:      "Invalid credentials",
	service.ErrInvalidRecipeData:  "Invalid recipe data",

	store.ErrUsernameTaken:     "Username already exists",
	store.ErrNoUserWasFound:    "User not found",
	store.ErrNoSessionWasFound: "Unauthorized",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError maps err to its HTTP status and client-facing message and
// writes a {"message": "..."} body.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, statusFromError(err))
}
