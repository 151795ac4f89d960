package handler

import (
	"errors"
	"net/http"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/logger"
	"github.com/raimannma/deadlock-assets-api/internal/registry"
)

// User-facing error messages for service errors
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInternalServerError = "Something went wrong"

	ErrMsgHeroNotFound  = "Hero not found"
	ErrMsgItemNotFound  = "Item not found"
	ErrMsgBuildNotFound = "Client version not found"
	ErrMsgNoBuilds      = "No game builds are loaded yet. Please try again later."

	ErrMsgInvalidRequest       = "Invalid request. Please check your inputs."
	ErrMsgInvalidHeroID        = "Hero id must be a positive integer"
	ErrMsgInvalidClientVersion = "client_version must be a positive integer"
	ErrMsgInvalidItemType      = "Item type must be one of: weapon, ability, upgrade"
	ErrMsgInvalidItemSlotType  = "Item slot type must be one of: weapon_mod, armor, tech"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages a client can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrHeroNotFound):
		return http.StatusNotFound, ErrMsgHeroNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrBuildNotFound):
		return http.StatusNotFound, ErrMsgBuildNotFound
	case errors.Is(err, registry.ErrNoBuilds):
		return http.StatusServiceUnavailable, ErrMsgNoBuilds
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	default:
		return http.StatusInternalServerError, ErrMsgInternalServerError
	}
}

// respondServiceError logs a failed operation and writes the mapped error
// response. Expected lookup misses log at debug so they do not flood the log.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, message := mapServiceErrorToUserMessage(err)
	if status == http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}

	respondError(w, status, message)
}
