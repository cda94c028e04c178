package http

import (
	"errors"
	"net/http"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/internal/utils"
	"github.com/medinventory/medinv/models"
)

// writeError maps a service-layer error onto the wire error shape. Every
// error response carries a JSON [models.APIError] body, so clients never
// need to scrape plain-text bodies.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with unexpected error")
		// Internal details stay in the log.
		writeAPIError(w, status, http.StatusText(status))
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")
	writeAPIError(w, status, err.Error())
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.APIError{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    models.MessageList{message},
	}, status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, service.ErrInvalidEquipment):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrWrongCredentials),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNoUserWasFound),
		errors.Is(err, store.ErrEquipmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
