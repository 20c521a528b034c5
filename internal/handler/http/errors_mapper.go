package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is ordered: specific errors come before the generic ones
// that may wrap them, so the first match also gives the message to show.
var errorStatusMap = []errorStatus{
	{validators.ErrPasswordMismatch, http.StatusBadRequest},
	{validators.ErrPasswordTooShort, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrInvalidPseudo, http.StatusBadRequest},
	{validators.ErrInvalidName, http.StatusBadRequest},
	{validators.ErrEmptyPassword, http.StatusBadRequest},
	{validators.ErrInvalidColID, http.StatusBadRequest},
	{validators.ErrInvalidDate, http.StatusBadRequest},
	{validators.ErrInvalidMetric, http.StatusBadRequest},
	{validators.ErrNoteTooLong, http.StatusBadRequest},
	{compare.ErrUnknownFilter, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrPseudoAlreadyExists, http.StatusConflict},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrAlreadyPinned, http.StatusConflict},
	{store.ErrAlreadyFavorite, http.StatusConflict},
	{store.ErrSelfFavorite, http.StatusBadRequest},

	{store.ErrProfileNotFound, http.StatusNotFound},
	{store.ErrColNotFound, http.StatusNotFound},
	{store.ErrAscensionNotFound, http.StatusNotFound},
	{store.ErrPinNotFound, http.StatusNotFound},
	{store.ErrFavoriteNotFound, http.StatusNotFound},

	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrPasswordHashingFailed, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status for err and the message to send.
// Client errors carry the text of the matched sentinel; server errors only
// the status text.
func statusFromError(err error) (int, string) {
	for _, target := range errorStatusMap {
		if errors.Is(err, target.err) {
			if target.status >= http.StatusInternalServerError {
				return target.status, http.StatusText(target.status)
			}
			return target.status, target.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err and writes the mapped JSON error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
