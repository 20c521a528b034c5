package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/go-chi/chi/v5"
)

// maxListLimit caps the "limit" query parameter.
const maxListLimit = 100

// currentUserID returns the id stored by the auth middleware.
func currentUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", service.ErrTokenIsExpiredOrInvalid
	}
	return userID, nil
}

// uuidParam returns the named path parameter, which must be a UUID.
func uuidParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if !utils.IsUUID(value) {
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, value)
	}
	return value, nil
}

// limitParam parses "limit": empty is 0, values above maxListLimit are capped.
func limitParam(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: limit=%q", ErrInvalidQueryParam, raw)
	}

	return min(limit, maxListLimit), nil
}

// decodeBody decodes the JSON body into v; failures wrap [ErrInvalidJSON].
func decodeBody(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
