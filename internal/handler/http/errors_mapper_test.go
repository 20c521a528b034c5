package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation wrapped in generic invalid data keeps the specific message",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoteTooLong),
			wantStatus: http.StatusBadRequest,
			wantMsg:    validators.ErrNoteTooLong.Error(),
		},
		{
			name:       "unknown map filter",
			err:        fmt.Errorf("%w: %q", compare.ErrUnknownFilter, "visited"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    compare.ErrUnknownFilter.Error(),
		},
		{
			name:       "wrapped pseudo conflict",
			err:        fmt.Errorf("profile creation ended with error: %w", store.ErrPseudoAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    "Ce pseudo est déjà utilisé",
		},
		{
			name:       "retryable database error",
			err:        fmt.Errorf("%w: %w: %w", store.ErrTemporarilyUnavailable, store.ErrExecutingQuery, errors.New("too many connections")),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    http.StatusText(http.StatusServiceUnavailable),
		},
		{
			name:       "query failure hides driver text",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("syntax error at or near")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
		{
			name:       "expired token",
			err:        service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
