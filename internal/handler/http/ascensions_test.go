package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ascensionBody = `{"col_id":"` + galibierID + `","date_ascension":"2024-07-14T00:00:00Z","temps_secondes":3900}`

func TestLogAscension(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.ascensions.EXPECT().Log(gomock.Any(), viewerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, a models.Ascension) (models.Ascension, error) {
			a.ID = "0190f7a0-0000-7000-8000-0000000000ff"
			a.UserID = viewerID
			a.Validated = true
			return a, nil
		})

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/ascensions", ascensionBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeResponse[models.Ascension](t, rec)
	assert.Equal(t, galibierID, created.ColID)
	assert.Equal(t, viewerID, created.UserID)
	require.NotNil(t, created.DurationSeconds)
	assert.Equal(t, 3900, *created.DurationSeconds)
}

func TestLogAscension_ValidationMessageIsSpecific(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.ascensions.EXPECT().Log(gomock.Any(), viewerID, gomock.Any()).
		Return(models.Ascension{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidDate))

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/ascensions", ascensionBody, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validators.ErrInvalidDate.Error(), errorMessage(t, rec))
}

func TestDeleteAscension(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not owned or missing", err: store.ErrAscensionNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()
			m.ascensions.EXPECT().Delete(gomock.Any(), viewerID, galibierID).Return(tt.err)

			rec := doRequest(t, h.Init(), http.MethodDelete, "/api/ascensions/"+galibierID, "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListAscensions_Limit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit uint64
	}{
		{name: "default", query: "", wantLimit: 0},
		{name: "explicit", query: "?limit=5", wantLimit: 5},
		{name: "capped", query: "?limit=5000", wantLimit: maxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()
			m.ascensions.EXPECT().Recent(gomock.Any(), viewerID, tt.wantLimit).Return([]models.AscensionWithDetails{}, nil)

			rec := doRequest(t, h.Init(), http.MethodGet, "/api/ascensions"+tt.query, "", true)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestListAscensions_InvalidLimit(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/ascensions?limit=-1", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
