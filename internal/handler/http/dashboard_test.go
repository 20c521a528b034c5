package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboard(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.dashboard.EXPECT().Dashboard(gomock.Any(), viewerID).Return(models.Dashboard{
		Profile:          models.Profile{ID: viewerID, Pseudo: "Pirata"},
		Statistics:       models.UserStatistics{UserID: viewerID, ColsClimbed: 10},
		TotalCols:        50,
		RecentAscensions: []models.AscensionWithDetails{},
		PinnedCols:       []models.PinnedCol{},
	}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/dashboard", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	dashboard := decodeResponse[models.Dashboard](t, rec)
	assert.Equal(t, 10, dashboard.Statistics.ColsClimbed)
	assert.Equal(t, 50, dashboard.TotalCols)
}

func TestProfilePage(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.dashboard.EXPECT().ProfilePage(gomock.Any(), viewerID, otherID).
		Return(models.ProfilePage{Profile: models.Profile{ID: otherID}, IsFavorite: true}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/profiles/"+otherID, "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse[models.ProfilePage](t, rec).IsFavorite)
}

func TestProfilePage_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.dashboard.EXPECT().ProfilePage(gomock.Any(), viewerID, otherID).Return(models.ProfilePage{}, store.ErrProfileNotFound)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/profiles/"+otherID, "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrProfileNotFound.Error(), errorMessage(t, rec))
}
