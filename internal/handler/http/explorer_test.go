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

func TestExplorer(t *testing.T) {
	tests := []struct {
		name              string
		query             string
		wantSearch        string
		wantFavoritesOnly bool
	}{
		{name: "all", query: "", wantSearch: ""},
		{name: "search", query: "?search=pir", wantSearch: "pir"},
		{name: "favorites", query: "?filter=favorites&search=a", wantSearch: "a", wantFavoritesOnly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()
			m.explorer.EXPECT().List(gomock.Any(), viewerID, tt.wantSearch, tt.wantFavoritesOnly).
				Return([]models.UserWithStats{{UserStatistics: models.UserStatistics{UserID: otherID}, IsFavorite: true}}, nil)

			rec := doRequest(t, h.Init(), http.MethodGet, "/api/explorer"+tt.query, "", true)

			require.Equal(t, http.StatusOK, rec.Code)
			users := decodeResponse[[]models.UserWithStats](t, rec)
			require.Len(t, users, 1)
			assert.True(t, users[0].IsFavorite)
		})
	}
}

func TestExplorer_UnknownFilter(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/explorer?filter=friends", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddFavorite(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "created", target: otherID, wantStatus: http.StatusCreated},
		{name: "already favorite", target: otherID, err: store.ErrAlreadyFavorite, wantStatus: http.StatusConflict},
		{name: "self", target: viewerID, err: store.ErrSelfFavorite, wantStatus: http.StatusBadRequest},
		{name: "unknown user", target: otherID, err: store.ErrProfileNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()
			m.explorer.EXPECT().AddFavorite(gomock.Any(), viewerID, tt.target).
				Return(models.Favorite{UserID: viewerID, FavoriteUserID: tt.target}, tt.err)

			rec := doRequest(t, h.Init(), http.MethodPut, "/api/favorites/"+tt.target, "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRemoveFavorite(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.explorer.EXPECT().RemoveFavorite(gomock.Any(), viewerID, otherID).Return(nil)

	rec := doRequest(t, h.Init(), http.MethodDelete, "/api/favorites/"+otherID, "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
