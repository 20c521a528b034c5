package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// GET /api/cols
// ─────────────────────────────────────────────

func TestListCols_PassesFilters(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().
		ListWithStatus(gomock.Any(), viewerID, store.ColQuery{Country: "France", Difficulty: "hc"}).
		Return([]models.ColWithStatus{{Col: models.Col{ID: galibierID, Name: "Galibier"}, Climbed: true}}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/cols?country=France&difficulty=hc", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	cols := decodeResponse[[]models.ColWithStatus](t, rec)
	require.Len(t, cols, 1)
	assert.True(t, cols[0].Climbed)
}

func TestListCols_UnknownDifficulty(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/cols?difficulty=extreme", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCols_CatalogueFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().ListWithStatus(gomock.Any(), viewerID, gomock.Any()).
		Return(nil, fmt.Errorf("listing cols failed: %w", store.ErrExecutingQuery))

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/cols", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCountCols(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().Count(gomock.Any()).Return(models.ColCount{Total: 50}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/cols/count", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, decodeResponse[models.ColCount](t, rec).Total)
}

// ─────────────────────────────────────────────
// GET /api/map
// ─────────────────────────────────────────────

func TestMapView(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantFilter  compare.Filter
		wantCompare string
	}{
		{name: "defaults", query: "", wantFilter: compare.FilterAll},
		{name: "climbed filter", query: "?filter=climbed", wantFilter: compare.FilterClimbed},
		{name: "comparison", query: "?filter=not-climbed&compare=" + otherID, wantFilter: compare.FilterNotClimbed, wantCompare: otherID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()
			m.cols.EXPECT().Map(gomock.Any(), viewerID, tt.wantFilter, tt.wantCompare).
				Return(models.MapView{Filter: string(tt.wantFilter), ComparisonUser: tt.wantCompare, Markers: []models.MapMarker{}}, nil)

			rec := doRequest(t, h.Init(), http.MethodGet, "/api/map"+tt.query, "", true)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantCompare, decodeResponse[models.MapView](t, rec).ComparisonUser)
		})
	}
}

func TestMapView_BadQuery(t *testing.T) {
	for _, query := range []string{"?filter=visited", "?compare=not-a-uuid"} {
		t.Run(query, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()

			rec := doRequest(t, h.Init(), http.MethodGet, "/api/map"+query, "", true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestClimbedCols(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().ClimbedColIDs(gomock.Any(), otherID).
		Return(models.ClimbedCols{UserID: otherID, ColIDs: []string{galibierID}}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/users/"+otherID+"/climbed", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{galibierID}, decodeResponse[models.ClimbedCols](t, rec).ColIDs)
}

// ─────────────────────────────────────────────
// /api/pins
// ─────────────────────────────────────────────

func TestPin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "already pinned", err: store.ErrAlreadyPinned, wantStatus: http.StatusConflict},
		{name: "unknown col", err: store.ErrColNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorize()
			m.cols.EXPECT().Pin(gomock.Any(), viewerID, galibierID).
				Return(models.Pin{UserID: viewerID, ColID: galibierID}, tt.err)

			rec := doRequest(t, h.Init(), http.MethodPut, "/api/pins/"+galibierID, "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPin_InvalidColID(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()

	rec := doRequest(t, h.Init(), http.MethodPut, "/api/pins/galibier", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnpin(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().Unpin(gomock.Any(), viewerID, galibierID).Return(nil)

	rec := doRequest(t, h.Init(), http.MethodDelete, "/api/pins/"+galibierID, "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUnpin_NotPinned(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().Unpin(gomock.Any(), viewerID, galibierID).Return(store.ErrPinNotFound)

	rec := doRequest(t, h.Init(), http.MethodDelete, "/api/pins/"+galibierID, "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePinNote(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	note := "Par Valloire"
	m.cols.EXPECT().UpdatePinNote(gomock.Any(), viewerID, galibierID, models.PinNote{Note: &note}).
		Return(models.Pin{ColID: galibierID, Note: &note}, nil)

	rec := doRequest(t, h.Init(), http.MethodPatch, "/api/pins/"+galibierID, `{"note":"Par Valloire"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	pin := decodeResponse[models.Pin](t, rec)
	require.NotNil(t, pin.Note)
	assert.Equal(t, note, *pin.Note)
}

func TestListPins(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorize()
	m.cols.EXPECT().ListPinned(gomock.Any(), viewerID).
		Return([]models.PinnedCol{{Pin: models.Pin{ColID: galibierID}, Col: models.Col{Name: "Galibier"}}}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/pins", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse[[]models.PinnedCol](t, rec), 1)
}
