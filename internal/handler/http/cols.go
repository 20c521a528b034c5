package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
)

// listCols returns the catalogue annotated with the viewer's climbed and
// pinned flags. Optional filters: country, difficulty.
func (h *Handler) listCols(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	query := store.ColQuery{
		Country:    r.URL.Query().Get("country"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}
	if query.Difficulty != "" && !models.Difficulty(query.Difficulty).Valid() {
		writeServiceError(w, r, fmt.Errorf("%w: difficulty=%q", ErrInvalidQueryParam, query.Difficulty), "invalid difficulty")
		return
	}

	cols, err := h.services.ColService.ListWithStatus(r.Context(), userID, query)
	if err != nil {
		writeServiceError(w, r, err, "listing cols failed")
		return
	}

	_, _ = utils.WriteJSON(w, cols, http.StatusOK)
}

// countCols answers GET /api/cols/count.
func (h *Handler) countCols(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.ColService.Count(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "counting cols failed")
		return
	}

	_, _ = utils.WriteJSON(w, count, http.StatusOK)
}

// mapView answers GET /api/map?filter=&compare=. compare, when set, is the
// id of the cyclist to compare with.
func (h *Handler) mapView(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	filter, err := compare.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeServiceError(w, r, err, "invalid map filter")
		return
	}

	compareUserID := r.URL.Query().Get("compare")
	if compareUserID != "" && !utils.IsUUID(compareUserID) {
		writeServiceError(w, r, fmt.Errorf("%w: compare=%q", ErrInvalidQueryParam, compareUserID), "invalid comparison target")
		return
	}

	view, err := h.services.ColService.Map(r.Context(), userID, filter, compareUserID)
	if err != nil {
		writeServiceError(w, r, err, "building map failed")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

// climbedCols returns the ids of the cols another cyclist climbed, used by
// the client to compare maps.
func (h *Handler) climbedCols(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		writeServiceError(w, r, err, "invalid user id")
		return
	}

	climbed, err := h.services.ColService.ClimbedColIDs(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "listing climbed cols failed")
		return
	}

	_, _ = utils.WriteJSON(w, climbed, http.StatusOK)
}
