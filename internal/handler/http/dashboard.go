package http

import (
	"net/http"

	"github.com/MKhiriev/go-cols/internal/utils"
)

// dashboard answers GET /api/dashboard for the viewer.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	dashboard, err := h.services.DashboardService.Dashboard(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "building dashboard failed")
		return
	}

	_, _ = utils.WriteJSON(w, dashboard, http.StatusOK)
}

// profilePage answers GET /api/profiles/{userID}, including whether the
// viewer follows that cyclist.
func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	viewerID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	userID, err := uuidParam(r, "userID")
	if err != nil {
		writeServiceError(w, r, err, "invalid user id")
		return
	}

	page, err := h.services.DashboardService.ProfilePage(r.Context(), viewerID, userID)
	if err != nil {
		writeServiceError(w, r, err, "building profile page failed")
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}
