package http

import (
	"net/http"

	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
)

// logAscension answers POST /api/ascensions with the stored ascension and
// 201. Validation failures answer 400.
func (h *Handler) logAscension(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	var ascension models.Ascension
	if err = decodeBody(r, &ascension); err != nil {
		writeServiceError(w, r, err, "invalid ascension body")
		return
	}

	created, err := h.services.AscensionService.Log(r.Context(), userID, ascension)
	if err != nil {
		writeServiceError(w, r, err, "logging ascension failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// deleteAscension answers DELETE /api/ascensions/{ascensionID} with 204.
// Another cyclist's ascension is reported as not found.
func (h *Handler) deleteAscension(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	ascensionID, err := uuidParam(r, "ascensionID")
	if err != nil {
		writeServiceError(w, r, err, "invalid ascension id")
		return
	}

	if err = h.services.AscensionService.Delete(r.Context(), userID, ascensionID); err != nil {
		writeServiceError(w, r, err, "deleting ascension failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listAscensions answers GET /api/ascensions?limit= with the viewer's latest
// ascensions. limit is capped at maxListLimit.
func (h *Handler) listAscensions(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	limit, err := limitParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid limit")
		return
	}

	list, err := h.services.AscensionService.Recent(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, r, err, "listing ascensions failed")
		return
	}

	_, _ = utils.WriteJSON(w, list, http.StatusOK)
}
