package http

import (
	"net/http"

	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
)

// pin answers PUT /api/pins/{colID} with the new pin and 201.
func (h *Handler) pin(w http.ResponseWriter, r *http.Request) {
	userID, colID, ok := h.pinTarget(w, r)
	if !ok {
		return
	}

	pin, err := h.services.ColService.Pin(r.Context(), userID, colID)
	if err != nil {
		writeServiceError(w, r, err, "pinning col failed")
		return
	}

	_, _ = utils.WriteJSON(w, pin, http.StatusCreated)
}

// unpin answers DELETE /api/pins/{colID} with 204.
func (h *Handler) unpin(w http.ResponseWriter, r *http.Request) {
	userID, colID, ok := h.pinTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.ColService.Unpin(r.Context(), userID, colID); err != nil {
		writeServiceError(w, r, err, "unpinning col failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updatePinNote answers PATCH /api/pins/{colID}. A null note clears it.
func (h *Handler) updatePinNote(w http.ResponseWriter, r *http.Request) {
	userID, colID, ok := h.pinTarget(w, r)
	if !ok {
		return
	}

	var note models.PinNote
	if err := decodeBody(r, &note); err != nil {
		writeServiceError(w, r, err, "invalid pin note body")
		return
	}

	pin, err := h.services.ColService.UpdatePinNote(r.Context(), userID, colID, note)
	if err != nil {
		writeServiceError(w, r, err, "updating pin note failed")
		return
	}

	_, _ = utils.WriteJSON(w, pin, http.StatusOK)
}

// listPins answers GET /api/pins with the viewer's pinned cols.
func (h *Handler) listPins(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	pinned, err := h.services.ColService.ListPinned(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "listing pins failed")
		return
	}

	_, _ = utils.WriteJSON(w, pinned, http.StatusOK)
}

// pinTarget reads the viewer and the {colID} parameter, answering the error
// itself when either is missing.
func (h *Handler) pinTarget(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return "", "", false
	}

	colID, err := uuidParam(r, "colID")
	if err != nil {
		writeServiceError(w, r, err, "invalid col id")
		return "", "", false
	}

	return userID, colID, true
}
