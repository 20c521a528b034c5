package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cols/internal/utils"
)

// Values of the explorer "filter" query parameter.
const (
	explorerFilterAll       = "all"
	explorerFilterFavorites = "favorites"
)

// explorer lists the other cyclists with their statistics, sorted by cols
// climbed. The viewer never appears in the list.
func (h *Handler) explorer(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	var favoritesOnly bool
	switch filter := r.URL.Query().Get("filter"); filter {
	case "", explorerFilterAll:
	case explorerFilterFavorites:
		favoritesOnly = true
	default:
		writeServiceError(w, r, fmt.Errorf("%w: filter=%q", ErrInvalidQueryParam, filter), "invalid explorer filter")
		return
	}

	users, err := h.services.ExplorerService.List(r.Context(), userID, r.URL.Query().Get("search"), favoritesOnly)
	if err != nil {
		writeServiceError(w, r, err, "listing users failed")
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

// addFavorite answers PUT /api/favorites/{userID} with 201. Following
// oneself answers 400, following twice 409.
func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userID, favoriteUserID, ok := h.favoriteTarget(w, r)
	if !ok {
		return
	}

	favorite, err := h.services.ExplorerService.AddFavorite(r.Context(), userID, favoriteUserID)
	if err != nil {
		writeServiceError(w, r, err, "adding favorite failed")
		return
	}

	_, _ = utils.WriteJSON(w, favorite, http.StatusCreated)
}

// removeFavorite answers DELETE /api/favorites/{userID} with 204.
func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, favoriteUserID, ok := h.favoriteTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.ExplorerService.RemoveFavorite(r.Context(), userID, favoriteUserID); err != nil {
		writeServiceError(w, r, err, "removing favorite failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// favoriteTarget reads the viewer and the {userID} parameter, answering the
// error itself when either is missing.
func (h *Handler) favoriteTarget(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return "", "", false
	}

	favoriteUserID, err := uuidParam(r, "userID")
	if err != nil {
		writeServiceError(w, r, err, "invalid user id")
		return "", "", false
	}

	return userID, favoriteUserID, true
}
