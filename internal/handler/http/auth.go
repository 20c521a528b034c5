package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
	"github.com/go-chi/chi/v5"
)

// register creates a profile and logs it in. A taken pseudo answers 409 with
// the message from the uniqueness constraint.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid registration body")
		return
	}

	profile, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "registration failed")
		return
	}

	logger.FromRequest(r).Info().Str("id", profile.ID).Str("pseudo", profile.Pseudo).Msg("profile registered")
	h.writeAuthResponse(w, r, profile, http.StatusCreated)
}

// login answers POST /api/auth/login. Wrong credentials answer 401 without
// telling which part was wrong.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid login body")
		return
	}

	profile, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	logger.FromRequest(r).Debug().Str("id", profile.ID).Msg("profile successfully logged in")
	h.writeAuthResponse(w, r, profile, http.StatusOK)
}

// writeAuthResponse issues a token for profile, sets it as the
// "Authorization" header and writes an [models.AuthResponse].
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, profile models.Profile, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{AccessToken: token.SignedString, Profile: profile}, status)
}

// pseudoAvailable answers GET /api/users/pseudo/{pseudo}/available. The
// answer is advisory; registration may still hit the unique constraint.
func (h *Handler) pseudoAvailable(w http.ResponseWriter, r *http.Request) {
	availability, err := h.services.AuthService.PseudoAvailable(r.Context(), chi.URLParam(r, "pseudo"))
	if err != nil {
		writeServiceError(w, r, err, "pseudo lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, availability, http.StatusOK)
}

// me answers GET /api/me with the profile behind the token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err, "no user in context")
		return
	}

	profile, err := h.services.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "profile lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
