package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker[*resty.Response]

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the resty implementation of [ServerAdapter]
// bound to cfg.HTTPAddress. A bare host:port gets the http scheme.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		breaker: newBreaker(cfg, logger),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken replaces the bearer token. An empty token sends no Authorization header.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the current bearer token.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request describes one API call.
type request struct {
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	body       any
	result     any
}

// do sends req through the circuit breaker. Transport errors and 5xx answers
// count as breaker failures; 4xx answers do not.
func (h *httpServerAdapter) do(ctx context.Context, req request) (*resty.Response, error) {
	resp, err := h.breaker.Execute(func() (*resty.Response, error) {
		r := h.client.R().SetContext(ctx)
		if token := h.Token(); token != "" {
			r.SetAuthToken(token)
		}
		if req.pathParams != nil {
			r.SetPathParams(req.pathParams)
		}
		if req.query != nil {
			r.SetQueryParams(req.query)
		}
		if req.body != nil {
			r.SetHeader("Content-Type", "application/json").SetBody(req.body)
		}
		if req.result != nil {
			r.SetResult(req.result)
		}

		resp, err := r.Execute(req.method, req.path)
		if err != nil {
			return resp, err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return resp, errServerFault
		}
		return resp, nil
	})

	switch {
	case err == nil:
		return resp, mapHTTPError(resp)
	case errors.Is(err, errServerFault):
		return resp, mapHTTPError(resp)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		h.logger.Debug().Str("path", req.path).Msg("request short-circuited")
		return nil, ErrServerUnreachable
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		return nil, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
}

// Register stores the returned token on success.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login stores the returned token on success.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate prefers the "Authorization" header and falls back to the
// access_token of the body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse
	resp, err := h.do(ctx, request{method: http.MethodPost, path: path, body: body, result: &auth})
	if err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = auth.AccessToken
	}
	if token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: no token in response", path)
	}

	auth.AccessToken = token
	h.SetToken(token)
	return auth, nil
}

// PseudoAvailable asks whether pseudo is still free. Public endpoint.
func (h *httpServerAdapter) PseudoAvailable(ctx context.Context, pseudo string) (models.PseudoAvailability, error) {
	var availability models.PseudoAvailability
	_, err := h.do(ctx, request{
		method:     http.MethodGet,
		path:       "/api/users/pseudo/{pseudo}/available",
		pathParams: map[string]string{"pseudo": pseudo},
		result:     &availability,
	})
	return availability, err
}

// Version returns the plain text body of /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.do(ctx, request{method: http.MethodGet, path: "/api/version"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Me returns the profile behind the current token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	_, err := h.do(ctx, request{method: http.MethodGet, path: "/api/me", result: &profile})
	return profile, err
}

// Dashboard fetches the caller's home page data.
func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard
	_, err := h.do(ctx, request{method: http.MethodGet, path: "/api/dashboard", result: &dashboard})
	return dashboard, err
}

// ProfilePage fetches another cyclist's page as seen by the caller.
func (h *httpServerAdapter) ProfilePage(ctx context.Context, userID string) (models.ProfilePage, error) {
	var page models.ProfilePage
	_, err := h.do(ctx, request{
		method:     http.MethodGet,
		path:       "/api/profiles/{userID}",
		pathParams: map[string]string{"userID": userID},
		result:     &page,
	})
	return page, err
}

// Cols lists the catalogue with the caller's climbed and pinned flags.
func (h *httpServerAdapter) Cols(ctx context.Context) ([]models.ColWithStatus, error) {
	var cols []models.ColWithStatus
	_, err := h.do(ctx, request{method: http.MethodGet, path: "/api/cols", result: &cols})
	return cols, err
}

// ClimbedColIDs lists the cols userID has climbed, for comparison.
func (h *httpServerAdapter) ClimbedColIDs(ctx context.Context, userID string) (models.ClimbedCols, error) {
	var climbed models.ClimbedCols
	_, err := h.do(ctx, request{
		method:     http.MethodGet,
		path:       "/api/users/{userID}/climbed",
		pathParams: map[string]string{"userID": userID},
		result:     &climbed,
	})
	return climbed, err
}

// Pin pins colID. Pinning twice answers [ErrConflict].
func (h *httpServerAdapter) Pin(ctx context.Context, colID string) (models.Pin, error) {
	var pin models.Pin
	_, err := h.do(ctx, request{
		method:     http.MethodPut,
		path:       "/api/pins/{colID}",
		pathParams: map[string]string{"colID": colID},
		result:     &pin,
	})
	return pin, err
}

// Unpin removes the pin on colID.
func (h *httpServerAdapter) Unpin(ctx context.Context, colID string) error {
	_, err := h.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/api/pins/{colID}",
		pathParams: map[string]string{"colID": colID},
	})
	return err
}

// UpdatePinNote replaces the note on a pinned col. A nil note clears it.
func (h *httpServerAdapter) UpdatePinNote(ctx context.Context, colID string, note models.PinNote) (models.Pin, error) {
	var pin models.Pin
	_, err := h.do(ctx, request{
		method:     http.MethodPatch,
		path:       "/api/pins/{colID}",
		pathParams: map[string]string{"colID": colID},
		body:       note,
		result:     &pin,
	})
	return pin, err
}

// LogAscension records an ascension and returns it as stored.
func (h *httpServerAdapter) LogAscension(ctx context.Context, ascension models.Ascension) (models.Ascension, error) {
	var created models.Ascension
	_, err := h.do(ctx, request{method: http.MethodPost, path: "/api/ascensions", body: ascension, result: &created})
	return created, err
}

// DeleteAscension removes one of the caller's ascensions.
func (h *httpServerAdapter) DeleteAscension(ctx context.Context, ascensionID string) error {
	_, err := h.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/api/ascensions/{ascensionID}",
		pathParams: map[string]string{"ascensionID": ascensionID},
	})
	return err
}

// Explorer lists other cyclists. search is trimmed; favoritesOnly keeps the
// caller's favorites.
func (h *httpServerAdapter) Explorer(ctx context.Context, search string, favoritesOnly bool) ([]models.UserWithStats, error) {
	query := map[string]string{"filter": "all"}
	if favoritesOnly {
		query["filter"] = "favorites"
	}
	if search = strings.TrimSpace(search); search != "" {
		query["search"] = search
	}

	var users []models.UserWithStats
	_, err := h.do(ctx, request{method: http.MethodGet, path: "/api/explorer", query: query, result: &users})
	return users, err
}

// AddFavorite follows userID.
func (h *httpServerAdapter) AddFavorite(ctx context.Context, userID string) (models.Favorite, error) {
	var favorite models.Favorite
	_, err := h.do(ctx, request{
		method:     http.MethodPut,
		path:       "/api/favorites/{userID}",
		pathParams: map[string]string{"userID": userID},
		result:     &favorite,
	})
	return favorite, err
}

// RemoveFavorite unfollows userID.
func (h *httpServerAdapter) RemoveFavorite(ctx context.Context, userID string) error {
	_, err := h.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/api/favorites/{userID}",
		pathParams: map[string]string{"userID": userID},
	})
	return err
}
