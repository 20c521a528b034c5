package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	serverURL string

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService returns the auth service. Sessions are saved per
// serverURL.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, validator validators.Validator, serverURL string, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		serverURL: serverURL,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Resume(ctx context.Context) (models.Profile, error) {
	session, err := a.sessions.LoadSession(ctx, a.serverURL)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Profile{}, ErrNoSession
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("load session: %w", err)
	}

	a.adapter.SetToken(session.AccessToken)
	profile, err := a.adapter.Me(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Info().Str("func", "*clientAuthService.Resume").Str("user_id", session.UserID).Msg("saved session rejected")
		if logoutErr := a.Logout(ctx); logoutErr != nil {
			return models.Profile{}, logoutErr
		}
		return models.Profile{}, ErrSessionExpired
	}
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

// Register validates req, asks the server whether the pseudo is free and then
// creates the account. The availability answer is advisory: when it cannot
// be obtained the account creation is attempted anyway, and a concurrent
// registration of the same pseudo is still rejected by the server.
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	availability, err := a.adapter.PseudoAvailable(ctx, req.Pseudo)
	switch {
	case err != nil:
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.Register").Msg("pseudo availability unknown")
	case !availability.Available:
		return models.Profile{}, store.ErrPseudoAlreadyExists
	}

	auth, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	a.saveSession(ctx, auth)
	return auth.Profile, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Profile, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	auth, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	a.saveSession(ctx, auth)
	return auth.Profile, nil
}

// Logout clears the token, then deletes the saved session. The token stays
// cleared when the delete fails.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.DeleteSession(ctx, a.serverURL); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// saveSession keeps the token so the next start can resume. A failure only
// costs the resume and is logged.
func (a *clientAuthService) saveSession(ctx context.Context, auth models.AuthResponse) {
	session := models.Session{
		ServerURL:   a.serverURL,
		UserID:      auth.Profile.ID,
		Pseudo:      auth.Profile.Pseudo,
		AccessToken: auth.AccessToken,
		SavedAt:     a.now().UTC(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.saveSession").Msg("session not saved")
	}
}
