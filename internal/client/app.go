package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/tui"
	"github.com/MKhiriev/go-cols/internal/workers"
	"github.com/MKhiriev/go-cols/models"
)

// UI is the part of the terminal front end the app drives.
type UI interface {
	LoginFlow(ctx context.Context, notice string) (models.Profile, error)
	MainLoop(ctx context.Context, profile models.Profile) (logout bool, err error)
	Refresh()
}

// App is the terminal client: the login flow, then the main loop with the
// refresh worker running.
type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.Workers

	logger *logger.Logger
}

// NewApp returns an App. services and ui are required.
func NewApp(services *service.ClientServices, ui UI, cfg config.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run signs the user in, from the stored session when it is still accepted,
// and runs the main loop until the user quits. Logging out starts over.
func (a *App) Run(ctx context.Context) error {
	for {
		profile, err := a.signIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.mainLoop(ctx, profile)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout")
		}
	}
}

func (a *App) signIn(ctx context.Context) (models.Profile, error) {
	profile, err := a.services.AuthService.Resume(ctx)
	if err == nil {
		return profile, nil
	}

	var notice string
	switch {
	case errors.Is(err, service.ErrNoSession):
	case errors.Is(err, service.ErrSessionExpired):
		notice = service.ErrSessionExpired.Error()
	default:
		// the server could not confirm the session; ask for credentials
		a.logger.Warn().Err(err).Msg("resume session")
		notice = adapter.Message(err)
	}

	profile, err = a.ui.LoginFlow(ctx, notice)
	if err != nil {
		return models.Profile{}, fmt.Errorf("login flow: %w", err)
	}
	return profile, nil
}

func (a *App) mainLoop(ctx context.Context, profile models.Profile) (bool, error) {
	jobs := workers.NewWorkers(workers.NewRefreshWorker(a.cfg.RefreshInterval, a.ui.Refresh, a.logger))
	jobs.Start(ctx)
	defer jobs.Stop()

	a.logger.Info().Str("user_id", profile.ID).Msg("signed in")
	return a.ui.MainLoop(ctx, profile)
}
