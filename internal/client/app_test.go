package client

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/mock"
	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/tui"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeUI records what the app asked of the terminal.
type fakeUI struct {
	notices   []string
	loginErr  error
	loginAs   models.Profile
	mainLoops []models.Profile
	// logouts lists the answers of successive MainLoop calls.
	logouts []bool
}

func (f *fakeUI) LoginFlow(_ context.Context, notice string) (models.Profile, error) {
	f.notices = append(f.notices, notice)
	return f.loginAs, f.loginErr
}

func (f *fakeUI) MainLoop(_ context.Context, profile models.Profile) (bool, error) {
	f.mainLoops = append(f.mainLoops, profile)
	logout := f.logouts[0]
	f.logouts = f.logouts[1:]
	return logout, nil
}

func (f *fakeUI) Refresh() {}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	services := &service.ClientServices{
		AuthService:    auth,
		TrackerService: mock.NewMockClientTrackerService(ctrl),
	}
	app, err := NewApp(services, ui, config.Workers{RefreshInterval: time.Hour}, logger.Nop())
	require.NoError(t, err)
	return app, auth
}

func TestApp_Run_ResumedSession(t *testing.T) {
	ui := &fakeUI{logouts: []bool{false}}
	app, auth := newTestApp(t, ui)
	ctx := context.Background()

	profile := models.Profile{ID: "u1", Pseudo: "pirate"}
	auth.EXPECT().Resume(ctx).Return(profile, nil)

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, ui.notices, "login flow must not run")
	assert.Equal(t, []models.Profile{profile}, ui.mainLoops)
}

func TestApp_Run_NoSessionShowsLogin(t *testing.T) {
	profile := models.Profile{ID: "u1", Pseudo: "pirate"}
	ui := &fakeUI{loginAs: profile, logouts: []bool{false}}
	app, auth := newTestApp(t, ui)
	ctx := context.Background()

	auth.EXPECT().Resume(ctx).Return(models.Profile{}, service.ErrNoSession)

	require.NoError(t, app.Run(ctx))
	assert.Equal(t, []string{""}, ui.notices)
	assert.Equal(t, []models.Profile{profile}, ui.mainLoops)
}

func TestApp_Run_ExpiredSessionNotice(t *testing.T) {
	ui := &fakeUI{loginAs: models.Profile{ID: "u1"}, logouts: []bool{false}}
	app, auth := newTestApp(t, ui)
	ctx := context.Background()

	auth.EXPECT().Resume(ctx).Return(models.Profile{}, service.ErrSessionExpired)

	require.NoError(t, app.Run(ctx))
	assert.Equal(t, []string{service.ErrSessionExpired.Error()}, ui.notices)
}

func TestApp_Run_LogoutStartsOver(t *testing.T) {
	first := models.Profile{ID: "u1", Pseudo: "pirate"}
	second := models.Profile{ID: "u2", Pseudo: "grimpeur"}
	ui := &fakeUI{loginAs: second, logouts: []bool{true, false}}
	app, auth := newTestApp(t, ui)
	ctx := context.Background()

	gomock.InOrder(
		auth.EXPECT().Resume(ctx).Return(first, nil),
		auth.EXPECT().Logout(ctx).Return(nil),
		auth.EXPECT().Resume(ctx).Return(models.Profile{}, service.ErrNoSession),
	)

	require.NoError(t, app.Run(ctx))
	assert.Equal(t, []models.Profile{first, second}, ui.mainLoops)
}

func TestApp_Run_UserQuitsLogin(t *testing.T) {
	ui := &fakeUI{loginErr: tui.ErrUserQuit}
	app, auth := newTestApp(t, ui)
	ctx := context.Background()

	auth.EXPECT().Resume(ctx).Return(models.Profile{}, service.ErrNoSession)

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, ui.mainLoops)
}

func TestApp_Run_LoginFailure(t *testing.T) {
	ui := &fakeUI{loginErr: assert.AnError}
	app, auth := newTestApp(t, ui)
	ctx := context.Background()

	auth.EXPECT().Resume(ctx).Return(models.Profile{}, service.ErrNoSession)

	err := app.Run(ctx)
	require.ErrorIs(t, err, assert.AnError)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.Workers{}, logger.Nop())
	assert.Error(t, err)
}
