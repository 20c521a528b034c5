// Package tui is the terminal front end of the cols client.
//
// The login flow (menu, login, registration) and the main loop
// (dashboard, map, explorer) each run as their own bubbletea program.
// Screen state that other screens depend on lives in internal/state and
// changes only through its reducers; the commands the reducers return run
// asynchronously and come back as messages.
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI drives the terminal screens for the client app. Only one bubbletea
// program runs at a time; Refresh is delivered to it.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

// New returns a TUI over the client services. buildInfo feeds the build window.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu until the user is signed in or quits. notice, when
// set, is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Profile, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(notice),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(ctx, pages, pageMenu, t.buildInfo, t.services.TrackerService)
	finalModel, err := t.run(ctx, root)
	if err != nil {
		return models.Profile{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Profile{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Profile{}, ErrUserQuit
	}

	return result.profile, nil
}

// MainLoop runs the signed-in screens. It reports whether the user asked to
// log out.
func (t *TUI) MainLoop(ctx context.Context, profile models.Profile) (logout bool, err error) {
	finalModel, err := t.run(ctx, newMainLoopModel(ctx, t.services, profile))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// Refresh asks the running program, if any, to reload its data.
func (t *TUI) Refresh() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(refreshMsg{})
	}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	return program.Run()
}
