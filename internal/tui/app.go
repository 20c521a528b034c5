package tui

import (
	"context"

	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel is the router of the login flow:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	tracker service.ClientTrackerService

	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	profile    models.Profile

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, tracker service.ClientTrackerService) RootModel {
	return RootModel{
		ctx:       ctx,
		tracker:   tracker,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

// Init implements [tea.Model]. Delegates to the start page.
func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

// Update implements [tea.Model]. Handled messages:
//   - ctrl+c: quits the flow as a user cancel.
//   - v on the menu: toggles the build info window and asks the server
//     version.
//   - esc with the window open: closes it.
//   - [NavigateTo]: switches page, delivering its payload or Init command.
//   - [LoginResult] without error: keeps the profile and quits.
//
// Everything else goes to the active page.
func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				if r.showBuildInfo {
					return r, r.cmdServerVersion()
				}
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		if msg.err != nil {
			r.serverVersion = humanize(msg.err)
		} else {
			r.serverVersion = msg.version
		}
		return r, nil

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case LoginResult:
		if msg.Err == nil {
			r.profile = msg.Profile
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// View implements [tea.Model]. The build info window hides the page.
func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	}
	if r.current == nil {
		return renderPage("COLS", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx, tracker := r.ctx, r.tracker
	return func() tea.Msg {
		version, err := tracker.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
