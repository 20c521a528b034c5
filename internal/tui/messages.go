package tui

import (
	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/models"
)

// NavigateTo switches the active page of the login flow. Payload, when set,
// is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult ends the login flow when Err is nil. Registration produces it
// too, since a new account is signed in.
type LoginResult struct {
	Profile models.Profile
	Err     error
}

type registerResult struct {
	profile models.Profile
	err     error
}

type serverVersionMsg struct {
	version string
	err     error
}

// refreshMsg is sent by the refresh worker.
type refreshMsg struct{}

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	err       error
}

type profileLoadedMsg struct {
	page models.ProfilePage
	err  error
}

type mapLoadedMsg struct {
	loaded state.ColsLoaded
	err    error
}

type explorerLoadedMsg struct {
	loaded state.UsersLoaded
	err    error
}

// mapActionMsg and explorerActionMsg feed a finished command back to its
// reducer.
type mapActionMsg struct {
	action state.MapAction
}

type explorerActionMsg struct {
	action state.ExplorerAction
}

type ascensionLoggedMsg struct {
	colName string
	err     error
}

type ascensionDeletedMsg struct {
	err error
}

type pinNoteSavedMsg struct {
	colName string
	err     error
}

type clearStatusMsg struct{}
