package tui

import (
	"time"

	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/models"
	tea "github.com/charmbracelet/bubbletea"
)

// run turns reducer commands into bubbletea commands. Every result comes
// back as an action for the reducer that asked for it.
func (m *mainLoopModel) run(cmds []state.Command) tea.Cmd {
	batch := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		switch c := c.(type) {
		case state.FetchComparison:
			batch = append(batch, m.cmdFetchComparison(c))
		case state.PersistPin:
			batch = append(batch, m.cmdPersistPin(c))
		case state.PersistFavorite:
			batch = append(batch, m.cmdPersistFavorite(c))
		case state.Refresh:
			batch = append(batch, m.reload())
		}
	}
	return tea.Batch(batch...)
}

// cmdFetchComparison answers with the generation it was started for, so a
// stale answer is dropped by the reducer.
func (m *mainLoopModel) cmdFetchComparison(c state.FetchComparison) tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		ids, err := tracker.ClimbedColIDs(ctx, c.UserID)
		return mapActionMsg{action: state.ComparisonLoaded{Generation: c.Generation, ColIDs: ids, Err: forDisplay(err)}}
	}
}

func (m *mainLoopModel) cmdPersistPin(c state.PersistPin) tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		err := tracker.SetPinned(ctx, c.ColID, c.Pinned)
		return mapActionMsg{action: state.PinPersisted{ColID: c.ColID, Pinned: c.Pinned, Err: forDisplay(err)}}
	}
}

func (m *mainLoopModel) cmdPersistFavorite(c state.PersistFavorite) tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		err := tracker.SetFavorite(ctx, c.UserID, c.Favorite)
		return explorerActionMsg{action: state.FavoritePersisted{UserID: c.UserID, Favorite: c.Favorite, Err: forDisplay(err)}}
	}
}

func (m *mainLoopModel) cmdLoadDashboard() tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		dashboard, err := tracker.Dashboard(ctx)
		return dashboardLoadedMsg{dashboard: dashboard, err: err}
	}
}

func (m *mainLoopModel) cmdLoadMap() tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		loaded, err := tracker.LoadMap(ctx)
		return mapLoadedMsg{loaded: loaded, err: err}
	}
}

func (m *mainLoopModel) cmdLoadExplorer() tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		loaded, err := tracker.LoadExplorer(ctx)
		return explorerLoadedMsg{loaded: loaded, err: err}
	}
}

func (m *mainLoopModel) cmdLoadProfile(userID string) tea.Cmd {
	m.pending++
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		page, err := tracker.ProfilePage(ctx, userID)
		return profileLoadedMsg{page: page, err: err}
	}
}

// cmdLogAscension records that the viewer climbed col today, in the local
// calendar.
func (m *mainLoopModel) cmdLogAscension(col models.Col) tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	today := calendarDay(time.Now())
	return func() tea.Msg {
		_, err := tracker.LogAscension(ctx, models.Ascension{ColID: col.ID, Date: today})
		return ascensionLoggedMsg{colName: col.Name, err: err}
	}
}

// cmdDeleteAscension removes one ascension listed on the dashboard.
func (m *mainLoopModel) cmdDeleteAscension(ascensionID string) tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		return ascensionDeletedMsg{err: tracker.DeleteAscension(ctx, ascensionID)}
	}
}

// cmdSavePinNote replaces the note of a pinned col.
func (m *mainLoopModel) cmdSavePinNote(col models.Col, note string) tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		_, err := tracker.UpdatePinNote(ctx, col.ID, note)
		return pinNoteSavedMsg{colName: col.Name, err: err}
	}
}

// calendarDay keeps the date of t as read in its own location, at midnight
// UTC.
func calendarDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
