package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabDashboard tab = iota
	tabMap
	tabExplorer
)

var tabTitles = []string{"Tableau de bord", "Carte", "Explorer"}

const statusTTL = 3 * time.Second

// mainLoopModel holds the signed-in screens. The map and explorer state
// change only through their reducers; the dashboard and the profile page are
// shown as loaded.
type mainLoopModel struct {
	ctx     context.Context
	tracker service.ClientTrackerService
	profile models.Profile

	tab     tab
	spinner spinner.Model
	pending int
	status  string
	overlay *errorOverlayModel

	dashboard     *models.Dashboard
	dashIdx       int
	confirmDelete string
	noteInput     textinput.Model
	editingPin    *models.Col

	mapState  state.MapState
	mapIdx    int
	selecting bool
	selectIdx int

	explorer    state.ExplorerState
	explorerIdx int
	search      textinput.Model
	profilePage *models.ProfilePage

	logout bool
}

// newMainLoopModel starts with three loads pending, one per tab.
func newMainLoopModel(ctx context.Context, services *service.ClientServices, profile models.Profile) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "rechercher un pseudo"
	search.CharLimit = 32
	search.Width = 30

	note := textinput.New()
	note.Placeholder = "note (vide pour effacer)"
	note.CharLimit = 500
	note.Width = 40

	return mainLoopModel{
		ctx:      ctx,
		tracker:  services.TrackerService,
		profile:  profile,
		spinner:  s,
		mapState: state.NewMapState(),
		explorer: state.NewExplorerState(profile.ID),
		search:    search,
		noteInput: note,
		pending:   3,
	}
}

// Init implements [tea.Model]. Loads every tab at once.
func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadDashboard(), m.cmdLoadMap(), m.cmdLoadExplorer())
}

// Update implements [tea.Model]. Load results and reducer actions are
// handled first. Keys then go, in order, to the error overlay, a focused
// input, the global shortcuts and finally the active tab.
func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshMsg:
		cmd := m.reload()
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case dashboardLoadedMsg:
		m.done()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.dashboard = &msg.dashboard
		m.dashIdx = clampIndex(m.dashIdx, m.dashboardRows())
		return m, nil

	case mapLoadedMsg:
		m.done()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.reduceMap(msg.loaded)

	case explorerLoadedMsg:
		m.done()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.reduceExplorer(msg.loaded)

	case profileLoadedMsg:
		m.done()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.profilePage = &msg.page
		m.explorer.Favorites = m.explorer.Favorites.With(msg.page.Profile.ID, msg.page.IsFavorite)
		return m, nil

	case ascensionLoggedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		flash := m.flash("Ascension enregistrée : " + msg.colName)
		reload := m.reload()
		return m, tea.Batch(flash, reload)

	case ascensionDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		flash := m.flash("Ascension supprimée")
		reload := m.reload()
		return m, tea.Batch(flash, reload)

	case pinNoteSavedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		flash := m.flash("Note enregistrée : " + msg.colName)
		reload := m.reload()
		return m, tea.Batch(flash, reload)

	case mapActionMsg:
		return m.reduceMap(msg.action)

	case explorerActionMsg:
		return m.reduceExplorer(msg.action)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.noteInput.Focused() {
			var cmd tea.Cmd
			m.noteInput, cmd = m.noteInput.Update(msg)
			return m, cmd
		}
		if m.search.Focused() {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.noteInput.Focused() {
		return m.updateNote(keyMsg)
	}
	if m.search.Focused() {
		return m.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.reload):
		cmd := m.reload()
		return m, cmd
	case key.Matches(keyMsg, keys.dashboard):
		return m.switchTab(tabDashboard), nil
	case key.Matches(keyMsg, keys.mapTab):
		return m.switchTab(tabMap), nil
	case key.Matches(keyMsg, keys.explorer):
		return m.switchTab(tabExplorer), nil
	case key.Matches(keyMsg, keys.tab):
		return m.switchTab((m.tab + 1) % tab(len(tabTitles))), nil
	case key.Matches(keyMsg, keys.backtab):
		return m.switchTab((m.tab + tab(len(tabTitles)) - 1) % tab(len(tabTitles))), nil
	}

	switch m.tab {
	case tabDashboard:
		return m.updateDashboard(keyMsg)
	case tabMap:
		return m.updateMap(keyMsg)
	case tabExplorer:
		return m.updateExplorer(keyMsg)
	}
	return m, nil
}

// View implements [tea.Model].
func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var body, hotKeys string
	switch m.tab {
	case tabDashboard:
		body, hotKeys = m.viewDashboard()
	case tabMap:
		body, hotKeys = m.viewMap()
	case tabExplorer:
		body, hotKeys = m.viewExplorer()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	if m.pending > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" Chargement...\n\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString(body)

	hotKeys += " │ 1/2/3 : onglets │ r : recharger │ L : déconnexion │ q : quitter"
	return appStyle.Render(renderPage("COLS · "+m.profile.Pseudo, strings.TrimRight(b.String(), "\n"), hotKeys))
}

func (m mainLoopModel) viewTabs() string {
	rendered := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		style := tabStyle
		if tab(i) == m.tab {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m mainLoopModel) switchTab(t tab) mainLoopModel {
	m.tab = t
	m.selecting = false
	m.profilePage = nil
	m.confirmDelete = ""
	m.editingPin = nil
	m.noteInput.Blur()
	return m
}

// reload fetches every screen again. The comparison set is kept.
func (m *mainLoopModel) reload() tea.Cmd {
	m.pending += 3
	return tea.Batch(m.cmdLoadDashboard(), m.cmdLoadMap(), m.cmdLoadExplorer())
}

func (m *mainLoopModel) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.overlay = &errorOverlayModel{message: humanize(err)}
	return m, nil
}

// flash shows msg in the status line for a few seconds.
func (m *mainLoopModel) flash(msg string) tea.Cmd {
	m.status = msg
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) reduceMap(action state.MapAction) (tea.Model, tea.Cmd) {
	var cmds []state.Command
	m.mapState, cmds = state.ReduceMap(m.mapState, action)
	m.mapIdx = clampIndex(m.mapIdx, len(m.mapState.Markers()))
	cmd := m.run(cmds)
	return m, cmd
}

func (m mainLoopModel) reduceExplorer(action state.ExplorerAction) (tea.Model, tea.Cmd) {
	var cmds []state.Command
	m.explorer, cmds = state.ReduceExplorer(m.explorer, action)
	m.explorerIdx = clampIndex(m.explorerIdx, len(m.explorer.Visible()))
	cmd := m.run(cmds)
	return m, cmd
}
