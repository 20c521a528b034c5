package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuModel is the first screen of the login flow. It offers sign in and
// account creation and navigates with [NavigateTo].
type MenuModel struct {
	items  []string
	idx    int
	status string
}

// NewMenuModel returns the menu; status, when set, is shown above the items.
func NewMenuModel(status string) *MenuModel {
	return &MenuModel{
		items:  []string{"Se connecter", "Créer un compte"},
		status: status,
	}
}

// Init implements [tea.Model]. The menu has nothing to start.
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Arrow keys and j/k move the selection;
// enter opens the selected page.
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
	}

	return m, nil
}

// View implements [tea.Model].
func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		b.WriteString(fmt.Sprintf("%s %d  %s\n", cursor(i == m.idx), i+1, item))
	}

	return renderPage("COLS · MENU", strings.TrimRight(b.String(), "\n"), "enter : choisir │ ↑/↓ : naviguer │ v : version")
}
