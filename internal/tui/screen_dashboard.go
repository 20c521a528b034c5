package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cols/internal/stats"
	"github.com/MKhiriev/go-cols/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	dashboardRecent = 5
	dashboardPinned = 5
)

// dashboardLists returns the ascension and pinned rows shown on the
// dashboard, each capped.
func (m mainLoopModel) dashboardLists() ([]models.AscensionWithDetails, []models.PinnedCol) {
	if m.dashboard == nil {
		return nil, nil
	}
	recent, pinned := m.dashboard.RecentAscensions, m.dashboard.PinnedCols
	return recent[:min(len(recent), dashboardRecent)], pinned[:min(len(pinned), dashboardPinned)]
}

func (m mainLoopModel) dashboardRows() int {
	recent, pinned := m.dashboardLists()
	return len(recent) + len(pinned)
}

// updateDashboard moves one cursor over the recent ascensions, then the
// pinned cols. Deleting an ascension needs the key pressed twice on the
// same row.
func (m mainLoopModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recent, pinned := m.dashboardLists()
	rows := len(recent) + len(pinned)

	switch {
	case key.Matches(msg, keys.up):
		m.dashIdx = clampIndex(m.dashIdx-1, rows)
		m.confirmDelete = ""
	case key.Matches(msg, keys.down):
		m.dashIdx = clampIndex(m.dashIdx+1, rows)
		m.confirmDelete = ""
	case key.Matches(msg, keys.remove):
		if m.dashIdx >= len(recent) {
			return m, nil
		}
		id := recent[m.dashIdx].ID
		if m.confirmDelete != id {
			m.confirmDelete = id
			cmd := m.flash("d de nouveau pour supprimer cette ascension")
			return m, cmd
		}
		m.confirmDelete = ""
		cmd := m.cmdDeleteAscension(id)
		return m, cmd
	case key.Matches(msg, keys.edit, keys.enter):
		if m.dashIdx < len(recent) || m.dashIdx >= rows {
			return m, nil
		}
		p := pinned[m.dashIdx-len(recent)]
		col := p.Col
		m.editingPin = &col
		m.noteInput.SetValue(valueOrEmpty(p.Note))
		m.noteInput.CursorEnd()
		cmd := m.noteInput.Focus()
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.noteInput.Blur()
		m.editingPin = nil
		return m, nil
	case key.Matches(msg, keys.enter):
		m.noteInput.Blur()
		col := m.editingPin
		m.editingPin = nil
		if col == nil {
			return m, nil
		}
		cmd := m.cmdSavePinNote(*col, m.noteInput.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewDashboard() (string, string) {
	hotKeys := "↑/↓ : naviguer │ d : supprimer l'ascension │ e : modifier la note"
	if m.editingPin != nil {
		hotKeys = "enter : enregistrer │ esc : annuler"
	}
	if m.dashboard == nil {
		return helpStyle.Render("Aucune donnée."), hotKeys
	}
	d := m.dashboard
	recent, pinned := m.dashboardLists()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Bonjour %s\n\n", d.Profile.DisplayName()))
	b.WriteString(renderCards(stats.FromStatistics(d.Statistics, d.TotalCols).Cards()))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Dernières ascensions"))
	b.WriteString("\n")
	b.WriteString(renderAscensions(recent, dashboardRecent, m.dashIdx))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Cols épinglés"))
	b.WriteString("\n")
	if len(pinned) == 0 {
		b.WriteString(helpStyle.Render("Aucun col épinglé."))
		b.WriteString("\n")
	}
	for i, p := range pinned {
		row := len(recent) + i
		note := valueOrDash(p.Note)
		if m.editingPin != nil && row == m.dashIdx {
			note = m.noteInput.View()
		}
		b.WriteString(fmt.Sprintf("%s %s %-28s %5d m  %s\n",
			cursor(row == m.dashIdx), pinStyle.Render("★"), fitText(p.Col.Name, 28), p.Col.Altitude, note))
	}
	if len(d.PinnedCols) > len(pinned) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("... et %d autres sur la carte", len(d.PinnedCols)-len(pinned))))
		b.WriteString("\n")
	}

	return b.String(), hotKeys
}

func renderCards(cards []stats.Card) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := helpStyle.Render(c.Title) + "\n" + titleStyle.Render(c.Value) + "\n" + helpStyle.Render(c.Subtitle)
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderAscensions lists at most limit ascensions, newest first as received.
// The row at selected gets the cursor; pass -1 for none.
func renderAscensions(ascensions []models.AscensionWithDetails, limit, selected int) string {
	if len(ascensions) == 0 {
		return helpStyle.Render("Aucune ascension enregistrée.") + "\n"
	}
	if len(ascensions) > limit {
		ascensions = ascensions[:limit]
	}

	var b strings.Builder
	for i, a := range ascensions {
		name, difficulty := "-", "-"
		if a.Col != nil {
			name = a.Col.Name
			difficulty = stats.DifficultyLabel(a.Col.Difficulty)
		}
		b.WriteString(fmt.Sprintf("%s %-18s %-28s %-10s %8s %10s\n",
			cursor(i == selected),
			stats.FormatDate(a.Date),
			fitText(name, 28),
			difficulty,
			stats.FormatDuration(a.DurationSeconds),
			stats.FormatSpeed(a.AvgSpeedKmh),
		))
	}
	return b.String()
}
