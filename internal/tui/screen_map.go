package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const mapPageSize = 15

func (m mainLoopModel) updateMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.selecting {
		return m.updateTargetSelect(msg)
	}

	markers := m.mapState.Markers()
	switch {
	case key.Matches(msg, keys.up):
		m.mapIdx = clampIndex(m.mapIdx-1, len(markers))
	case key.Matches(msg, keys.down):
		m.mapIdx = clampIndex(m.mapIdx+1, len(markers))
	case key.Matches(msg, keys.filter):
		return m.reduceMap(state.SetFilter{Filter: nextFilter(m.mapState.Filter)})
	case key.Matches(msg, keys.compare):
		m.selecting = true
		m.selectIdx = 0
	case key.Matches(msg, keys.clear):
		return m.reduceMap(state.SetComparisonTarget{})
	case key.Matches(msg, keys.toggle):
		if len(markers) == 0 {
			return m, nil
		}
		return m.reduceMap(state.TogglePin{ColID: markers[m.mapIdx].Col.ID})
	case key.Matches(msg, keys.ascend):
		if len(markers) == 0 {
			return m, nil
		}
		cmd := m.cmdLogAscension(markers[m.mapIdx].Col.Col)
		return m, cmd
	case key.Matches(msg, keys.copy):
		if len(markers) == 0 {
			return m.fail(errNothingToCopy)
		}
		coords := markers[m.mapIdx].Col.Coordinates()
		if err := clipboard.WriteAll(coords); err != nil {
			return m.fail(err)
		}
		cmd := m.flash("Coordonnées copiées : " + coords)
		return m, cmd
	}
	return m, nil
}

// updateTargetSelect picks the cyclist to compare with among the explorer
// listing.
func (m mainLoopModel) updateTargetSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := m.explorer.Visible()
	switch {
	case key.Matches(msg, keys.esc):
		m.selecting = false
	case key.Matches(msg, keys.up):
		m.selectIdx = clampIndex(m.selectIdx-1, len(users))
	case key.Matches(msg, keys.down):
		m.selectIdx = clampIndex(m.selectIdx+1, len(users))
	case key.Matches(msg, keys.enter):
		if len(users) == 0 {
			return m, nil
		}
		u := users[m.selectIdx]
		m.selecting = false
		return m.reduceMap(state.SetComparisonTarget{UserID: u.UserID, Pseudo: u.Pseudo})
	}
	return m, nil
}

func nextFilter(f compare.Filter) compare.Filter {
	for i, candidate := range compare.Filters {
		if candidate == f {
			return compare.Filters[(i+1)%len(compare.Filters)]
		}
	}
	return compare.FilterAll
}

func (m mainLoopModel) viewMap() (string, string) {
	if m.selecting {
		return m.viewTargetSelect()
	}

	s := m.mapState
	markers := s.Markers()

	var b strings.Builder
	b.WriteString(formRow("Filtre", s.Filter.Label()))
	switch {
	case s.Comparing():
		b.WriteString(formRow("Comparaison", s.TargetPseudo))
	case s.Target != "":
		b.WriteString(formRow("Comparaison", s.TargetPseudo+" "+m.spinner.View()))
	default:
		b.WriteString(formRow("Comparaison", "-"))
	}
	if s.Err != "" {
		b.WriteString(errorStyle.Render(s.Err))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(markers) == 0 {
		b.WriteString(helpStyle.Render("Aucun col à afficher."))
		b.WriteString("\n")
	}

	start := 0
	if m.mapIdx >= mapPageSize {
		start = m.mapIdx - mapPageSize + 1
	}
	end := min(start+mapPageSize, len(markers))
	for i := start; i < end; i++ {
		mk := markers[i]
		pin := " "
		if mk.Pinned {
			pin = pinStyle.Render("★")
		}
		b.WriteString(fmt.Sprintf("%s %s %s %-28s %5d m  %-12s %s\n",
			cursor(i == m.mapIdx), dot(mk.Color), pin,
			fitText(mk.Col.Name, 28), mk.Col.Altitude, fitText(mk.Col.Country, 12), mk.Col.Coordinates()))
	}
	if len(markers) > mapPageSize {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d / %d", m.mapIdx+1, len(markers))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLegend(s.Comparing(), s.TargetPseudo, compare.Counts(markers)))

	hotKeys := "↑/↓ : naviguer │ f : filtre │ c : comparer │ x : fin comparaison │ p : épingler │ a : gravi aujourd'hui │ y : copier coordonnées"
	return b.String(), hotKeys
}

func renderLegend(comparing bool, otherPseudo string, counts map[models.MarkerState]int) string {
	var b strings.Builder
	for _, entry := range compare.Legend(comparing, otherPseudo) {
		b.WriteString(fmt.Sprintf("%s %s (%d)\n", dot(entry.Color), entry.Label, counts[entry.State]))
	}
	return b.String()
}

func (m mainLoopModel) viewTargetSelect() (string, string) {
	users := m.explorer.Visible()

	var b strings.Builder
	b.WriteString("Comparer avec :\n\n")
	if len(users) == 0 {
		b.WriteString(helpStyle.Render("Aucun autre cycliste."))
		b.WriteString("\n")
	}
	for i, u := range users {
		b.WriteString(fmt.Sprintf("%s %-20s %4d cols\n", cursor(i == m.selectIdx), fitText(u.Pseudo, 20), u.ColsClimbed))
	}
	return b.String(), "↑/↓ : naviguer │ enter : comparer │ esc : annuler"
}
