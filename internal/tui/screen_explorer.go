package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const profileRecent = 10

func (m mainLoopModel) updateExplorer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.profilePage != nil {
		return m.updateProfile(msg)
	}

	users := m.explorer.Visible()
	switch {
	case key.Matches(msg, keys.up):
		m.explorerIdx = clampIndex(m.explorerIdx-1, len(users))
	case key.Matches(msg, keys.down):
		m.explorerIdx = clampIndex(m.explorerIdx+1, len(users))
	case key.Matches(msg, keys.search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.favorites):
		return m.reduceExplorer(state.SetFavoritesOnly{On: !m.explorer.FavoritesOnly})
	case key.Matches(msg, keys.toggle):
		if len(users) == 0 {
			return m, nil
		}
		return m.reduceExplorer(state.ToggleFavorite{UserID: users[m.explorerIdx].UserID})
	case key.Matches(msg, keys.enter):
		if len(users) == 0 {
			return m, nil
		}
		cmd := m.cmdLoadProfile(users[m.explorerIdx].UserID)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter, keys.esc) {
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	next, reduceCmd := m.reduceExplorer(state.SetSearch{Term: m.search.Value()})
	return next, tea.Batch(cmd, reduceCmd)
}

func (m mainLoopModel) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.profilePage
	switch {
	case key.Matches(msg, keys.esc):
		m.profilePage = nil
	case key.Matches(msg, keys.compare):
		target := state.SetComparisonTarget{UserID: page.Profile.ID, Pseudo: page.Profile.Pseudo}
		m = m.switchTab(tabMap)
		return m.reduceMap(target)
	case key.Matches(msg, keys.toggle):
		if page.Profile.ID == m.profile.ID {
			return m, nil
		}
		return m.reduceExplorer(state.ToggleFavorite{UserID: page.Profile.ID})
	}
	return m, nil
}

func (m mainLoopModel) viewExplorer() (string, string) {
	if m.profilePage != nil {
		return m.viewProfile()
	}

	users := m.explorer.Visible()

	var b strings.Builder
	b.WriteString(formRow("Recherche", m.search.View()))
	filter := "tous"
	if m.explorer.FavoritesOnly {
		filter = "favoris"
	}
	b.WriteString(formRow("Afficher", filter))
	if m.explorer.Err != "" {
		b.WriteString(errorStyle.Render(m.explorer.Err))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(users) == 0 {
		b.WriteString(helpStyle.Render("Aucun cycliste trouvé."))
		b.WriteString("\n")
	}
	for i, u := range users {
		fav := " "
		if u.IsFavorite {
			fav = pinStyle.Render("★")
		}
		b.WriteString(fmt.Sprintf("%s %s %-20s %4d cols %5d ascensions %9s m\n",
			cursor(i == m.explorerIdx), fav, fitText(u.Pseudo, 20),
			u.ColsClimbed, u.AscentCount, stats.GroupThousands(u.TotalElevation)))
	}

	hotKeys := "↑/↓ : naviguer │ / : rechercher │ v : favoris │ p : suivre │ enter : profil"
	return b.String(), hotKeys
}

func (m mainLoopModel) viewProfile() (string, string) {
	page := m.profilePage

	var b strings.Builder
	title := page.Profile.DisplayName()
	if m.explorer.Favorites.Has(page.Profile.ID) {
		title += " " + pinStyle.Render("★")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(helpStyle.Render(" @" + page.Profile.Pseudo))
	b.WriteString("\n\n")
	b.WriteString(renderCards(stats.FromStatistics(page.Statistics, page.TotalCols).Cards()))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Dernières ascensions"))
	b.WriteString("\n")
	b.WriteString(renderAscensions(page.RecentAscensions, profileRecent, -1))

	return b.String(), "c : comparer sur la carte │ p : suivre │ esc : retour"
}
