package tui

// errorOverlayModel covers the main loop until enter or esc dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Erreur") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc : fermer")
	return overlayBoxStyle.Render(content)
}
