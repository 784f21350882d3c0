package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.buildTitle()
	status := m.buildStatus()

	var body string
	switch m.mode {
	case modeSelectGame:
		body = lipgloss.JoinVertical(lipgloss.Left,
			promptStyle.Render("Select your game's storePS<gamename>PSstate file:"),
			m.picker.View(),
			hintStyle.Render("enter to select • esc to cancel"),
		)
	case modeLoadSave:
		body = lipgloss.JoinVertical(lipgloss.Left,
			promptStyle.Render("Load save file:"),
			m.picker.View(),
			hintStyle.Render("enter to load • esc to cancel"),
		)
	case modeNameSave:
		body = lipgloss.JoinVertical(lipgloss.Left,
			promptStyle.Render("Save name:"),
			inputBoxStyle.Width(m.width-4).Render(m.nameInput.View()),
			hintStyle.Render("enter to save • esc to cancel"),
		)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			logBoxStyle.Width(m.width-2).Render(m.viewport.View()),
			m.help.View(m.keys),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, status, body)
}

func (m *model) buildTitle() string {
	title := "CoG Saver"
	if name := m.session.DisplayName(); name != "" {
		title = fmt.Sprintf("CoG Saver - %s", name)
	}
	return titleStyle.Render(title)
}

func (m *model) buildStatus() string {
	if !m.session.Selected() {
		return statusBarStyle.Render(errorStyle.Render("No game selected"))
	}
	return statusBarStyle.Render(fmt.Sprintf("Live save: %s", m.session.LiveSave()))
}
