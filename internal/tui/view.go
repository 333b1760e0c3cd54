// ABOUTME: View rendering for the TUI (converts model state to terminal output)
// ABOUTME: Implements the Elm architecture View function

package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.chatView.View(),
		m.inputArea.View(),
	)

	var row string
	if m.sidebarVisible {
		row = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	} else {
		row = main
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, m.statusBar.View())
}
