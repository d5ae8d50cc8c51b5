package statusui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the status dashboard program, blocking until the user quits.
func Run() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}
