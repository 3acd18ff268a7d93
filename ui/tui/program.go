// Package tui renders a picker screen in the terminal with Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/pickers/screen"
)

// Run starts the interactive picker for s and blocks until the user quits.
func Run(s *screen.Screen, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(NewModel(s), opts...).Run()
	return err
}
