package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laskin-lang/laskin/engine"
)

// Run starts the viewer and blocks until the user quits it.
func Run(ctx *engine.Context) error {
	_, err := tea.NewProgram(New(ctx), tea.WithAltScreen()).Run()
	return err
}
