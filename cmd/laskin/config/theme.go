package config

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-built lipgloss styles derived from theme config.
// This avoids rebuilding styles on every render call.
type Styles struct {
	Prompt    lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Hint      lipgloss.Style
	Header    lipgloss.Style
	Separator lipgloss.Style

	// GUI collaborator panel styles (cmd/laskin/tui).
	StackItem lipgloss.Style
	DictKey   lipgloss.Style
	Border    lipgloss.Style
}

// BuildStyles creates lipgloss.Style instances from ThemeConfig.
// Call this once after loading config, then reuse the Styles struct.
func (t ThemeConfig) BuildStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Output)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dimmed)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		StackItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Output)),

		DictKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Border: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Accent)).
			PaddingLeft(1),
	}
}
