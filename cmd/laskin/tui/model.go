// Package tui implements the read-only stack/dictionary viewer: it
// drives an engine.Context through the same ExecuteSource entrypoint the
// CLI/REPL uses, and renders whatever Context.Stack and
// Context.Dictionary already expose. It implements no language semantics
// of its own.
package tui

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/laskin-lang/laskin/cmd/laskin/config"
	"github.com/laskin-lang/laskin/engine"
)

// HistoryEntry pairs one evaluated line with its rendered output, tagged
// with a stable ID for the scrolling history view.
type HistoryEntry struct {
	ID      string
	Input   string
	Output  string
	IsError bool
}

// Model is the bubbletea root model for the viewer.
type Model struct {
	ctx     *engine.Context
	input   textinput.Model
	history []HistoryEntry

	styles config.Styles

	// showBase appends the base-unit magnitude next to unit-bearing
	// numbers in the stack panel, for eyeballing renormalization.
	showBase bool

	width, height int
	quitting      bool
}

// New builds a Model around an already-constructed context; the context
// may already have words defined and values on its stack. Configuration
// is loaded on first use, so New works standalone as well as behind the
// CLI front-end.
func New(ctx *engine.Context) Model {
	cfg, _ := config.Load()
	var styles config.Styles
	showBase := false
	if cfg != nil {
		styles = config.GetStyles()
		showBase = cfg.Formatter.ShowRational
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "1 2 + ."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		ctx:      ctx,
		input:    ti,
		styles:   styles,
		showBase: showBase,
		width:    96,
		height:   28,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.evaluate(m.input.Value()) {
				m.quitting = true
				m.input.SetValue("")
				return m, tea.Quit
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs line against the shared context and appends a history
// entry. It reports whether the context asked to quit (the "quit" word).
func (m *Model) evaluate(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	var out strings.Builder
	err := m.ctx.ExecuteSource(line, 1, &out)
	entry := HistoryEntry{ID: uuid.NewString(), Input: line, Output: out.String()}

	var quit *engine.QuitError
	if errors.As(err, &quit) {
		return true
	}
	if err != nil {
		entry.Output = err.Error()
		entry.IsError = true
	}
	m.history = append(m.history, entry)
	return false
}

// Quitting reports whether the model wants the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// dictionaryKeys returns the context's dictionary keys sorted for stable
// display; the dictionary itself carries no ordering (engine.Context.dict
// is a map).
func (m Model) dictionaryKeys() []string {
	dict := m.ctx.Dictionary()
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
