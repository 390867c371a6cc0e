package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. It lays out a stack panel and a dictionary
// panel side by side above the scrolling history and input line: title
// bar, then content, then a help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.styles.Header.Width(m.width).Render("laskin — stack & dictionary viewer")
	b.WriteString(title)
	b.WriteString("\n")

	panelWidth := m.width/2 - 2
	if panelWidth < 20 {
		panelWidth = 20
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderStackPanel(panelWidth),
		m.renderDictionaryPanel(panelWidth),
	))
	b.WriteString("\n")

	b.WriteString(m.renderHistory())
	b.WriteString(m.input.View())
	b.WriteString("\n")

	separator := strings.Repeat("─", m.width)
	b.WriteString(m.styles.Separator.Render(separator))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter: evaluate · esc/ctrl+c: quit"))

	return b.String()
}

func (m Model) renderStackPanel(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Stack"))
	b.WriteString("\n")

	stack := m.ctx.Stack()
	if len(stack) == 0 {
		b.WriteString(m.styles.Hint.Render("(empty)"))
	} else {
		for i := len(stack) - 1; i >= 0; i-- {
			text := stack[i].ToString()
			if m.showBase && stack[i].IsNumber() && stack[i].Number().HasUnit() {
				if base := stack[i].Number().InBase(); base.String() != text {
					text = fmt.Sprintf("%s (= %s)", text, base.String())
				}
			}
			b.WriteString(m.styles.StackItem.Render(fmt.Sprintf("%2d: %s", i, text)))
			b.WriteString("\n")
		}
	}

	return m.styles.Border.Width(width).Render(b.String())
}

func (m Model) renderDictionaryPanel(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Dictionary"))
	b.WriteString("\n")

	keys := m.dictionaryKeys()
	if len(keys) > 20 {
		keys = keys[:20]
	}
	for _, k := range keys {
		b.WriteString(m.styles.DictKey.Render(k))
		b.WriteString("\n")
	}
	if len(m.ctx.Dictionary()) > 20 {
		b.WriteString(m.styles.Hint.Render(fmt.Sprintf("… %d more", len(m.ctx.Dictionary())-20)))
	}

	return m.styles.Border.Width(width).Render(b.String())
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return ""
	}

	var b strings.Builder
	start := 0
	if len(m.history) > 10 {
		start = len(m.history) - 10
	}
	for _, entry := range m.history[start:] {
		b.WriteString(m.styles.Prompt.Render("> " + entry.Input))
		b.WriteString("\n")
		if entry.IsError {
			b.WriteString(m.styles.Error.Render(entry.Output))
		} else {
			b.WriteString(m.styles.Output.Render(entry.Output))
		}
	}
	return b.String()
}
