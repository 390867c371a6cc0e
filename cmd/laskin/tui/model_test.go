package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laskin-lang/laskin/engine"
)

func TestNewModel(t *testing.T) {
	ctx := engine.NewContext()
	m := New(ctx)
	if m.quitting {
		t.Error("a fresh model should not be quitting")
	}
	if len(m.history) != 0 {
		t.Error("a fresh model should have no history")
	}
}

func TestHandleKeyCtrlC(t *testing.T) {
	m := New(engine.NewContext())
	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	result := newModel.(Model)

	if !result.quitting {
		t.Error("ctrl+c should set quitting=true")
	}
	if cmd == nil {
		t.Error("ctrl+c should return the quit command")
	}
}

func TestEvaluateUpdatesHistory(t *testing.T) {
	m := New(engine.NewContext())
	m.input.SetValue("1 2 + .")

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := newModel.(Model)

	if len(result.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(result.history))
	}
	if result.history[0].Output != "3\n" {
		t.Errorf("unexpected output %q", result.history[0].Output)
	}
	if result.history[0].IsError {
		t.Error("successful evaluation should not be marked an error")
	}
	if result.history[0].ID == "" {
		t.Error("history entry should have a non-empty ID")
	}
}

func TestEvaluateRecordsErrors(t *testing.T) {
	m := New(engine.NewContext())
	m.input.SetValue("nonexistent-word")

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := newModel.(Model)

	if len(result.history) != 1 || !result.history[0].IsError {
		t.Fatal("an unknown word should produce an error history entry")
	}
}

func TestQuitWordEndsTheProgram(t *testing.T) {
	m := New(engine.NewContext())
	m.input.SetValue("quit")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := newModel.(Model)

	if !result.quitting {
		t.Error("the quit word should set quitting=true")
	}
	if cmd == nil {
		t.Error("the quit word should return the quit command")
	}
	if len(result.history) != 0 {
		t.Error("quitting should not append a history entry")
	}
}

func TestDictionaryKeysSorted(t *testing.T) {
	m := New(engine.NewContext())
	keys := m.dictionaryKeys()
	if len(keys) == 0 {
		t.Fatal("a fresh context should have built-in words defined")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("dictionary keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
