package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitKeyReturnsQuit(t *testing.T) {
	m := newREPLModel()

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateEnterTokenizesInput(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("port = 8080;")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.isErr {
		t.Fatalf("unexpected error flag for valid input: %q", entry.output)
	}
	for _, want := range []string{"NAME", "EQUALS", "INTEGER", "SEMICOLON"} {
		if !strings.Contains(entry.output, want) {
			t.Fatalf("rendered output missing %q:\n%s", want, entry.output)
		}
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after tokenize")
	}
}

func TestUpdateEnterFlagsScanErrors(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(`s = "unterminated`)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	if !rm.history[0].isErr {
		t.Fatalf("error flag not set for unterminated string")
	}
	if !strings.Contains(rm.history[0].output, "unterminated string") {
		t.Fatalf("missing diagnostic text:\n%s", rm.history[0].output)
	}
}

func TestUpdateHistoryNavigation(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("a = 1;")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(replModel)
	m.textInput.SetValue("b = 2;")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(replModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(replModel)
	if m.textInput.Value() != "b = 2;" {
		t.Fatalf("expected most recent input, got %q", m.textInput.Value())
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(replModel)
	if m.textInput.Value() != "a = 1;" {
		t.Fatalf("expected older input, got %q", m.textInput.Value())
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(replModel)
	if m.textInput.Value() != "b = 2;" {
		t.Fatalf("expected newer input, got %q", m.textInput.Value())
	}
}

func TestTokenizeEmptyResult(t *testing.T) {
	out, isErr := tokenize("# just a comment")
	if isErr {
		t.Fatalf("comment-only input flagged as error")
	}
	if !strings.Contains(out, "no tokens") {
		t.Fatalf("expected placeholder output, got %q", out)
	}
}
