package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabNavigationWraps(t *testing.T) {
	m := New(nil, nil, nil)

	var model tea.Model = m
	for i := 0; i < int(tabCount); i++ {
		model, _ = model.(Model).handleKey(keyRune('l'))
	}
	if got := model.(Model).active; got != tabPlanner {
		t.Fatalf("expected wrap back to planner, got %v", got)
	}

	model, _ = model.(Model).handleKey(keyRune('h'))
	if got := model.(Model).active; got != tabInsight {
		t.Fatalf("expected backwards wrap to insight, got %v", got)
	}
}

func TestQuickNoteInputToggle(t *testing.T) {
	m := New(nil, nil, nil)

	model, _ := m.handleKey(keyRune('n'))
	if !model.(Model).inputActive {
		t.Fatal("expected input to open on n")
	}

	model, _ = model.(Model).handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(Model).inputActive {
		t.Fatal("expected esc to close the input")
	}
}

func TestQuitKey(t *testing.T) {
	m := New(nil, nil, nil)
	_, cmd := m.handleKey(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
