package ui

import (
	"testing"

	"github.com/dshills/cutline/internal/input/key"
)

func typeString(e *LineEdit, s string) {
	for _, r := range s {
		if r == ' ' {
			e.HandleKey(key.Combo{Key: key.KeySpace})
			continue
		}
		e.HandleKey(key.NewRuneCombo(r, 0))
	}
}

func TestLineEditTyping(t *testing.T) {
	var changes []string
	e := NewLineEdit("", func(text string) { changes = append(changes, text) })

	typeString(e, "cut")

	if got := e.Text(); got != "cut" {
		t.Errorf("Text = %q, want cut", got)
	}
	if len(changes) != 3 || changes[2] != "cut" {
		t.Errorf("changes = %v", changes)
	}
}

func TestLineEditBackspaceAndDelete(t *testing.T) {
	e := NewLineEdit("", nil)
	typeString(e, "abc")

	e.HandleKey(key.Combo{Key: key.KeyBackspace})
	if got := e.Text(); got != "ab" {
		t.Errorf("after backspace Text = %q, want ab", got)
	}

	e.HandleKey(key.Combo{Key: key.KeyHome})
	e.HandleKey(key.Combo{Key: key.KeyDelete})
	if got := e.Text(); got != "b" {
		t.Errorf("after delete Text = %q, want b", got)
	}

	// Backspace at the start is a no-op.
	e.HandleKey(key.Combo{Key: key.KeyBackspace})
	if got := e.Text(); got != "b" {
		t.Errorf("Text = %q, want b", got)
	}
}

func TestLineEditCursorInsert(t *testing.T) {
	e := NewLineEdit("", nil)
	typeString(e, "ac")

	e.HandleKey(key.Combo{Key: key.KeyLeft})
	typeString(e, "b")

	if got := e.Text(); got != "abc" {
		t.Errorf("Text = %q, want abc", got)
	}
}

func TestLineEditPlaceholder(t *testing.T) {
	e := NewLineEdit("Search…", nil)
	e.SetRect(Rect{W: 20, H: 1})

	s := NewSim(20, 1)
	e.Draw(s)

	if got := s.Row(0); got != "Search…" {
		t.Errorf("row = %q, want placeholder", got)
	}

	typeString(e, "x")
	s.Clear()
	e.Draw(s)
	if got := s.Row(0); got != "x" {
		t.Errorf("row = %q, want x", got)
	}
}

func TestLineEditIgnoresChords(t *testing.T) {
	e := NewLineEdit("", nil)

	if e.HandleKey(key.NewRuneCombo('s', key.ModCtrl)) {
		t.Error("Ctrl+S consumed by line edit")
	}
	if got := e.Text(); got != "" {
		t.Errorf("Text = %q, want empty", got)
	}
}
