package ui

import (
	"testing"

	"github.com/dshills/cutline/internal/input/key"
)

func TestWindowFocusRing(t *testing.T) {
	first := NewButton("one", nil)
	second := NewButton("two", nil)
	box := NewVBox()
	box.Add(first, Fixed(1))
	box.Add(second, Fixed(1))

	w := NewWindow(box)
	w.Resize(40, 10)

	if w.Focused() != first {
		t.Fatal("initial focus not on first widget")
	}

	w.HandleEvent(KeyEvent(key.Combo{Key: key.KeyTab}))
	if w.Focused() != second {
		t.Error("Tab did not advance focus")
	}

	w.HandleEvent(KeyEvent(key.Combo{Key: key.KeyTab}))
	if w.Focused() != first {
		t.Error("focus ring did not wrap")
	}

	w.HandleEvent(KeyEvent(key.Combo{Key: key.KeyTab, Modifiers: key.ModShift}))
	if w.Focused() != second {
		t.Error("Shift+Tab did not step backwards")
	}
}

func TestWindowKeyDispatch(t *testing.T) {
	pressed := 0
	btn := NewButton("ok", func() { pressed++ })
	w := NewWindow(btn)
	w.Resize(20, 5)

	w.HandleEvent(KeyEvent(key.Combo{Key: key.KeyEnter}))
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}
}

func TestWindowModalTakesFocus(t *testing.T) {
	rootBtn := NewButton("root", nil)
	w := NewWindow(rootBtn)
	w.Resize(80, 24)

	modalBtn := NewButton("modal", nil)
	w.SetModal(modalBtn, 40, 10)

	if w.Focused() != modalBtn {
		t.Error("modal did not take focus")
	}

	// Modal is centered.
	r := modalBtn.Rect()
	if r.X != 20 || r.Y != 7 {
		t.Errorf("modal rect = %+v, want centered at 20,7", r)
	}

	w.ClearModal()
	if w.Focused() != rootBtn {
		t.Error("focus did not return to root after ClearModal")
	}
}

func TestWindowMouseFocusesWidget(t *testing.T) {
	first := NewButton("one", nil)
	second := NewButton("two", nil)
	box := NewVBox()
	box.Add(first, Fixed(1))
	box.Add(second, Fixed(1))

	w := NewWindow(box)
	w.Resize(40, 10)

	w.HandleEvent(Event{Type: EventMouse, MouseX: 2, MouseY: 1, Button: MouseLeft})
	if w.Focused() != second {
		t.Error("mouse press did not focus widget under cursor")
	}
}
