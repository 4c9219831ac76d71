package ui

import "github.com/dshills/cutline/internal/input/key"

// Window owns the widget tree for one screen. It lays out the root,
// runs the focus ring, and dispatches events. A modal widget can be
// stacked on top; while present it receives all input.
type Window struct {
	root  Widget
	modal Widget

	// modalW and modalH size the centered modal.
	modalW, modalH int

	width, height int

	focusRing []Widget
	focusIdx  int
}

// NewWindow creates a window around a root widget.
func NewWindow(root Widget) *Window {
	w := &Window{root: root}
	w.rebuildFocus()
	return w
}

// Root returns the root widget.
func (w *Window) Root() Widget {
	return w.root
}

// Resize lays out the tree for new screen dimensions.
func (w *Window) Resize(width, height int) {
	w.width = width
	w.height = height
	w.root.SetRect(Rect{W: width, H: height})
	w.layoutModal()
}

// SetModal stacks a widget of the given size centered over the root.
// Focus moves into the modal until ClearModal.
func (w *Window) SetModal(modal Widget, width, height int) {
	w.modal = modal
	w.modalW = width
	w.modalH = height
	w.layoutModal()
	w.rebuildFocus()
}

// ClearModal removes the modal and returns focus to the root tree.
func (w *Window) ClearModal() {
	w.modal = nil
	w.rebuildFocus()
}

// Modal returns the active modal widget, nil when none.
func (w *Window) Modal() Widget {
	return w.modal
}

func (w *Window) layoutModal() {
	if w.modal == nil {
		return
	}
	mw := min(w.modalW, w.width)
	mh := min(w.modalH, w.height)
	w.modal.SetRect(Rect{
		X: (w.width - mw) / 2,
		Y: (w.height - mh) / 2,
		W: mw,
		H: mh,
	})
}

// Draw renders the root and any modal on top.
func (w *Window) Draw(s Surface) {
	s.HideCursor()
	w.root.Draw(s)
	if w.modal != nil {
		w.modal.Draw(s)
	}
}

// activeLayer returns the widget tree currently receiving input.
func (w *Window) activeLayer() Widget {
	if w.modal != nil {
		return w.modal
	}
	return w.root
}

// rebuildFocus collects the focusable widgets of the active layer and
// focuses the first one.
func (w *Window) rebuildFocus() {
	for _, widget := range w.focusRing {
		widget.SetFocused(false)
	}

	w.focusRing = w.focusRing[:0]
	walkWidgets(w.activeLayer(), func(widget Widget) {
		if widget.Focusable() {
			w.focusRing = append(w.focusRing, widget)
		}
	})

	w.focusIdx = 0
	if len(w.focusRing) > 0 {
		w.focusRing[0].SetFocused(true)
	}
}

// Focused returns the widget holding focus, nil when none.
func (w *Window) Focused() Widget {
	if len(w.focusRing) == 0 {
		return nil
	}
	return w.focusRing[w.focusIdx]
}

// Focus moves focus to the given widget if it is in the ring.
func (w *Window) Focus(target Widget) {
	for i, widget := range w.focusRing {
		if widget == target {
			w.focusRing[w.focusIdx].SetFocused(false)
			w.focusIdx = i
			widget.SetFocused(true)
			return
		}
	}
}

// FocusNext advances the focus ring.
func (w *Window) FocusNext() {
	w.cycleFocus(1)
}

// FocusPrev steps the focus ring backwards.
func (w *Window) FocusPrev() {
	w.cycleFocus(-1)
}

func (w *Window) cycleFocus(delta int) {
	n := len(w.focusRing)
	if n == 0 {
		return
	}
	w.focusRing[w.focusIdx].SetFocused(false)
	w.focusIdx = (w.focusIdx + delta + n) % n
	w.focusRing[w.focusIdx].SetFocused(true)
}

// HandleEvent dispatches one event into the tree. Returns true when
// consumed.
func (w *Window) HandleEvent(ev Event) bool {
	switch ev.Type {
	case EventResize:
		w.Resize(ev.Width, ev.Height)
		return true
	case EventKey:
		return w.handleKey(ev.Combo)
	case EventMouse:
		return w.handleMouse(ev)
	}
	return false
}

// KeyInterceptor is implemented by layer roots that must see chords
// before the focused widget, such as key-capture overlays.
type KeyInterceptor interface {
	// InterceptKey claims a chord ahead of normal dispatch. Returns
	// true when consumed.
	InterceptKey(combo key.Combo) bool
}

func (w *Window) handleKey(combo key.Combo) bool {
	if in, ok := w.activeLayer().(KeyInterceptor); ok && in.InterceptKey(combo) {
		return true
	}

	// Tab cycles focus unless the focused widget claims it.
	if combo.Key == key.KeyTab {
		if combo.Modifiers.IsEmpty() {
			w.FocusNext()
			return true
		}
		if combo.Modifiers == key.ModShift {
			w.FocusPrev()
			return true
		}
	}

	if focused := w.Focused(); focused != nil && focused.HandleKey(combo) {
		return true
	}

	// Unconsumed keys fall through to the layer root so dialogs can
	// react to Esc and shortcut chords regardless of focus.
	layer := w.activeLayer()
	if layer != w.Focused() {
		return layer.HandleKey(combo)
	}
	return false
}

func (w *Window) handleMouse(ev Event) bool {
	layer := w.activeLayer()
	if !layer.Rect().Contains(ev.MouseX, ev.MouseY) {
		return false
	}

	// Move focus to the focusable widget under the cursor.
	if ev.Button == MouseLeft {
		walkWidgets(layer, func(widget Widget) {
			if widget.Focusable() && widget.Rect().Contains(ev.MouseX, ev.MouseY) {
				w.Focus(widget)
			}
		})
	}

	return layer.HandleMouse(ev.MouseX, ev.MouseY, ev.Button)
}
