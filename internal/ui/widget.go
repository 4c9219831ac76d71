package ui

import "github.com/dshills/cutline/internal/input/key"

// Widget is one element of the interface tree.
type Widget interface {
	// SetRect assigns the widget's screen region during layout.
	SetRect(r Rect)

	// Rect returns the widget's screen region.
	Rect() Rect

	// Draw renders the widget into its region.
	Draw(s Surface)

	// HandleKey processes a key chord. Returns true when consumed.
	HandleKey(combo key.Combo) bool

	// HandleMouse processes a mouse press at screen coordinates.
	// Returns true when consumed.
	HandleMouse(x, y int, button MouseButton) bool

	// Focusable reports whether the widget participates in the focus
	// ring.
	Focusable() bool

	// SetFocused marks the widget focused or unfocused.
	SetFocused(focused bool)

	// Focused reports the current focus state.
	Focused() bool
}

// Container is a widget holding child widgets. The window walks
// containers to build the focus ring and to route mouse events.
type Container interface {
	Widget
	Children() []Widget
}

// Base provides default Widget behavior for embedding. It is not
// focusable and consumes no events.
type Base struct {
	rect    Rect
	focused bool
}

func (b *Base) SetRect(r Rect) { b.rect = r }
func (b *Base) Rect() Rect     { return b.rect }

func (b *Base) Draw(Surface) {}

func (b *Base) HandleKey(key.Combo) bool               { return false }
func (b *Base) HandleMouse(int, int, MouseButton) bool { return false }

func (b *Base) Focusable() bool         { return false }
func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b *Base) Focused() bool           { return b.focused }

// walkWidgets visits the widget and every descendant depth first.
func walkWidgets(w Widget, visit func(Widget)) {
	visit(w)
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			walkWidgets(child, visit)
		}
	}
}
