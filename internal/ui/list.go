package ui

import "github.com/dshills/cutline/internal/input/key"

// List shows selectable rows of text with vertical scrolling.
type List struct {
	Base
	items    []string
	selected int
	scroll   int
	theme    Theme
	onSelect func(index int)
}

// NewList creates an empty list. onSelect fires when the selection
// moves and may be nil.
func NewList(onSelect func(index int)) *List {
	return &List{theme: DefaultTheme(), onSelect: onSelect}
}

// SetItems replaces the rows, clamping the selection.
func (l *List) SetItems(items []string) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.scroll = 0
}

// Items returns the current rows.
func (l *List) Items() []string {
	return l.items
}

// Selected returns the selected row index, -1 when empty.
func (l *List) Selected() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

// Select moves the selection to index if in range.
func (l *List) Select(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.selected = index
	l.notify()
}

func (l *List) Focusable() bool { return true }

func (l *List) Draw(s Surface) {
	r := l.Rect()
	if r.IsEmpty() {
		return
	}

	l.adjustScroll(r.H)

	for row := 0; row < r.H; row++ {
		idx := l.scroll + row
		if idx >= len(l.items) {
			break
		}
		style := l.theme.Base
		if idx == l.selected && l.Focused() {
			style = l.theme.Selected
		} else if idx == l.selected {
			style = l.theme.Base.Bold()
		}
		s.Fill(Rect{X: r.X, Y: r.Y + row, W: r.W, H: 1}, ' ', style)
		s.SetString(r.X, r.Y+row, clipText(l.items[idx], r.W), style)
	}
}

func (l *List) adjustScroll(height int) {
	if height < 1 {
		return
	}
	if l.selected < l.scroll {
		l.scroll = l.selected
	}
	if l.selected >= l.scroll+height {
		l.scroll = l.selected - height + 1
	}
}

func (l *List) HandleKey(combo key.Combo) bool {
	if !combo.Modifiers.IsEmpty() || len(l.items) == 0 {
		return false
	}

	switch combo.Key {
	case key.KeyUp:
		if l.selected > 0 {
			l.selected--
			l.notify()
		}
		return true
	case key.KeyDown:
		if l.selected < len(l.items)-1 {
			l.selected++
			l.notify()
		}
		return true
	case key.KeyHome:
		l.selected = 0
		l.notify()
		return true
	case key.KeyEnd:
		l.selected = len(l.items) - 1
		l.notify()
		return true
	}
	return false
}

func (l *List) HandleMouse(x, y int, button MouseButton) bool {
	r := l.Rect()
	if !r.Contains(x, y) {
		return false
	}

	switch button {
	case MouseLeft:
		idx := l.scroll + y - r.Y
		if idx < len(l.items) {
			l.selected = idx
			l.notify()
		}
		return true
	case MouseWheelUp:
		if l.scroll > 0 {
			l.scroll--
		}
		return true
	case MouseWheelDown:
		if l.scroll < len(l.items)-1 {
			l.scroll++
		}
		return true
	}
	return false
}

func (l *List) notify() {
	if l.onSelect != nil {
		l.onSelect(l.selected)
	}
}
