package ui

import "github.com/dshills/cutline/internal/input/key"

// Button is a pressable label. Enter or Space activates it while
// focused, as does a left mouse press.
type Button struct {
	Base
	label   string
	theme   Theme
	onPress func()
}

// NewButton creates a button invoking onPress when activated.
func NewButton(label string, onPress func()) *Button {
	return &Button{label: label, theme: DefaultTheme(), onPress: onPress}
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

func (b *Button) Focusable() bool { return true }

func (b *Button) Draw(s Surface) {
	r := b.Rect()
	if r.IsEmpty() {
		return
	}

	style := b.theme.Button
	if b.Focused() {
		style = b.theme.ButtonFocus
	}

	text := "[ " + b.label + " ]"
	s.SetString(r.X, r.Y, clipText(text, r.W), style)
}

func (b *Button) HandleKey(combo key.Combo) bool {
	if !combo.Modifiers.IsEmpty() {
		return false
	}
	if combo.Key == key.KeyEnter || combo.Key == key.KeySpace {
		b.press()
		return true
	}
	return false
}

func (b *Button) HandleMouse(x, y int, button MouseButton) bool {
	if button == MouseLeft && b.Rect().Contains(x, y) {
		b.press()
		return true
	}
	return false
}

func (b *Button) press() {
	if b.onPress != nil {
		b.onPress()
	}
}
