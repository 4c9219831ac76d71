package ui

import "github.com/dshills/cutline/internal/input/key"

// Select cycles through a fixed set of options. Left and Right step
// the current option; the change callback fires on every step.
type Select struct {
	Base
	options  []string
	current  int
	theme    Theme
	onChange func(option string)
}

// NewSelect creates a selector over the options. onChange may be nil.
func NewSelect(options []string, onChange func(option string)) *Select {
	return &Select{options: options, theme: DefaultTheme(), onChange: onChange}
}

// SetOptions replaces the option set, keeping the current option when
// it survives.
func (sel *Select) SetOptions(options []string) {
	current := sel.Current()
	sel.options = options
	sel.current = 0
	for i, opt := range options {
		if opt == current {
			sel.current = i
			break
		}
	}
}

// Current returns the selected option, empty when there are none.
func (sel *Select) Current() string {
	if sel.current < 0 || sel.current >= len(sel.options) {
		return ""
	}
	return sel.options[sel.current]
}

// SetCurrent selects the named option if present. The change callback
// does not fire for programmatic selection.
func (sel *Select) SetCurrent(option string) {
	for i, opt := range sel.options {
		if opt == option {
			sel.current = i
			return
		}
	}
}

func (sel *Select) Focusable() bool { return true }

func (sel *Select) Draw(s Surface) {
	r := sel.Rect()
	if r.IsEmpty() {
		return
	}

	style := sel.theme.Base
	if sel.Focused() {
		style = sel.theme.Selected
	}

	text := "◂ " + sel.Current() + " ▸"
	s.Fill(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, ' ', style)
	s.SetString(r.X, r.Y, clipText(text, r.W), style)
}

func (sel *Select) HandleKey(combo key.Combo) bool {
	if !combo.Modifiers.IsEmpty() || len(sel.options) == 0 {
		return false
	}

	switch combo.Key {
	case key.KeyLeft:
		sel.step(-1)
		return true
	case key.KeyRight:
		sel.step(1)
		return true
	}
	return false
}

func (sel *Select) HandleMouse(x, y int, button MouseButton) bool {
	if button == MouseLeft && sel.Rect().Contains(x, y) {
		sel.step(1)
		return true
	}
	return false
}

func (sel *Select) step(delta int) {
	n := len(sel.options)
	sel.current = (sel.current + delta + n) % n
	if sel.onChange != nil {
		sel.onChange(sel.Current())
	}
}
