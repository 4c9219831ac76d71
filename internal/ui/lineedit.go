package ui

import "github.com/dshills/cutline/internal/input/key"

// LineEdit is a single-line text input with cursor movement and a
// placeholder shown while empty.
type LineEdit struct {
	Base
	text        []rune
	cursor      int
	scroll      int
	placeholder string
	theme       Theme
	onChange    func(text string)
}

// NewLineEdit creates an empty input. onChange fires after every edit
// and may be nil.
func NewLineEdit(placeholder string, onChange func(text string)) *LineEdit {
	return &LineEdit{placeholder: placeholder, theme: DefaultTheme(), onChange: onChange}
}

// Text returns the current content.
func (e *LineEdit) Text() string {
	return string(e.text)
}

// SetText replaces the content and moves the cursor to the end.
// onChange does not fire for programmatic changes.
func (e *LineEdit) SetText(text string) {
	e.text = []rune(text)
	e.cursor = len(e.text)
}

func (e *LineEdit) Focusable() bool { return true }

func (e *LineEdit) Draw(s Surface) {
	r := e.Rect()
	if r.IsEmpty() {
		return
	}

	s.Fill(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, ' ', e.theme.Input)

	if len(e.text) == 0 && !e.Focused() {
		s.SetString(r.X, r.Y, clipText(e.placeholder, r.W), e.theme.Placeholder)
		return
	}

	e.adjustScroll(r.W)
	visible := e.text[e.scroll:]
	if len(visible) > r.W {
		visible = visible[:r.W]
	}
	s.SetString(r.X, r.Y, string(visible), e.theme.Input)

	if e.Focused() {
		s.ShowCursor(r.X+e.cursor-e.scroll, r.Y)
	}
}

// adjustScroll keeps the cursor inside the visible window.
func (e *LineEdit) adjustScroll(width int) {
	if width < 1 {
		return
	}
	if e.cursor < e.scroll {
		e.scroll = e.cursor
	}
	if e.cursor >= e.scroll+width {
		e.scroll = e.cursor - width + 1
	}
}

func (e *LineEdit) HandleKey(combo key.Combo) bool {
	switch {
	case combo.IsRune() && (combo.Modifiers.IsEmpty() || combo.Modifiers == key.ModShift):
		e.insert(combo.Rune)
		return true
	case combo.Key == key.KeySpace && combo.Modifiers.IsEmpty():
		e.insert(' ')
		return true
	}

	if !combo.Modifiers.IsEmpty() {
		return false
	}

	switch combo.Key {
	case key.KeyBackspace:
		if e.cursor > 0 {
			e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
			e.cursor--
			e.changed()
		}
		return true
	case key.KeyDelete:
		if e.cursor < len(e.text) {
			e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
			e.changed()
		}
		return true
	case key.KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
		return true
	case key.KeyRight:
		if e.cursor < len(e.text) {
			e.cursor++
		}
		return true
	case key.KeyHome:
		e.cursor = 0
		return true
	case key.KeyEnd:
		e.cursor = len(e.text)
		return true
	}
	return false
}

func (e *LineEdit) HandleMouse(x, y int, button MouseButton) bool {
	if button != MouseLeft || !e.Rect().Contains(x, y) {
		return false
	}
	pos := e.scroll + x - e.Rect().X
	if pos > len(e.text) {
		pos = len(e.text)
	}
	e.cursor = pos
	return true
}

func (e *LineEdit) insert(r rune) {
	e.text = append(e.text[:e.cursor], append([]rune{r}, e.text[e.cursor:]...)...)
	e.cursor++
	e.changed()
}

func (e *LineEdit) changed() {
	if e.onChange != nil {
		e.onChange(string(e.text))
	}
}
