package ui

// Label is a single line of static text.
type Label struct {
	Base
	text  string
	style Style
}

// NewLabel creates a label with the default style.
func NewLabel(text string) *Label {
	return &Label{text: text, style: DefaultStyle()}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetStyle replaces the label style.
func (l *Label) SetStyle(style Style) {
	l.style = style
}

func (l *Label) Draw(s Surface) {
	r := l.Rect()
	if r.IsEmpty() {
		return
	}
	s.SetString(r.X, r.Y, clipText(l.text, r.W), l.style)
}

// clipText truncates a string to at most width cells, marking the cut
// with an ellipsis when it fits.
func clipText(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width < 1 {
		return ""
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
