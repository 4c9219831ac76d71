package ui

// Color is a terminal color. ColorDefault keeps the terminal's own
// color; values 0-255 address the 256-color palette.
type Color int32

// ColorDefault uses the terminal default.
const ColorDefault Color = -1

// Common palette entries.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Attr is a bitmask of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has returns true if the mask contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Style pairs colors with attributes for one cell.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{Fg: ColorDefault, Bg: ColorDefault}
}

// Bold returns a copy with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs = s.Attrs | AttrBold
	return s
}

// Dim returns a copy with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs = s.Attrs | AttrDim
	return s
}

// Underline returns a copy with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs = s.Attrs | AttrUnderline
	return s
}

// Reverse returns a copy with foreground and background swapped.
func (s Style) Reverse() Style {
	s.Attrs = s.Attrs | AttrReverse
	return s
}

// WithFg returns a copy with the foreground replaced.
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a copy with the background replaced.
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// Theme collects the styles widgets draw with. A zero Theme is not
// usable; start from DefaultTheme.
type Theme struct {
	Base        Style
	Title       Style
	Border      Style
	Selected    Style
	Focused     Style
	Button      Style
	ButtonFocus Style
	Input       Style
	Placeholder Style
	Overlay     Style
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	base := DefaultStyle()
	return Theme{
		Base:        base,
		Title:       base.Bold(),
		Border:      base.Dim(),
		Selected:    base.Reverse(),
		Focused:     base.WithFg(ColorCyan),
		Button:      base,
		ButtonFocus: base.Reverse(),
		Input:       base,
		Placeholder: base.Dim(),
		Overlay:     base.WithBg(ColorBlack),
	}
}
