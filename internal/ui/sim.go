package ui

import "strings"

// Sim is an in-memory Screen for tests. It records cells, cursor
// state, and queued events without touching a terminal.
type Sim struct {
	width, height int
	runes         [][]rune
	styles        [][]Style
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
	beeps         int
}

// NewSim creates a simulated screen with the given dimensions.
func NewSim(width, height int) *Sim {
	s := &Sim{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	s.allocate()
	return s
}

func (s *Sim) allocate() {
	s.runes = make([][]rune, s.height)
	s.styles = make([][]Style, s.height)
	for y := range s.runes {
		s.runes[y] = make([]rune, s.width)
		s.styles[y] = make([]Style, s.width)
		for x := range s.runes[y] {
			s.runes[y][x] = ' '
			s.styles[y][x] = DefaultStyle()
		}
	}
}

func (s *Sim) Init() error { return nil }
func (s *Sim) Fini()       {}

func (s *Sim) Size() (int, int) {
	return s.width, s.height
}

func (s *Sim) SetCell(x, y int, r rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.runes[y][x] = r
	s.styles[y][x] = style
}

func (s *Sim) SetString(x, y int, str string, style Style) {
	if y < 0 || y >= s.height {
		return
	}
	setStringClipped(s.SetCell, s.width, x, y, str, style)
}

func (s *Sim) Fill(rect Rect, r rune, style Style) {
	clipped := rect.Intersect(Rect{W: s.width, H: s.height})
	for y := clipped.Y; y < clipped.Y+clipped.H; y++ {
		for x := clipped.X; x < clipped.X+clipped.W; x++ {
			s.runes[y][x] = r
			s.styles[y][x] = style
		}
	}
}

func (s *Sim) Clear() {
	s.allocate()
}

func (s *Sim) Show() {}

func (s *Sim) ShowCursor(x, y int) {
	s.cursorX = x
	s.cursorY = y
	s.cursorVisible = true
}

func (s *Sim) HideCursor() {
	s.cursorVisible = false
}

func (s *Sim) PollEvent() Event {
	return <-s.events
}

func (s *Sim) PostEvent(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}

func (s *Sim) Beep() {
	s.beeps++
}

// Row returns the text content of one row, right-trimmed. Test helper.
func (s *Sim) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	return strings.TrimRight(string(s.runes[y]), " ")
}

// StyleAt returns the style of one cell. Test helper.
func (s *Sim) StyleAt(x, y int) Style {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return DefaultStyle()
	}
	return s.styles[y][x]
}

// CursorPosition returns cursor state. Test helper.
func (s *Sim) CursorPosition() (x, y int, visible bool) {
	return s.cursorX, s.cursorY, s.cursorVisible
}

// Resize changes the simulated dimensions and posts a resize event.
func (s *Sim) Resize(width, height int) {
	s.width = width
	s.height = height
	s.allocate()
	s.PostEvent(ResizeEvent(width, height))
}
