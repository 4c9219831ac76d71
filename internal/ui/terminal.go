package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cutline/internal/input/key"
)

// Terminal implements Screen on a real terminal via tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal screen. Init must be called before
// drawing.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, toTcellStyle(style))
}

func (t *Terminal) SetString(x, y int, s string, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	ts := toTcellStyle(style)
	setStringClipped(func(cx, cy int, r rune, _ Style) {
		t.screen.SetContent(cx, cy, r, nil, ts)
	}, width, x, y, s, style)
}

func (t *Terminal) Fill(rect Rect, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	clipped := rect.Intersect(Rect{W: width, H: height})
	ts := toTcellStyle(style)
	for y := clipped.Y; y < clipped.Y+clipped.H; y++ {
		for x := clipped.X; x < clipped.X+clipped.W; x++ {
			t.screen.SetContent(x, y, r, nil, ts)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks for the next terminal event and converts it.
// Events that do not map to a ui event are swallowed and polling
// continues.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			combo := key.FromTcell(ev)
			if combo.IsZero() {
				continue
			}
			return KeyEvent(combo)
		case *tcell.EventMouse:
			x, y := ev.Position()
			return Event{
				Type:   EventMouse,
				MouseX: x,
				MouseY: y,
				Button: fromTcellButtons(ev.Buttons()),
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
			return ResizeEvent(w, h)
		case nil:
			// Screen finalized.
			return Event{}
		}
	}
}

func (t *Terminal) PostEvent(ev Event) {
	if ev.Type == EventResize {
		_ = t.screen.PostEvent(tcell.NewEventResize(ev.Width, ev.Height))
	}
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep()
}

// toTcellStyle converts a Style to tcell's representation.
func toTcellStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Fg != ColorDefault {
		style = style.Foreground(tcell.PaletteColor(int(s.Fg)))
	}
	if s.Bg != ColorDefault {
		style = style.Background(tcell.PaletteColor(int(s.Bg)))
	}
	if s.Attrs.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attrs.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func fromTcellButtons(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
