package ui

// Splitter holds two panes separated by a one-cell divider. The split
// ratio gives the first pane's share of the available space.
type Splitter struct {
	Base
	vertical bool
	first    Widget
	second   Widget
	ratio    float64
	theme    Theme
}

// NewHSplitter creates a splitter with panes side by side.
func NewHSplitter(first, second Widget, ratio float64) *Splitter {
	return newSplitter(false, first, second, ratio)
}

// NewVSplitter creates a splitter with panes stacked vertically.
func NewVSplitter(first, second Widget, ratio float64) *Splitter {
	return newSplitter(true, first, second, ratio)
}

func newSplitter(vertical bool, first, second Widget, ratio float64) *Splitter {
	s := &Splitter{
		vertical: vertical,
		first:    first,
		second:   second,
		theme:    DefaultTheme(),
	}
	s.setRatio(ratio)
	return s
}

// SetRatio changes the first pane's share and relays out.
func (s *Splitter) SetRatio(ratio float64) {
	s.setRatio(ratio)
	s.SetRect(s.Rect())
}

func (s *Splitter) setRatio(ratio float64) {
	if ratio < 0.1 {
		ratio = 0.1
	}
	if ratio > 0.9 {
		ratio = 0.9
	}
	s.ratio = ratio
}

// Ratio returns the first pane's share.
func (s *Splitter) Ratio() float64 {
	return s.ratio
}

// Children returns the two panes.
func (s *Splitter) Children() []Widget {
	return []Widget{s.first, s.second}
}

// SetRect assigns the region and lays out panes around the divider.
func (s *Splitter) SetRect(r Rect) {
	s.Base.SetRect(r)

	axis := r.W
	if s.vertical {
		axis = r.H
	}
	if axis < 3 {
		s.first.SetRect(Rect{})
		s.second.SetRect(Rect{})
		return
	}

	firstSize := int(float64(axis-1) * s.ratio)
	if firstSize < 1 {
		firstSize = 1
	}
	if firstSize > axis-2 {
		firstSize = axis - 2
	}
	secondSize := axis - 1 - firstSize

	if s.vertical {
		s.first.SetRect(Rect{X: r.X, Y: r.Y, W: r.W, H: firstSize})
		s.second.SetRect(Rect{X: r.X, Y: r.Y + firstSize + 1, W: r.W, H: secondSize})
	} else {
		s.first.SetRect(Rect{X: r.X, Y: r.Y, W: firstSize, H: r.H})
		s.second.SetRect(Rect{X: r.X + firstSize + 1, Y: r.Y, W: secondSize, H: r.H})
	}
}

// Draw renders both panes and the divider line.
func (s *Splitter) Draw(surf Surface) {
	r := s.Rect()
	if r.IsEmpty() {
		return
	}

	if !s.first.Rect().IsEmpty() {
		s.first.Draw(surf)
	}
	if !s.second.Rect().IsEmpty() {
		s.second.Draw(surf)
	}

	if s.vertical {
		y := s.first.Rect().Y + s.first.Rect().H
		for x := r.X; x < r.X+r.W; x++ {
			surf.SetCell(x, y, '─', s.theme.Border)
		}
	} else {
		x := s.first.Rect().X + s.first.Rect().W
		for y := r.Y; y < r.Y+r.H; y++ {
			surf.SetCell(x, y, '│', s.theme.Border)
		}
	}
}

// HandleMouse forwards the press to the pane under the cursor.
func (s *Splitter) HandleMouse(x, y int, button MouseButton) bool {
	if s.first.Rect().Contains(x, y) {
		return s.first.HandleMouse(x, y, button)
	}
	if s.second.Rect().Contains(x, y) {
		return s.second.HandleMouse(x, y, button)
	}
	return false
}
