package ui

// Panel draws a border and title around one child widget.
type Panel struct {
	Base
	title string
	child Widget
	theme Theme
}

// NewPanel creates a titled panel around a child. The child may be
// nil for an empty framed region.
func NewPanel(title string, child Widget) *Panel {
	return &Panel{title: title, child: child, theme: DefaultTheme()}
}

// SetTitle replaces the panel title.
func (p *Panel) SetTitle(title string) {
	p.title = title
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}

// Children returns the wrapped child, if any.
func (p *Panel) Children() []Widget {
	if p.child == nil {
		return nil
	}
	return []Widget{p.child}
}

// SetRect assigns the region and lays out the child inside the border.
func (p *Panel) SetRect(r Rect) {
	p.Base.SetRect(r)
	if p.child != nil {
		p.child.SetRect(r.Inset(1))
	}
}

func (p *Panel) Draw(s Surface) {
	r := p.Rect()
	if r.IsEmpty() {
		return
	}

	drawBorder(s, r, p.theme.Border)

	if p.title != "" && r.W > 4 {
		title := " " + clipText(p.title, r.W-4) + " "
		s.SetString(r.X+1, r.Y, title, p.theme.Title)
	}

	if p.child != nil && !p.child.Rect().IsEmpty() {
		p.child.Draw(s)
	}
}

// HandleMouse forwards presses inside the border to the child.
func (p *Panel) HandleMouse(x, y int, button MouseButton) bool {
	if p.child != nil && p.child.Rect().Contains(x, y) {
		return p.child.HandleMouse(x, y, button)
	}
	return false
}

// drawBorder draws a single-line box around the rectangle's edge.
func drawBorder(s Surface, r Rect, style Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1

	for x := r.X + 1; x < right; x++ {
		s.SetCell(x, r.Y, '─', style)
		s.SetCell(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetCell(r.X, y, '│', style)
		s.SetCell(right, y, '│', style)
	}
	s.SetCell(r.X, r.Y, '┌', style)
	s.SetCell(right, r.Y, '┐', style)
	s.SetCell(r.X, bottom, '└', style)
	s.SetCell(right, bottom, '┘', style)
}
