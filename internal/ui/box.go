package ui

// SizeSpec controls how a box child shares the axis. A fixed spec
// claims an exact cell count; a stretch spec shares leftover space in
// proportion to its weight.
type SizeSpec struct {
	fixed   int
	stretch int
}

// Fixed returns a spec claiming exactly n cells.
func Fixed(n int) SizeSpec {
	return SizeSpec{fixed: n}
}

// Stretch returns a spec sharing leftover space with the given weight.
func Stretch(weight int) SizeSpec {
	if weight < 1 {
		weight = 1
	}
	return SizeSpec{stretch: weight}
}

type boxItem struct {
	widget Widget
	spec   SizeSpec
}

// Box lays out children along one axis. Fixed children get their
// exact size; stretch children split what remains by weight.
type Box struct {
	Base
	vertical bool
	items    []boxItem
}

// NewVBox creates a box stacking children top to bottom.
func NewVBox() *Box {
	return &Box{vertical: true}
}

// NewHBox creates a box placing children left to right.
func NewHBox() *Box {
	return &Box{}
}

// Add appends a child with its size spec.
func (b *Box) Add(w Widget, spec SizeSpec) {
	b.items = append(b.items, boxItem{widget: w, spec: spec})
}

// Children returns the child widgets in layout order.
func (b *Box) Children() []Widget {
	out := make([]Widget, len(b.items))
	for i, item := range b.items {
		out[i] = item.widget
	}
	return out
}

// SetRect assigns the region and lays out the children.
func (b *Box) SetRect(r Rect) {
	b.Base.SetRect(r)

	axis := r.W
	if b.vertical {
		axis = r.H
	}

	sizes := splitAxis(axis, b.items)

	offset := 0
	for i, item := range b.items {
		if b.vertical {
			item.widget.SetRect(Rect{X: r.X, Y: r.Y + offset, W: r.W, H: sizes[i]})
		} else {
			item.widget.SetRect(Rect{X: r.X + offset, Y: r.Y, W: sizes[i], H: r.H})
		}
		offset += sizes[i]
	}
}

// splitAxis divides the axis length among the items. Fixed items are
// satisfied first; stretch items share the remainder by weight, with
// leftover cells going to the earliest stretch items.
func splitAxis(axis int, items []boxItem) []int {
	sizes := make([]int, len(items))

	remaining := axis
	totalWeight := 0
	for i, item := range items {
		if item.spec.stretch == 0 {
			size := min(item.spec.fixed, remaining)
			if size < 0 {
				size = 0
			}
			sizes[i] = size
			remaining -= size
		} else {
			totalWeight += item.spec.stretch
		}
	}

	if totalWeight == 0 || remaining <= 0 {
		return sizes
	}

	share := remaining / totalWeight
	leftover := remaining - share*totalWeight
	for i, item := range items {
		if item.spec.stretch == 0 {
			continue
		}
		sizes[i] = share * item.spec.stretch
		if leftover > 0 {
			sizes[i]++
			leftover--
		}
	}
	return sizes
}

// Draw renders every child.
func (b *Box) Draw(s Surface) {
	for _, item := range b.items {
		if !item.widget.Rect().IsEmpty() {
			item.widget.Draw(s)
		}
	}
}

// HandleMouse forwards the press to the child under the cursor.
func (b *Box) HandleMouse(x, y int, button MouseButton) bool {
	for _, item := range b.items {
		if item.widget.Rect().Contains(x, y) {
			return item.widget.HandleMouse(x, y, button)
		}
	}
	return false
}
