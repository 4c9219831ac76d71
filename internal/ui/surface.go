package ui

// Surface is the drawing target widgets render into.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Out-of-range positions are ignored.
	SetCell(x, y int, r rune, style Style)

	// SetString writes a string left to right starting at the position,
	// clipped at the surface edge.
	SetString(x, y int, s string, style Style)

	// Fill fills a rectangle with the rune and style.
	Fill(rect Rect, r rune, style Style)

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()
}

// Screen extends Surface with lifecycle and input. The shell owns
// exactly one Screen for its lifetime.
type Screen interface {
	Surface

	// Init prepares the screen for use. Call before anything else.
	Init() error

	// Fini releases the screen and restores terminal state.
	Fini()

	// Clear blanks the whole surface with the default style.
	Clear()

	// Show flushes buffered drawing to the display.
	Show()

	// PollEvent blocks until the next input event.
	PollEvent() Event

	// PostEvent queues a synthetic event for PollEvent to return.
	PostEvent(ev Event)

	// Beep sounds the terminal bell.
	Beep()
}

// setStringClipped writes s at (x, y) within the surface bounds.
// Shared by the screen implementations.
func setStringClipped(set func(x, y int, r rune, style Style), width, x, y int, s string, style Style) {
	col := x
	for _, r := range s {
		if col >= width {
			break
		}
		if col >= 0 {
			set(col, y, r, style)
		}
		col++
	}
}
