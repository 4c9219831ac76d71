package ui

import "github.com/dshills/cutline/internal/input/key"

// EventType identifies the kind of screen event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// MouseButton identifies a mouse button or wheel direction.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Event is one input event from a screen.
type Event struct {
	Type EventType

	// Key event fields.
	Combo key.Combo

	// Mouse event fields.
	MouseX, MouseY int
	Button         MouseButton

	// Resize event fields.
	Width, Height int
}

// KeyEvent builds a key event from a combo.
func KeyEvent(combo key.Combo) Event {
	return Event{Type: EventKey, Combo: combo}
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
