// Package ui implements the terminal widget toolkit the shell and its
// dialogs are built from.
//
// Rendering happens through the Surface interface; the Terminal screen
// draws to a real terminal via tcell, while Sim renders into an
// in-memory grid so widget behavior is testable without a terminal.
// Widgets are not goroutine safe: all event dispatch and drawing must
// happen on the single UI goroutine that owns the screen.
package ui
