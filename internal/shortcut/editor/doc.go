// Package editor implements the shortcut editor controller.
//
// The controller mediates between the shortcut dialog's widgets and the
// shortcut registry. Edits accumulate as per-command drafts inside an
// EditorSession and only reach the registry on Apply. Invalid input
// (missing selection, out-of-range index, unparsable combo) degrades to
// a no-op; only preset loading surfaces an error.
//
// One controller exists per open dialog. All methods are called from the
// UI event goroutine; the controller performs no locking of its own.
package editor
