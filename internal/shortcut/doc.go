// Package shortcut provides the keyboard shortcut registry for Cutline.
//
// The registry owns the command definitions and their current key
// bindings. Commands are grouped by category for display. Named presets
// (Default, Premiere Pro, Final Cut Pro, plus user preset files) swap the
// full binding assignment; user overrides persist to a JSON shortcuts
// file as deviations from the active preset.
//
// # Key Concepts
//
// Command: an addressable editor action with zero or more bindings.
//
// Binding: a key-combination string in canonical display form ("Ctrl+K").
// Binding order within a command is insertion order.
//
// Preset: a named full assignment of bindings layered over the defaults.
package shortcut
