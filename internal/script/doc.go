// Package script embeds a Lua interpreter exposing the shell's
// scripting surface: UI construction (ui.window, ui.vbox, ui.splitter,
// ui.tree, ...) and shortcut registry access including
// shortcuts.open(). Harness scripts and the -script flag run through
// the Engine here.
//
// gopher-lua states are not goroutine safe; an Engine must be driven
// from the UI goroutine that owns the shell.
package script
