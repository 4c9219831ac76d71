// Package shell assembles the editor's main window: media pool,
// viewer, inspector, and timeline panels arranged by a declarative
// YAML layout document. The shell routes key chords through the
// shortcut registry and hosts the keyboard shortcut editor dialog.
package shell
