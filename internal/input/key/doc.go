// Package key provides keyboard combination types for the Cutline shell.
//
// A Combo is a single key chord: one key plus zero or more modifiers.
// Combos are specified and displayed as strings:
//
//	"J"            - Single character
//	"Ctrl+K"       - Readable notation (canonical display form)
//	"C-k"          - Compact notation
//	"<C-S-p>"      - Angle bracket notation
//	"Shift+Left"   - Modifier plus special key
//
// Parse accepts all notations; DisplayString produces the canonical
// readable form, which Parse round-trips.
package key
