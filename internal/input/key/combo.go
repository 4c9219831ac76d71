package key

import (
	"strings"
	"unicode"
)

// Combo represents a single key chord: one key plus modifiers.
type Combo struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune combos, stored lowercase
	// for letters. Shift is always an explicit modifier.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneCombo creates a combo for a character key.
func NewRuneCombo(r rune, mods Modifier) Combo {
	return Combo{
		Key:       KeyRune,
		Rune:      unicode.ToLower(r),
		Modifiers: mods,
	}
}

// NewSpecialCombo creates a combo for a special key.
func NewSpecialCombo(k Key, mods Modifier) Combo {
	return Combo{
		Key:       k,
		Modifiers: mods,
	}
}

// IsZero returns true if the combo carries no key.
func (c Combo) IsZero() bool {
	return c.Key == KeyNone
}

// IsRune returns true if this is a character key combo.
func (c Combo) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// Equals returns true if two combos represent the same chord.
func (c Combo) Equals(other Combo) bool {
	return c.Key == other.Key &&
		c.Rune == other.Rune &&
		c.Modifiers == other.Modifiers
}

// DisplayString returns the canonical readable form, e.g. "Ctrl+K",
// "Shift+Left", "J", "Space". Parse round-trips this form.
func (c Combo) DisplayString() string {
	var parts []string
	if mods := c.Modifiers.String(); mods != "" {
		parts = append(parts, mods)
	}
	parts = append(parts, c.keyName())
	return strings.Join(parts, "+")
}

// String is an alias for DisplayString.
func (c Combo) String() string {
	return c.DisplayString()
}

func (c Combo) keyName() string {
	if c.Key != KeyRune {
		return c.Key.String()
	}
	if c.Rune == ' ' {
		return "Space"
	}
	if unicode.IsLetter(c.Rune) {
		return strings.ToUpper(string(c.Rune))
	}
	return string(c.Rune)
}
