package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a Combo.
//
// Supported formats:
//   - Single character: "j", "J", "1", "@", "+"
//   - Special keys: "Enter", "Escape", "Tab", "Space", "F5"
//   - Readable: "Ctrl+S", "Ctrl+Shift+P", "Shift+Left"
//   - Compact: "C-s", "A-f", "C-S-p"
//   - Angle bracket: "<C-s>", "<CR>", "<Esc>"
func Parse(spec string) (Combo, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Combo{}, ErrEmptySpec
	}

	// Angle bracket notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseCompact(spec[1 : len(spec)-1])
	}

	// Bare "+" is the plus key, not a separator
	if spec == "+" {
		return NewRuneCombo('+', ModNone), nil
	}

	if strings.Contains(spec, "+") {
		return parseReadable(spec)
	}

	if strings.Contains(spec, "-") && len(spec) > 1 {
		return parseCompact(spec)
	}

	return parseSingle(spec)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Combo {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return c
}

// Normalize parses and re-formats a specification to canonical display form.
func Normalize(spec string) (string, error) {
	c, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return c.DisplayString(), nil
}

// parseReadable parses "Ctrl+Shift+S" style notation.
func parseReadable(spec string) (Combo, error) {
	parts := strings.Split(spec, "+")

	// "Ctrl++" means Ctrl plus the plus key
	if len(parts) >= 2 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
		parts[len(parts)-1] = "+"
	}
	if len(parts) < 2 {
		return Combo{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Combo{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyPart(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseCompact parses "C-s" / "C-S-p" style notation.
func parseCompact(inner string) (Combo, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Combo{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) >= 2 {
		// "C--" means Ctrl plus the hyphen key
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d":
			mods = mods.With(ModMeta)
		default:
			return Combo{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyPart(keyPart, mods)
}

// parseSingle parses a bare character or key name.
func parseSingle(spec string) (Combo, error) {
	return parseKeyPart(spec, ModNone)
}

// parseKeyPart parses the key portion with already-known modifiers.
func parseKeyPart(keyPart string, mods Modifier) (Combo, error) {
	if keyPart == "" {
		return Combo{}, ErrInvalidSpec
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialCombo(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneCombo(runes[0], mods), nil
	}

	return Combo{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
