package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/cutline/internal/input/key"
)

// Built-in preset names.
const (
	PresetDefault  = "Default"
	PresetPremiere = "Premiere Pro"
	PresetFinalCut = "Final Cut Pro"
)

// presetOverlay maps command ids to replacement binding lists. A preset
// is the default assignment with its overlay applied on top.
type presetOverlay map[string][]string

// builtinPresets holds the factory keymap overlays for other NLE styles.
var builtinPresets = map[string]presetOverlay{
	PresetPremiere: {
		"edit.splitClip":    {"Ctrl+K"},
		"edit.rippleDelete": {"Shift+Q"},
		"edit.redo":         {"Ctrl+Shift+Z", "Ctrl+Y"},
		"playback.markIn":   {"I"},
		"playback.markOut":  {"O"},
		"tool.blade":        {"C"},
		"tool.selection":    {"V"},
		"tool.hand":         {"H"},
		"timeline.zoomIn":   {"="},
		"timeline.zoomOut":  {"-"},
		"timeline.zoomToFit": {"\\"},
		"nav.nextEdit":       {"Down"},
		"nav.previousEdit":   {"Up"},
	},
	PresetFinalCut: {
		"edit.splitClip":     {"Ctrl+B"},
		"edit.rippleDelete":  {"Shift+Del"},
		"edit.insertEdit":    {"W"},
		"edit.overwriteEdit": {"D"},
		"tool.blade":         {"B"},
		"tool.selection":     {"A"},
		"tool.zoom":          {"Z"},
		"timeline.zoomToFit": {"Shift+Z"},
		"view.fit":           {"Shift+Z"},
	},
}

// Presets returns the available preset names: built-ins first, then user
// preset files from the preset directory, sorted within each group.
func (r *Registry) Presets() []string {
	names := []string{PresetDefault}
	for name := range builtinPresets {
		names = append(names, name)
	}
	sort.Strings(names[1:])

	user := r.userPresetNames()
	sort.Strings(user)
	return append(names, user...)
}

// LoadPreset replaces the current binding assignment with the named
// preset. On failure the registry is left unchanged.
func (r *Registry) LoadPreset(name string) error {
	if name == PresetDefault {
		r.ResetToDefaults()
		return nil
	}

	overlay, ok := builtinPresets[name]
	if !ok {
		var err error
		overlay, err = r.loadUserPreset(name)
		if err != nil {
			return &PresetError{Name: name, Err: err}
		}
	}

	// Validate the overlay fully before touching state: a failed preset
	// load must leave the current assignment intact.
	staged := make(map[string][]string, len(overlay))
	for id, combos := range overlay {
		cmd, exists := r.Command(id)
		if !exists {
			return &PresetError{Name: name, Err: fmt.Errorf("%w: %s", ErrUnknownCommand, id)}
		}
		if !cmd.Customizable {
			return &PresetError{Name: name, Err: fmt.Errorf("%w: %s", ErrNotCustomizable, id)}
		}
		normalized := make([]string, 0, len(combos))
		for _, c := range combos {
			display, err := key.Normalize(c)
			if err != nil {
				return &PresetError{Name: name, Err: err}
			}
			normalized = append(normalized, display)
		}
		staged[id] = normalized
	}

	r.ResetToDefaults()
	for id, combos := range staged {
		if err := r.SetBindings(id, combos); err != nil {
			return &PresetError{Name: name, Err: err}
		}
	}

	r.mu.Lock()
	r.activePreset = name
	r.mu.Unlock()
	return nil
}

// userPresetNames lists preset names derived from *.json files in the
// preset directory.
func (r *Registry) userPresetNames() []string {
	r.mu.RLock()
	dir := r.presetDir
	r.mu.RUnlock()

	if dir == "" {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil
	}

	var names []string
	for _, path := range matches {
		base := filepath.Base(path)
		names = append(names, strings.TrimSuffix(base, ".json"))
	}
	return names
}

// loadUserPreset reads a preset overlay from the preset directory.
func (r *Registry) loadUserPreset(name string) (presetOverlay, error) {
	r.mu.RLock()
	dir := r.presetDir
	r.mu.RUnlock()

	if dir == "" {
		return nil, ErrUnknownPreset
	}

	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrUnknownPreset
		}
		return nil, err
	}

	doc, err := readShortcutsFile(path)
	if err != nil {
		return nil, err
	}

	overlay := make(presetOverlay, len(doc.Overrides))
	for _, o := range doc.Overrides {
		overlay[o.Command] = o.Bindings
	}
	return overlay, nil
}
