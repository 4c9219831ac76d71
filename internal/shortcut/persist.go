package shortcut

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// shortcutsFile is the JSON structure of a saved shortcuts document.
// User files store only deviations from the active preset, so factory
// changes flow through untouched commands.
type shortcutsFile struct {
	Preset    string          `json:"preset"`
	Overrides []overrideEntry `json:"overrides,omitempty"`
}

type overrideEntry struct {
	Command  string   `json:"command"`
	Bindings []string `json:"bindings"`
}

// Save writes the current customizations to path: the active preset name
// plus every command whose bindings deviate from that preset's assignment.
func (r *Registry) Save(path string) error {
	baseline := NewRegistry()
	r.mu.RLock()
	baseline.presetDir = r.presetDir
	r.mu.RUnlock()
	active := r.ActivePreset()
	if active != PresetDefault {
		if err := baseline.LoadPreset(active); err != nil {
			return fmt.Errorf("resolving baseline: %w", err)
		}
	}

	doc := shortcutsFile{Preset: active}
	for _, cmd := range r.Commands() {
		base, ok := baseline.Command(cmd.ID)
		if ok && equalBindings(base.Bindings, cmd.Bindings) {
			continue
		}
		doc.Overrides = append(doc.Overrides, overrideEntry{
			Command:  cmd.ID,
			Bindings: cmd.Bindings,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling shortcuts: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating shortcuts dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing shortcuts file: %w", err)
	}
	return nil
}

// LoadFile restores customizations from path. A missing file is not an
// error; the registry keeps its current state.
func (r *Registry) LoadFile(path string) error {
	doc, err := readShortcutsFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if doc.Preset != "" && doc.Preset != PresetDefault {
		if err := r.LoadPreset(doc.Preset); err != nil {
			return err
		}
	} else {
		r.ResetToDefaults()
	}

	for _, o := range doc.Overrides {
		if err := r.SetBindings(o.Command, o.Bindings); err != nil {
			return fmt.Errorf("applying override: %w", err)
		}
	}
	return nil
}

// readShortcutsFile parses a shortcuts document from disk.
func readShortcutsFile(path string) (*shortcutsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc shortcutsFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding shortcuts file %s: %w", path, err)
	}
	return &doc, nil
}

// equalBindings compares two binding lists including order.
func equalBindings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
