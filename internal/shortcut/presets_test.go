package shortcut

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPresetsListsBuiltins(t *testing.T) {
	r := NewRegistry()
	names := r.Presets()

	if len(names) < 3 {
		t.Fatalf("Presets = %v, want at least 3", names)
	}
	if names[0] != PresetDefault {
		t.Errorf("first preset = %q, want %q", names[0], PresetDefault)
	}

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{PresetDefault, PresetPremiere, PresetFinalCut} {
		if !found[want] {
			t.Errorf("Presets missing %q", want)
		}
	}
}

func TestLoadPresetPremiere(t *testing.T) {
	r := NewRegistry()

	if err := r.LoadPreset(PresetPremiere); err != nil {
		t.Fatalf("LoadPreset error: %v", err)
	}
	if got := r.ActivePreset(); got != PresetPremiere {
		t.Errorf("ActivePreset = %q, want %q", got, PresetPremiere)
	}

	cmd, _ := r.Command("edit.splitClip")
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+K" {
		t.Errorf("splitClip bindings = %v, want [Ctrl+K]", cmd.Bindings)
	}

	// Commands outside the overlay keep defaults.
	pp, _ := r.Command("playback.playPause")
	if len(pp.Bindings) != 1 || pp.Bindings[0] != "Space" {
		t.Errorf("playPause bindings = %v, want [Space]", pp.Bindings)
	}
}

func TestLoadPresetUnknownLeavesStateUnchanged(t *testing.T) {
	r := NewRegistry()
	if err := r.SetBindings("edit.splitClip", []string{"Ctrl+K"}); err != nil {
		t.Fatalf("SetBindings error: %v", err)
	}

	err := r.LoadPreset("No Such Preset")
	if err == nil {
		t.Fatal("LoadPreset with unknown name should fail")
	}
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", err)
	}
	var perr *PresetError
	if !errors.As(err, &perr) || perr.Name != "No Such Preset" {
		t.Errorf("error = %v, want PresetError carrying the name", err)
	}

	// Customization survives the failed load.
	cmd, _ := r.Command("edit.splitClip")
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+K" {
		t.Errorf("bindings after failed load = %v, want [Ctrl+K]", cmd.Bindings)
	}
}

func TestLoadPresetDefaultResets(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadPreset(PresetPremiere); err != nil {
		t.Fatalf("LoadPreset error: %v", err)
	}

	if err := r.LoadPreset(PresetDefault); err != nil {
		t.Fatalf("LoadPreset(Default) error: %v", err)
	}

	cmd, _ := r.Command("edit.splitClip")
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+B" {
		t.Errorf("splitClip bindings = %v, want [Ctrl+B]", cmd.Bindings)
	}
}

func TestUserPresetFile(t *testing.T) {
	dir := t.TempDir()
	doc := `{"preset": "Custom", "overrides": [{"command": "edit.splitClip", "bindings": ["Ctrl+Shift+B"]}]}`
	if err := os.WriteFile(filepath.Join(dir, "Custom.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	r.SetPresetDir(dir)

	names := r.Presets()
	found := false
	for _, n := range names {
		if n == "Custom" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Presets = %v, want Custom included", names)
	}

	if err := r.LoadPreset("Custom"); err != nil {
		t.Fatalf("LoadPreset(Custom) error: %v", err)
	}
	cmd, _ := r.Command("edit.splitClip")
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+Shift+B" {
		t.Errorf("splitClip bindings = %v, want [Ctrl+Shift+B]", cmd.Bindings)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")

	r := NewRegistry()
	if err := r.SetBindings("edit.splitClip", []string{"Ctrl+K"}); err != nil {
		t.Fatalf("SetBindings error: %v", err)
	}
	if err := r.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// Only the deviation is stored.
	doc, err := readShortcutsFile(path)
	if err != nil {
		t.Fatalf("readShortcutsFile error: %v", err)
	}
	if len(doc.Overrides) != 1 || doc.Overrides[0].Command != "edit.splitClip" {
		t.Errorf("Overrides = %+v, want only edit.splitClip", doc.Overrides)
	}

	fresh := NewRegistry()
	if err := fresh.LoadFile(path); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	cmd, _ := fresh.Command("edit.splitClip")
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+K" {
		t.Errorf("bindings after reload = %v, want [Ctrl+K]", cmd.Bindings)
	}
}

func TestLoadFileMissingIsNoop(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadFile(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Errorf("LoadFile of missing file = %v, want nil", err)
	}
}
