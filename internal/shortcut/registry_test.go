package shortcut

import (
	"errors"
	"testing"
)

func TestNewRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	if got := r.ActivePreset(); got != PresetDefault {
		t.Errorf("ActivePreset = %q, want %q", got, PresetDefault)
	}

	cmd, ok := r.Command("playback.playPause")
	if !ok {
		t.Fatal("playback.playPause not registered")
	}
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Space" {
		t.Errorf("playPause bindings = %v, want [Space]", cmd.Bindings)
	}
}

func TestRegisterNormalizesBindings(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Command{
		ID:           "test.cmd",
		Name:         "Test",
		Category:     "Test",
		Bindings:     []string{"C-k", "<C-S-p>"},
		Customizable: true,
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	cmd, _ := r.Command("test.cmd")
	want := []string{"Ctrl+K", "Ctrl+Shift+P"}
	if len(cmd.Bindings) != len(want) {
		t.Fatalf("Bindings = %v, want %v", cmd.Bindings, want)
	}
	for i := range want {
		if cmd.Bindings[i] != want[i] {
			t.Errorf("Bindings[%d] = %q, want %q", i, cmd.Bindings[i], want[i])
		}
	}
}

func TestRegisterInvalidBinding(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Command{
		ID:       "test.cmd",
		Name:     "Test",
		Category: "Test",
		Bindings: []string{"NotAKey"},
	})
	if err == nil {
		t.Error("Register with invalid binding should fail")
	}
}

func TestSetBindings(t *testing.T) {
	r := NewRegistry()

	if err := r.SetBindings("edit.splitClip", []string{"Ctrl+K", "B"}); err != nil {
		t.Fatalf("SetBindings error: %v", err)
	}

	cmd, _ := r.Command("edit.splitClip")
	if len(cmd.Bindings) != 2 || cmd.Bindings[0] != "Ctrl+K" || cmd.Bindings[1] != "B" {
		t.Errorf("Bindings = %v, want [Ctrl+K B]", cmd.Bindings)
	}
}

func TestSetBindingsUnknownCommand(t *testing.T) {
	r := NewRegistry()
	err := r.SetBindings("no.such.command", []string{"Ctrl+K"})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}

func TestSetBindingsNotCustomizable(t *testing.T) {
	r := NewRegistry()
	err := r.SetBindings("window.shortcutEditor", []string{"Ctrl+K"})
	if !errors.Is(err, ErrNotCustomizable) {
		t.Errorf("error = %v, want ErrNotCustomizable", err)
	}
}

func TestCommandsByCategoryOrder(t *testing.T) {
	r := NewRegistry()
	byCat := r.CommandsByCategory()

	playback := byCat[CategoryPlayback]
	if len(playback) == 0 {
		t.Fatal("no playback commands")
	}
	if playback[0].ID != "playback.playPause" {
		t.Errorf("first playback command = %s, want playback.playPause", playback[0].ID)
	}
}

func TestConflicts(t *testing.T) {
	r := NewRegistry()

	// Default assignment binds "B" to the blade tool only.
	got := r.Conflicts("B", "edit.splitClip")
	if len(got) != 1 || got[0] != "tool.blade" {
		t.Errorf("Conflicts(B) = %v, want [tool.blade]", got)
	}

	// The excluded command's own binding is not a conflict.
	if got := r.Conflicts("B", "tool.blade"); len(got) != 0 {
		t.Errorf("Conflicts(B, tool.blade) = %v, want none", got)
	}

	// Unparsable combos yield no conflicts.
	if got := r.Conflicts("NotAKey", ""); got != nil {
		t.Errorf("Conflicts(NotAKey) = %v, want nil", got)
	}
}

func TestResetToDefaults(t *testing.T) {
	r := NewRegistry()

	if err := r.SetBindings("edit.splitClip", []string{"Ctrl+K"}); err != nil {
		t.Fatalf("SetBindings error: %v", err)
	}
	r.ResetToDefaults()

	cmd, _ := r.Command("edit.splitClip")
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+B" {
		t.Errorf("Bindings after reset = %v, want [Ctrl+B]", cmd.Bindings)
	}
	if got := r.ActivePreset(); got != PresetDefault {
		t.Errorf("ActivePreset after reset = %q, want %q", got, PresetDefault)
	}
}

func TestCategoriesSorted(t *testing.T) {
	r := NewRegistry()
	cats := r.Categories()

	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Errorf("categories not sorted: %q before %q", cats[i-1], cats[i])
		}
	}
}

func TestCommandCloneIsolation(t *testing.T) {
	r := NewRegistry()

	cmd, _ := r.Command("edit.splitClip")
	cmd.Bindings[0] = "Ctrl+Q"

	again, _ := r.Command("edit.splitClip")
	if again.Bindings[0] != "Ctrl+B" {
		t.Error("mutating a returned command leaked into the registry")
	}
}
