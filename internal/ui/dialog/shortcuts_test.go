package dialog

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/cutline/internal/input/key"
	"github.com/dshills/cutline/internal/shortcut"
	"github.com/dshills/cutline/internal/shortcut/editor"
	"github.com/dshills/cutline/internal/ui"
)

func newDialog(t *testing.T) (*Shortcuts, *editor.Controller, *shortcut.Registry, *bool) {
	t.Helper()

	reg := shortcut.NewRegistry()
	ctrl := editor.NewController(reg)
	closed := false
	d := NewShortcuts(ctrl, func() { closed = true })
	d.SetRect(ui.NewRect(0, 0, ShortcutsWidth, ShortcutsHeight))
	return d, ctrl, reg, &closed
}

func TestShortcutsEscCloses(t *testing.T) {
	d, _, _, closed := newDialog(t)

	if !d.HandleKey(key.Combo{Key: key.KeyEscape}) {
		t.Fatal("Esc not consumed")
	}
	if !*closed {
		t.Error("onClose not invoked")
	}
}

func TestShortcutsCaptureAddsBinding(t *testing.T) {
	d, ctrl, _, _ := newDialog(t)

	ctrl.Select("edit.splitClip")
	d.startCapture()
	if !d.capturing {
		t.Fatal("capture not armed")
	}

	d.HandleKey(key.NewRuneCombo('k', key.ModCtrl))

	if d.capturing {
		t.Error("capture still armed after chord")
	}
	got := ctrl.BindingList()
	if len(got) != 2 || got[1] != "Ctrl+K" {
		t.Errorf("BindingList = %v, want Ctrl+K appended", got)
	}
	if !ctrl.Session().Dirty() {
		t.Error("dirty not set")
	}
}

func TestShortcutsCaptureEscCancels(t *testing.T) {
	d, ctrl, _, closed := newDialog(t)

	ctrl.Select("edit.splitClip")
	d.startCapture()
	d.HandleKey(key.Combo{Key: key.KeyEscape})

	if d.capturing {
		t.Error("capture still armed after Esc")
	}
	if *closed {
		t.Error("Esc during capture closed the dialog")
	}
	if ctrl.Session().Dirty() {
		t.Error("cancelled capture left edits behind")
	}
}

func TestShortcutsCaptureWithoutSelection(t *testing.T) {
	d, _, _, _ := newDialog(t)

	d.startCapture()
	if d.capturing {
		t.Error("capture armed with no selection")
	}
	if got := d.status.Text(); got == "" {
		t.Error("no operator feedback for missing selection")
	}
}

func TestShortcutsConflictWarning(t *testing.T) {
	d, ctrl, _, _ := newDialog(t)

	// Space is the play/pause binding; adding it elsewhere conflicts.
	ctrl.Select("edit.splitClip")
	d.startCapture()
	d.HandleKey(key.Combo{Key: key.KeySpace})

	if got := d.status.Text(); got == "" {
		t.Error("no conflict warning for duplicate binding")
	}
}

func TestShortcutsPresetSwitch(t *testing.T) {
	d, ctrl, reg, _ := newDialog(t)

	d.switchPreset(shortcut.PresetPremiere)

	if got := reg.ActivePreset(); got != shortcut.PresetPremiere {
		t.Errorf("ActivePreset = %q, want %q", got, shortcut.PresetPremiere)
	}
	if got := ctrl.ActivePreset(); got != shortcut.PresetPremiere {
		t.Errorf("controller ActivePreset = %q", got)
	}
}

// failingPresetRegistry rejects every preset load with a fixed error.
type failingPresetRegistry struct {
	*shortcut.Registry
	loadErr error
}

func (r *failingPresetRegistry) LoadPreset(string) error { return r.loadErr }

func TestShortcutsPresetSwitchFailureShowsError(t *testing.T) {
	reg := &failingPresetRegistry{
		Registry: shortcut.NewRegistry(),
		loadErr:  errors.New("preset file corrupt: bad json at line 3"),
	}
	ctrl := editor.NewController(reg)
	d := NewShortcuts(ctrl, func() {})
	d.SetRect(ui.NewRect(0, 0, ShortcutsWidth, ShortcutsHeight))

	d.switchPreset(shortcut.PresetPremiere)

	if got := d.status.Text(); !strings.Contains(got, "preset file corrupt: bad json at line 3") {
		t.Errorf("status = %q, want the registry error message", got)
	}
	if got := reg.ActivePreset(); got != shortcut.PresetDefault {
		t.Errorf("ActivePreset = %q, want %q after failed switch", got, shortcut.PresetDefault)
	}
}

func TestShortcutsApplyCommits(t *testing.T) {
	d, ctrl, reg, _ := newDialog(t)

	ctrl.Select("edit.splitClip")
	d.startCapture()
	d.HandleKey(key.NewRuneCombo('k', key.ModCtrl))
	d.apply()

	cmd, _ := reg.Command("edit.splitClip")
	if len(cmd.Bindings) != 2 || cmd.Bindings[1] != "Ctrl+K" {
		t.Errorf("registry bindings = %v", cmd.Bindings)
	}
	if ctrl.Session().Dirty() {
		t.Error("dirty survived apply")
	}
}

func TestShortcutsDrawsTitle(t *testing.T) {
	d, _, _, _ := newDialog(t)

	s := ui.NewSim(ShortcutsWidth, ShortcutsHeight)
	d.Draw(s)

	row := s.Row(0)
	if !strings.Contains(row, "Keyboard Shortcuts") {
		t.Errorf("top row %q missing title", row)
	}
}
