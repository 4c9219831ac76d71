package shell

import (
	"strings"
	"testing"

	"github.com/dshills/cutline/internal/input/key"
	"github.com/dshills/cutline/internal/shortcut"
	"github.com/dshills/cutline/internal/ui"
)

func newShell(t *testing.T, opts Options) (*Shell, *shortcut.Registry) {
	t.Helper()

	reg := shortcut.NewRegistry()
	s, err := New(reg, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s.Window().Resize(120, 40)
	return s, reg
}

func TestShellChordDispatch(t *testing.T) {
	s, _ := newShell(t, Options{})

	// Space is bound to Play/Pause by default.
	consumed := s.HandleEvent(ui.KeyEvent(key.Combo{Key: key.KeySpace}))
	if !consumed {
		t.Fatal("bound chord not consumed")
	}
	if got := s.StatusText(); !strings.Contains(got, "Play/Pause") {
		t.Errorf("status = %q, want Play/Pause feedback", got)
	}
}

func TestShellUnboundChordIgnored(t *testing.T) {
	s, _ := newShell(t, Options{})

	if s.HandleEvent(ui.KeyEvent(key.NewRuneCombo('q', key.ModAlt|key.ModShift))) {
		t.Error("unbound chord consumed")
	}
}

func TestShellQuitChord(t *testing.T) {
	quit := false
	s, _ := newShell(t, Options{OnQuit: func() { quit = true }})

	s.HandleEvent(ui.KeyEvent(key.NewRuneCombo('q', key.ModCtrl)))
	if !quit {
		t.Error("Ctrl+Q did not quit")
	}
}

func TestShellOpensShortcutEditor(t *testing.T) {
	s, _ := newShell(t, Options{})

	s.HandleEvent(ui.KeyEvent(key.NewRuneCombo('k', key.ModCtrl|key.ModAlt)))

	if !s.ShortcutEditorOpen() {
		t.Fatal("Ctrl+Alt+K did not open the shortcut editor")
	}
	if s.Window().Modal() == nil {
		t.Error("no modal installed")
	}

	// While the dialog is up, shell chords do not fire.
	s.HandleEvent(ui.KeyEvent(key.Combo{Key: key.KeySpace}))
	if got := s.StatusText(); strings.Contains(got, "Play/Pause") {
		t.Error("shell chord fired through the modal")
	}
}

func TestShellCloseShortcutEditor(t *testing.T) {
	closed := false
	s, _ := newShell(t, Options{OnShortcutsClosed: func() { closed = true }})

	s.OpenShortcutEditor()
	s.HandleEvent(ui.KeyEvent(key.Combo{Key: key.KeyEscape}))

	if s.ShortcutEditorOpen() {
		t.Error("Esc did not close the dialog")
	}
	if s.Window().Modal() != nil {
		t.Error("modal still installed")
	}
	if !closed {
		t.Error("OnShortcutsClosed not invoked")
	}
}

func TestShellReopenIsNoop(t *testing.T) {
	s, _ := newShell(t, Options{})

	s.OpenShortcutEditor()
	first := s.Window().Modal()
	s.OpenShortcutEditor()

	if s.Window().Modal() != first {
		t.Error("second open replaced the dialog")
	}
}

func TestShellDrawsPanels(t *testing.T) {
	s, _ := newShell(t, Options{})

	surf := ui.NewSim(120, 40)
	s.Draw(surf)

	var all strings.Builder
	for y := 0; y < 40; y++ {
		all.WriteString(surf.Row(y))
		all.WriteByte('\n')
	}
	for _, title := range []string{"Media Pool", "Viewer", "Inspector", "Timeline"} {
		if !strings.Contains(all.String(), title) {
			t.Errorf("rendered shell missing %s panel", title)
		}
	}
}
