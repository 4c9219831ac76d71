package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/cutline/internal/input/key"
	"github.com/dshills/cutline/internal/ui"
)

// newTestApp builds an application with all state confined to a temp
// directory and logging quieted.
func newTestApp(t *testing.T) *Application {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.toml")
	cfg := `
[general]
log_level = "error"

[shortcuts]
file = "` + filepath.ToSlash(filepath.Join(dir, "shortcuts.json")) + `"
preset_dir = "` + filepath.ToSlash(filepath.Join(dir, "presets")) + `"
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app
}

func TestNewWiresComponents(t *testing.T) {
	app := newTestApp(t)

	if app.Registry() == nil {
		t.Error("Registry is nil")
	}
	if app.Shell() == nil {
		t.Error("Shell is nil")
	}
	if app.Scripts() == nil {
		t.Error("Scripts is nil")
	}
	if app.Logger() == nil {
		t.Error("Logger is nil")
	}
}

func TestNewCreatesPresetDir(t *testing.T) {
	app := newTestApp(t)

	info, err := os.Stat(app.cfg.Shortcuts.PresetDir)
	if err != nil {
		t.Fatalf("preset dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("preset path is not a directory")
	}
}

func TestNewBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(Options{ConfigPath: cfgPath}); !errors.Is(err, ErrInitialization) {
		t.Errorf("error = %v, want ErrInitialization", err)
	}
}

func TestRunRequiresScreen(t *testing.T) {
	app := newTestApp(t)

	if err := app.Run(); !errors.Is(err, ErrNoScreen) {
		t.Errorf("error = %v, want ErrNoScreen", err)
	}
}

func TestRunQuitChord(t *testing.T) {
	app := newTestApp(t)

	screen := ui.NewSim(100, 30)
	app.SetScreen(screen)
	screen.PostEvent(ui.KeyEvent(key.MustParse("Ctrl+Q")))

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Errorf("Run = %v, want ErrQuit", err)
	}
}

func TestRunDispatchesCommandChord(t *testing.T) {
	app := newTestApp(t)

	screen := ui.NewSim(100, 30)
	app.SetScreen(screen)
	screen.PostEvent(ui.KeyEvent(key.NewRuneCombo(' ', 0)))
	screen.PostEvent(ui.KeyEvent(key.MustParse("Ctrl+Q")))

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run = %v, want ErrQuit", err)
	}
	if got := app.Shell().StatusText(); got != " Playback · Play/Pause" {
		t.Errorf("status = %q, want playback command echo", got)
	}
}

func TestQuitWakesBlockedLoop(t *testing.T) {
	app := newTestApp(t)
	app.SetScreen(ui.NewSim(100, 30))

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	// Give the loop time to block in PollEvent before quitting.
	time.Sleep(50 * time.Millisecond)
	app.Quit()

	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("Run = %v, want ErrQuit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestRunStartupScript(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "init.lua")
	script := `ui.status(" scripted")`
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t)
	app.opts.ScriptPath = scriptPath

	screen := ui.NewSim(100, 30)
	app.SetScreen(screen)
	screen.PostEvent(ui.KeyEvent(key.MustParse("Ctrl+Q")))

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run = %v, want ErrQuit", err)
	}
	if got := app.Shell().StatusText(); got != " scripted" {
		t.Errorf("status = %q, want script-set status", got)
	}
}

func TestShutdownSavesShortcuts(t *testing.T) {
	app := newTestApp(t)

	if err := app.Registry().SetBindings("edit.splitClip", []string{"Ctrl+K"}); err != nil {
		t.Fatalf("SetBindings error: %v", err)
	}
	app.Shutdown()

	if _, err := os.Stat(app.cfg.Shortcuts.File); err != nil {
		t.Fatalf("shortcuts file not written: %v", err)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	app := newTestApp(t)

	app.Shutdown()
	app.Shutdown()
}

func TestBootstrapLoadsSavedShortcuts(t *testing.T) {
	first := newTestApp(t)
	if err := first.Registry().SetBindings("edit.splitClip", []string{"Ctrl+K"}); err != nil {
		t.Fatalf("SetBindings error: %v", err)
	}
	first.Shutdown()

	second, err := New(Options{ConfigPath: filepath.Join(filepath.Dir(first.cfg.Shortcuts.File), "config.toml")})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer second.Shutdown()

	cmd, ok := second.Registry().Command("edit.splitClip")
	if !ok {
		t.Fatal("edit.splitClip missing")
	}
	if len(cmd.Bindings) != 1 || cmd.Bindings[0] != "Ctrl+K" {
		t.Errorf("bindings = %v, want [Ctrl+K]", cmd.Bindings)
	}
}
