package shell

import (
	"fmt"

	"github.com/dshills/cutline/internal/input/key"
	"github.com/dshills/cutline/internal/shortcut"
	"github.com/dshills/cutline/internal/shortcut/editor"
	"github.com/dshills/cutline/internal/ui"
	"github.com/dshills/cutline/internal/ui/dialog"
)

// quitChord always exits, independent of the shortcut registry, so a
// broken preset can never lock the operator in.
const quitChord = "Ctrl+Q"

// Options configures a Shell.
type Options struct {
	// LayoutPath overrides the built-in layout document.
	LayoutPath string

	// OnQuit is invoked when the operator requests exit.
	OnQuit func()

	// OnShortcutsClosed is invoked after the shortcut editor closes,
	// so the owner can persist registry changes.
	OnShortcutsClosed func()
}

// Shell is the editor main window: panel layout, status bar, shortcut
// dispatch, and the shortcut editor dialog.
type Shell struct {
	reg    *shortcut.Registry
	opts   Options
	window *ui.Window
	status *ui.Label
	panels map[string]*ui.Panel

	// editorCtrl is non-nil while the shortcut dialog is open.
	editorCtrl *editor.Controller
}

// New builds the shell from its layout document.
func New(reg *shortcut.Registry, opts Options) (*Shell, error) {
	layout, err := LoadLayout(opts.LayoutPath)
	if err != nil {
		return nil, err
	}

	s := &Shell{
		reg:    reg,
		opts:   opts,
		status: ui.NewLabel(statusHint),
		panels: make(map[string]*ui.Panel),
	}

	var layoutRoot ui.Widget
	layoutRoot, s.panels = buildLayout(layout)

	body := ui.NewVBox()
	body.Add(layoutRoot, ui.Stretch(1))
	body.Add(s.status, ui.Fixed(1))

	s.window = ui.NewWindow(&shellRoot{shell: s, body: body})
	return s, nil
}

const statusHint = " Ctrl+Alt+K Keyboard Shortcuts · Ctrl+Q Quit"

// Window returns the shell's window for drawing and event dispatch.
func (s *Shell) Window() *ui.Window {
	return s.window
}

// Panel returns a layout panel by id.
func (s *Shell) Panel(id string) (*ui.Panel, bool) {
	p, ok := s.panels[id]
	return p, ok
}

// StatusText returns the status bar content.
func (s *Shell) StatusText() string {
	return s.status.Text()
}

// SetStatus replaces the status bar content.
func (s *Shell) SetStatus(text string) {
	s.status.SetText(text)
}

// HandleEvent dispatches one screen event.
func (s *Shell) HandleEvent(ev ui.Event) bool {
	return s.window.HandleEvent(ev)
}

// Draw renders the shell into a surface.
func (s *Shell) Draw(surf ui.Surface) {
	s.window.Draw(surf)
}

// dispatchChord resolves a chord against the registry and executes the
// bound command. Returns true when a command ran.
func (s *Shell) dispatchChord(combo key.Combo) bool {
	display := combo.DisplayString()
	if display == "" {
		return false
	}

	if display == quitChord {
		s.quit()
		return true
	}

	ids := s.reg.Conflicts(display, "")
	if len(ids) == 0 {
		return false
	}
	s.Execute(ids[0])
	return true
}

// Execute runs a command by id. Commands without a real action in this
// build report through the status bar.
func (s *Shell) Execute(id string) {
	cmd, ok := s.reg.Command(id)
	if !ok {
		return
	}

	switch id {
	case "window.shortcutEditor":
		s.OpenShortcutEditor()
	default:
		s.status.SetText(fmt.Sprintf(" %s · %s", cmd.Category, cmd.Name))
	}
}

// OpenShortcutEditor shows the shortcut dialog as the window's modal.
// A second open while one is up is a no-op.
func (s *Shell) OpenShortcutEditor() {
	if s.editorCtrl != nil {
		return
	}

	s.editorCtrl = editor.NewController(s.reg)
	d := dialog.NewShortcuts(s.editorCtrl, s.CloseShortcutEditor)
	s.window.SetModal(d, dialog.ShortcutsWidth, dialog.ShortcutsHeight)
}

// CloseShortcutEditor dismisses the dialog and tears down its
// controller.
func (s *Shell) CloseShortcutEditor() {
	if s.editorCtrl == nil {
		return
	}

	s.window.ClearModal()
	s.editorCtrl.Close()
	s.editorCtrl = nil
	s.status.SetText(statusHint)

	if s.opts.OnShortcutsClosed != nil {
		s.opts.OnShortcutsClosed()
	}
}

// ShortcutEditorOpen reports whether the dialog is up.
func (s *Shell) ShortcutEditorOpen() bool {
	return s.editorCtrl != nil
}

func (s *Shell) quit() {
	if s.opts.OnQuit != nil {
		s.opts.OnQuit()
	}
}

// shellRoot is the window root: the panel layout plus the status bar,
// with unclaimed key chords routed through the shortcut registry.
type shellRoot struct {
	ui.Base
	shell *Shell
	body  *ui.Box
}

func (r *shellRoot) Children() []ui.Widget {
	return []ui.Widget{r.body}
}

func (r *shellRoot) SetRect(rect ui.Rect) {
	r.Base.SetRect(rect)
	r.body.SetRect(rect)
}

func (r *shellRoot) Draw(s ui.Surface) {
	r.body.Draw(s)
}

func (r *shellRoot) HandleKey(combo key.Combo) bool {
	return r.shell.dispatchChord(combo)
}

func (r *shellRoot) HandleMouse(x, y int, button ui.MouseButton) bool {
	return r.body.HandleMouse(x, y, button)
}
