package dialog

import (
	"fmt"
	"strings"

	"github.com/dshills/cutline/internal/input/key"
	"github.com/dshills/cutline/internal/shortcut/editor"
	"github.com/dshills/cutline/internal/ui"
)

// Suggested modal dimensions for the shortcut editor.
const (
	ShortcutsWidth  = 76
	ShortcutsHeight = 22
)

// Shortcuts is the keyboard shortcut editor dialog. The left pane
// shows the command tree, the right pane the selected command's
// bindings. Esc closes the dialog; pressing Add arms key capture so
// the next chord becomes a new binding.
type Shortcuts struct {
	ui.Base

	ctrl    *editor.Controller
	onClose func()

	root     *ui.Panel
	tree     *ui.Tree
	bindings *ui.List
	filter   *ui.LineEdit
	preset   *ui.Select
	status   *ui.Label

	// capturing routes the next key chord into AddBinding.
	capturing bool

	theme ui.Theme
}

// NewShortcuts builds the dialog around a controller. onClose is
// invoked when the operator dismisses the dialog; the caller clears
// the modal and closes the controller.
func NewShortcuts(ctrl *editor.Controller, onClose func()) *Shortcuts {
	d := &Shortcuts{
		ctrl:    ctrl,
		onClose: onClose,
		theme:   ui.DefaultTheme(),
	}

	d.tree = ui.NewTree(func(id string) {
		d.ctrl.Select(id)
		d.refreshBindings()
	})
	d.bindings = ui.NewList(nil)
	d.filter = ui.NewLineEdit("Filter commands", func(text string) {
		d.ctrl.Filter(text)
		d.refreshTree()
	})
	d.preset = ui.NewSelect(ctrl.Presets(), func(name string) {
		d.switchPreset(name)
	})
	d.status = ui.NewLabel("")

	topRow := ui.NewHBox()
	topRow.Add(ui.NewLabel("Preset:"), ui.Fixed(8))
	topRow.Add(d.preset, ui.Fixed(20))
	topRow.Add(ui.NewLabel(" "), ui.Fixed(2))
	topRow.Add(d.filter, ui.Stretch(1))

	editRow := ui.NewHBox()
	editRow.Add(ui.NewButton("Add", d.startCapture), ui.Fixed(9))
	editRow.Add(ui.NewButton("Remove", d.removeBinding), ui.Fixed(12))
	editRow.Add(ui.NewButton("Clear", d.clearBindings), ui.Fixed(11))

	right := ui.NewVBox()
	right.Add(d.bindings, ui.Stretch(1))
	right.Add(editRow, ui.Fixed(1))

	bottomRow := ui.NewHBox()
	bottomRow.Add(ui.NewButton("Reset to Defaults", d.resetDefaults), ui.Fixed(23))
	bottomRow.Add(d.status, ui.Stretch(1))
	bottomRow.Add(ui.NewButton("Apply", d.apply), ui.Fixed(11))
	bottomRow.Add(ui.NewButton("Close", d.close), ui.Fixed(11))

	body := ui.NewVBox()
	body.Add(topRow, ui.Fixed(1))
	body.Add(ui.NewHSplitter(d.tree, right, 0.5), ui.Stretch(1))
	body.Add(bottomRow, ui.Fixed(1))

	d.root = ui.NewPanel("Keyboard Shortcuts", body)

	d.refresh()
	return d
}

// Children exposes the dialog body for focus traversal.
func (d *Shortcuts) Children() []ui.Widget {
	return []ui.Widget{d.root}
}

// SetRect assigns the region to the dialog frame.
func (d *Shortcuts) SetRect(r ui.Rect) {
	d.Base.SetRect(r)
	d.root.SetRect(r)
}

func (d *Shortcuts) Draw(s ui.Surface) {
	r := d.Rect()
	if r.IsEmpty() {
		return
	}

	s.Fill(r, ' ', d.theme.Overlay)
	d.root.Draw(s)

	if d.capturing {
		d.drawCapturePrompt(s, r)
	}
}

// drawCapturePrompt overlays the key-capture banner.
func (d *Shortcuts) drawCapturePrompt(s ui.Surface, r ui.Rect) {
	msg := " Press the new shortcut (Esc cancels) "
	w := len([]rune(msg)) + 2
	box := ui.Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + r.H/2 - 1,
		W: w,
		H: 3,
	}
	s.Fill(box, ' ', d.theme.Selected)
	s.SetString(box.X+1, box.Y+1, msg, d.theme.Selected)
}

// InterceptKey claims every chord while capture is armed, ahead of
// the focused widget.
func (d *Shortcuts) InterceptKey(combo key.Combo) bool {
	if !d.capturing {
		return false
	}
	d.finishCapture(combo)
	return true
}

// HandleKey closes on Esc; capture chords arrive via InterceptKey.
func (d *Shortcuts) HandleKey(combo key.Combo) bool {
	if d.capturing {
		d.finishCapture(combo)
		return true
	}

	if combo.Key == key.KeyEscape && combo.Modifiers.IsEmpty() {
		d.close()
		return true
	}
	return false
}

func (d *Shortcuts) HandleMouse(x, y int, button ui.MouseButton) bool {
	if d.capturing {
		// Only keys end capture.
		return true
	}
	return d.root.HandleMouse(x, y, button)
}

// startCapture arms capture of the next key chord.
func (d *Shortcuts) startCapture() {
	if d.ctrl.Session().Selected() == "" {
		d.status.SetText("Select a command first")
		return
	}
	d.capturing = true
}

// finishCapture turns the chord into a binding. Esc cancels; chords
// that cannot form a shortcut are ignored and capture stays armed.
func (d *Shortcuts) finishCapture(combo key.Combo) {
	if combo.Key == key.KeyEscape && combo.Modifiers.IsEmpty() {
		d.capturing = false
		d.status.SetText("")
		return
	}
	if combo.IsZero() {
		return
	}

	d.capturing = false
	display := combo.DisplayString()
	conflicts := d.ctrl.Conflicts(display)

	d.ctrl.AddBinding(display)
	d.refreshBindings()

	// Conflict warnings outrank the dirty indicator.
	if len(conflicts) > 0 {
		d.status.SetText(fmt.Sprintf("%s also bound to %s", display, strings.Join(conflicts, ", ")))
	}
}

func (d *Shortcuts) removeBinding() {
	idx := d.bindings.Selected()
	if idx < 0 {
		return
	}
	d.ctrl.RemoveBinding(idx)
	d.refreshBindings()
}

func (d *Shortcuts) clearBindings() {
	d.ctrl.ClearBindings()
	d.refreshBindings()
}

func (d *Shortcuts) switchPreset(name string) {
	if err := d.ctrl.SwitchPreset(name); err != nil {
		d.status.SetText(fmt.Sprintf("Preset %s: %v", name, err))
		d.preset.SetCurrent(d.ctrl.ActivePreset())
		return
	}
	d.status.SetText("")
	d.refresh()
}

func (d *Shortcuts) apply() {
	if err := d.ctrl.Apply(); err != nil {
		d.status.SetText(fmt.Sprintf("Apply failed: %v", err))
		return
	}
	d.status.SetText("")
	d.refresh()
}

func (d *Shortcuts) resetDefaults() {
	d.ctrl.ResetToDefaults()
	d.preset.SetCurrent(d.ctrl.ActivePreset())
	d.status.SetText("")
	d.refresh()
}

func (d *Shortcuts) close() {
	if d.onClose != nil {
		d.onClose()
	}
}

// refresh resyncs every widget with the controller.
func (d *Shortcuts) refresh() {
	d.preset.SetCurrent(d.ctrl.ActivePreset())
	d.refreshTree()
	d.refreshBindings()
}

// refreshTree rebuilds the tree widget from the controller's nodes.
func (d *Shortcuts) refreshTree() {
	nodes := d.ctrl.Tree()
	items := make([]*ui.TreeItem, 0, len(nodes))
	for _, cat := range nodes {
		branch := &ui.TreeItem{
			ID:       cat.ID,
			Label:    cat.Label,
			Expanded: cat.Expanded,
			Visible:  cat.Visible,
		}
		for _, child := range cat.Children {
			branch.Children = append(branch.Children, &ui.TreeItem{
				ID:      child.ID,
				Label:   child.Label,
				Visible: child.Visible,
			})
		}
		items = append(items, branch)
	}
	d.tree.SetItems(items)
	d.ctrl.Select(d.tree.SelectedID())
}

// refreshBindings rebuilds the binding list and the dirty indicator.
func (d *Shortcuts) refreshBindings() {
	d.bindings.SetItems(d.ctrl.BindingList())
	if d.ctrl.Session().Dirty() {
		d.status.SetText("Modified (Apply to save)")
	}
}
