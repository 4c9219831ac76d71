package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cutline/internal/shell"
	"github.com/dshills/cutline/internal/shortcut"
	"github.com/dshills/cutline/internal/ui"
)

// Engine is a sandboxed Lua interpreter bound to one shell. Scripts
// drive the shell through the ui and shortcuts modules.
type Engine struct {
	L     *lua.LState
	shell *shell.Shell
	reg   *shortcut.Registry

	mu     sync.Mutex
	closed bool
}

// NewEngine creates an engine bound to the shell and registry.
func NewEngine(sh *shell.Shell, reg *shortcut.Registry) *Engine {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	e := &Engine{L: L, shell: sh, reg: reg}
	registerWidgetType(L)
	e.registerUIModule()
	e.registerShortcutsModule()
	return e
}

// openSafeLibraries opens only the side-effect-free standard
// libraries. io, os, debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoFile runs a script from disk.
func (e *Engine) DoFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.doWithRecovery(func() error { return e.L.DoFile(path) }); err != nil {
		return &ScriptError{Source: path, Err: err}
	}
	return nil
}

// DoString runs a script from a string.
func (e *Engine) DoString(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.doWithRecovery(func() error { return e.L.DoString(code) }); err != nil {
		return &ScriptError{Source: "inline", Err: err}
	}
	return nil
}

func (e *Engine) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the interpreter. Further calls return
// ErrEngineClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.L.Close()
	e.closed = true
}

// registerUIModule installs the ui table: widget constructors plus
// modal and status control over the live shell.
func (e *Engine) registerUIModule() {
	funcs := map[string]lua.LGFunction{
		"label":       e.luaLabel,
		"vbox":        e.luaVBox,
		"hbox":        e.luaHBox,
		"splitter":    e.luaSplitter,
		"panel":       e.luaPanel,
		"window":      e.luaPanel,
		"tree":        e.luaTree,
		"show_modal":  e.luaShowModal,
		"close_modal": e.luaCloseModal,
		"status":      e.luaStatus,
		"execute":     e.luaExecute,
	}
	mod := e.L.SetFuncs(e.L.NewTable(), funcs)
	e.L.SetGlobal("ui", mod)
}

// registerShortcutsModule installs the shortcuts table over the
// registry and the editor dialog.
func (e *Engine) registerShortcutsModule() {
	funcs := map[string]lua.LGFunction{
		"open":          e.luaShortcutsOpen,
		"close":         e.luaShortcutsClose,
		"is_open":       e.luaShortcutsIsOpen,
		"presets":       e.luaPresets,
		"active_preset": e.luaActivePreset,
		"switch_preset": e.luaSwitchPreset,
		"bindings":      e.luaBindings,
		"set_bindings":  e.luaSetBindings,
	}
	mod := e.L.SetFuncs(e.L.NewTable(), funcs)
	e.L.SetGlobal("shortcuts", mod)
}

func (e *Engine) luaLabel(L *lua.LState) int {
	text := L.CheckString(1)
	L.Push(wrapWidget(L, ui.NewLabel(text)))
	return 1
}

func (e *Engine) luaVBox(L *lua.LState) int {
	return e.luaBox(L, true)
}

func (e *Engine) luaHBox(L *lua.LState) int {
	return e.luaBox(L, false)
}

// luaBox builds a box from the widget arguments, each stretching
// equally.
func (e *Engine) luaBox(L *lua.LState, vertical bool) int {
	box := ui.NewHBox()
	if vertical {
		box = ui.NewVBox()
	}
	for i := 1; i <= L.GetTop(); i++ {
		box.Add(checkWidget(L, i), ui.Stretch(1))
	}
	L.Push(wrapWidget(L, box))
	return 1
}

func (e *Engine) luaSplitter(L *lua.LState) int {
	orientation := L.CheckString(1)
	ratio := float64(L.CheckNumber(2))
	first := checkWidget(L, 3)
	second := checkWidget(L, 4)

	var sp ui.Widget
	switch orientation {
	case "vertical":
		sp = ui.NewVSplitter(first, second, ratio)
	case "horizontal":
		sp = ui.NewHSplitter(first, second, ratio)
	default:
		L.ArgError(1, "orientation must be horizontal or vertical")
		return 0
	}
	L.Push(wrapWidget(L, sp))
	return 1
}

func (e *Engine) luaPanel(L *lua.LState) int {
	title := L.CheckString(1)
	var child ui.Widget
	if L.GetTop() >= 2 {
		child = checkWidget(L, 2)
	}
	L.Push(wrapWidget(L, ui.NewPanel(title, child)))
	return 1
}

func (e *Engine) luaTree(L *lua.LState) int {
	tree := ui.NewTree(nil)
	if L.GetTop() >= 1 {
		tree.SetItems(tableToTreeItems(L.CheckTable(1)))
	}
	L.Push(wrapWidget(L, tree))
	return 1
}

func (e *Engine) luaShowModal(L *lua.LState) int {
	w := checkWidget(L, 1)
	width := L.CheckInt(2)
	height := L.CheckInt(3)
	e.shell.Window().SetModal(w, width, height)
	return 0
}

func (e *Engine) luaCloseModal(L *lua.LState) int {
	e.shell.Window().ClearModal()
	return 0
}

func (e *Engine) luaStatus(L *lua.LState) int {
	e.shell.SetStatus(L.CheckString(1))
	return 0
}

func (e *Engine) luaExecute(L *lua.LState) int {
	e.shell.Execute(L.CheckString(1))
	return 0
}

func (e *Engine) luaShortcutsOpen(L *lua.LState) int {
	e.shell.OpenShortcutEditor()
	return 0
}

func (e *Engine) luaShortcutsClose(L *lua.LState) int {
	e.shell.CloseShortcutEditor()
	return 0
}

func (e *Engine) luaShortcutsIsOpen(L *lua.LState) int {
	L.Push(lua.LBool(e.shell.ShortcutEditorOpen()))
	return 1
}

func (e *Engine) luaPresets(L *lua.LState) int {
	L.Push(stringsToTable(L, e.reg.Presets()))
	return 1
}

func (e *Engine) luaActivePreset(L *lua.LState) int {
	L.Push(lua.LString(e.reg.ActivePreset()))
	return 1
}

// luaSwitchPreset returns true, or false plus the error message.
func (e *Engine) luaSwitchPreset(L *lua.LState) int {
	name := L.CheckString(1)
	if err := e.reg.LoadPreset(name); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (e *Engine) luaBindings(L *lua.LState) int {
	id := L.CheckString(1)
	cmd, ok := e.reg.Command(id)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(stringsToTable(L, cmd.Bindings))
	return 1
}

// luaSetBindings returns true, or false plus the error message.
func (e *Engine) luaSetBindings(L *lua.LState) int {
	id := L.CheckString(1)
	combos := tableToStrings(L.CheckTable(2))
	if err := e.reg.SetBindings(id, combos); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}
