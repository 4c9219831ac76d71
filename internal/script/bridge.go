package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cutline/internal/ui"
)

// widgetTypeName is the metatable name for widget userdata.
const widgetTypeName = "cutline.widget"

// registerWidgetType installs the widget userdata metatable.
func registerWidgetType(L *lua.LState) {
	L.NewTypeMetatable(widgetTypeName)
}

// wrapWidget boxes a widget for Lua.
func wrapWidget(L *lua.LState, w ui.Widget) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = w
	L.SetMetatable(ud, L.GetTypeMetatable(widgetTypeName))
	return ud
}

// checkWidget unboxes a widget argument, raising a Lua error on
// anything else.
func checkWidget(L *lua.LState, n int) ui.Widget {
	ud := L.CheckUserData(n)
	if w, ok := ud.Value.(ui.Widget); ok {
		return w
	}
	L.ArgError(n, "widget expected")
	return nil
}

// stringsToTable converts a string slice to a Lua array table.
func stringsToTable(L *lua.LState, values []string) *lua.LTable {
	tbl := L.NewTable()
	for _, v := range values {
		tbl.Append(lua.LString(v))
	}
	return tbl
}

// tableToStrings converts a Lua array table to a string slice.
// Non-string entries are skipped.
func tableToStrings(tbl *lua.LTable) []string {
	var out []string
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}

// tableToTreeItems converts a nested Lua table into tree items. Each
// entry is a table with id, label, and an optional children array.
func tableToTreeItems(tbl *lua.LTable) []*ui.TreeItem {
	var items []*ui.TreeItem
	tbl.ForEach(func(_, v lua.LValue) {
		entry, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		item := &ui.TreeItem{
			ID:       lua.LVAsString(entry.RawGetString("id")),
			Label:    lua.LVAsString(entry.RawGetString("label")),
			Expanded: lua.LVAsBool(entry.RawGetString("expanded")),
			Visible:  true,
		}
		if children, ok := entry.RawGetString("children").(*lua.LTable); ok {
			item.Children = tableToTreeItems(children)
		}
		items = append(items, item)
	})
	return items
}
