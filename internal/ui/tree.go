package ui

import "github.com/dshills/cutline/internal/input/key"

// TreeItem is one node of a Tree widget's model. Branch items hold
// children and can collapse; leaves cannot.
type TreeItem struct {
	ID       string
	Label    string
	Expanded bool
	Visible  bool
	Children []*TreeItem
}

// Tree shows a two-level expandable outline. Up/Down move the cursor
// over visible rows, Left collapses, Right expands, and the selection
// callback fires with the row's item id.
type Tree struct {
	Base
	items    []*TreeItem
	cursor   int
	scroll   int
	theme    Theme
	onSelect func(id string)
}

// treeRow is one flattened visible row.
type treeRow struct {
	item   *TreeItem
	branch bool
}

// NewTree creates an empty tree. onSelect fires when the cursor moves
// and may be nil.
func NewTree(onSelect func(id string)) *Tree {
	return &Tree{theme: DefaultTheme(), onSelect: onSelect}
}

// SetItems replaces the model and clamps the cursor to the new rows.
func (t *Tree) SetItems(items []*TreeItem) {
	t.items = items
	rows := t.visibleRows()
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// SelectedID returns the id of the row under the cursor, empty when
// the tree has no visible rows.
func (t *Tree) SelectedID() string {
	rows := t.visibleRows()
	if t.cursor < 0 || t.cursor >= len(rows) {
		return ""
	}
	return rows[t.cursor].item.ID
}

// SelectID moves the cursor to the row with the given id.
func (t *Tree) SelectID(id string) {
	for i, row := range t.visibleRows() {
		if row.item.ID == id {
			t.cursor = i
			t.notify()
			return
		}
	}
}

// visibleRows flattens the model into the rows currently shown.
// Collapsed branches hide their children; filtered items are skipped.
func (t *Tree) visibleRows() []treeRow {
	var rows []treeRow
	for _, branch := range t.items {
		if !branch.Visible {
			continue
		}
		rows = append(rows, treeRow{item: branch, branch: true})
		if !branch.Expanded {
			continue
		}
		for _, leaf := range branch.Children {
			if leaf.Visible {
				rows = append(rows, treeRow{item: leaf})
			}
		}
	}
	return rows
}

func (t *Tree) Focusable() bool { return true }

func (t *Tree) Draw(s Surface) {
	r := t.Rect()
	if r.IsEmpty() {
		return
	}

	rows := t.visibleRows()
	t.adjustScroll(r.H, len(rows))

	for row := 0; row < r.H; row++ {
		idx := t.scroll + row
		if idx >= len(rows) {
			break
		}

		style := t.theme.Base
		if idx == t.cursor && t.Focused() {
			style = t.theme.Selected
		} else if idx == t.cursor {
			style = t.theme.Base.Bold()
		}

		var text string
		if rows[idx].branch {
			marker := "▸ "
			if rows[idx].item.Expanded {
				marker = "▾ "
			}
			text = marker + rows[idx].item.Label
		} else {
			text = "    " + rows[idx].item.Label
		}

		s.Fill(Rect{X: r.X, Y: r.Y + row, W: r.W, H: 1}, ' ', style)
		s.SetString(r.X, r.Y+row, clipText(text, r.W), style)
	}
}

func (t *Tree) adjustScroll(height, rowCount int) {
	if height < 1 {
		return
	}
	if t.cursor >= rowCount {
		t.cursor = rowCount - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor < t.scroll {
		t.scroll = t.cursor
	}
	if t.cursor >= t.scroll+height {
		t.scroll = t.cursor - height + 1
	}
}

func (t *Tree) HandleKey(combo key.Combo) bool {
	if !combo.Modifiers.IsEmpty() {
		return false
	}

	rows := t.visibleRows()
	if len(rows) == 0 {
		return false
	}

	switch combo.Key {
	case key.KeyUp:
		if t.cursor > 0 {
			t.cursor--
			t.notify()
		}
		return true
	case key.KeyDown:
		if t.cursor < len(rows)-1 {
			t.cursor++
			t.notify()
		}
		return true
	case key.KeyLeft:
		if row := rows[t.cursor]; row.branch && row.item.Expanded {
			row.item.Expanded = false
		}
		return true
	case key.KeyRight:
		if row := rows[t.cursor]; row.branch && !row.item.Expanded {
			row.item.Expanded = true
		}
		return true
	case key.KeyHome:
		t.cursor = 0
		t.notify()
		return true
	case key.KeyEnd:
		t.cursor = len(rows) - 1
		t.notify()
		return true
	}
	return false
}

func (t *Tree) HandleMouse(x, y int, button MouseButton) bool {
	r := t.Rect()
	if !r.Contains(x, y) {
		return false
	}

	rows := t.visibleRows()
	switch button {
	case MouseLeft:
		idx := t.scroll + y - r.Y
		if idx < len(rows) {
			t.cursor = idx
			if rows[idx].branch {
				rows[idx].item.Expanded = !rows[idx].item.Expanded
			}
			t.notify()
		}
		return true
	case MouseWheelUp:
		if t.scroll > 0 {
			t.scroll--
		}
		return true
	case MouseWheelDown:
		if t.scroll < len(rows)-1 {
			t.scroll++
		}
		return true
	}
	return false
}

func (t *Tree) notify() {
	if t.onSelect != nil {
		t.onSelect(t.SelectedID())
	}
}
