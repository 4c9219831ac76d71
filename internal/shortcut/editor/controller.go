package editor

import (
	"fmt"

	"github.com/dshills/cutline/internal/input/key"
	"github.com/dshills/cutline/internal/shortcut"
)

// Registry is the shortcut registry surface the controller consumes.
type Registry interface {
	CommandsByCategory() map[string][]*shortcut.Command
	Command(id string) (*shortcut.Command, bool)
	SetBindings(id string, combos []string) error
	LoadPreset(name string) error
	ResetToDefaults()
	Presets() []string
	ActivePreset() string
	Conflicts(combo, excludeID string) []string
}

// Controller mediates between the shortcut dialog's widgets and the
// registry. Construct with NewController when the dialog opens; call
// Close when it closes.
type Controller struct {
	reg     Registry
	session *Session

	// tree is the current category/command tree.
	tree []*Node

	// nodeCommand maps tree node ids to command ids. Category nodes
	// are absent from the map.
	nodeCommand map[string]string

	// query is the active filter text.
	query string
}

// NewController creates a controller bound to the registry and loads
// the initial tree.
func NewController(reg Registry) *Controller {
	c := &Controller{
		reg:     reg,
		session: NewSession(),
	}
	c.Load()
	return c
}

// Session exposes the editor session for inspection.
func (c *Controller) Session() *Session {
	return c.session
}

// Tree returns the current command tree.
func (c *Controller) Tree() []*Node {
	return c.tree
}

// Load rebuilds the tree from a fresh registry snapshot, replacing the
// prior contents entirely. A selection that no longer resolves is
// cleared; the active filter is re-applied.
func (c *Controller) Load() {
	byCategory := c.reg.CommandsByCategory()
	c.tree = buildTree(byCategory)

	c.nodeCommand = make(map[string]string)
	for _, cat := range c.tree {
		for _, child := range cat.Children {
			c.nodeCommand[child.ID] = child.CommandID
		}
	}

	// Stale selection means no selection, never a dangling reference.
	if c.session.selected != "" {
		if _, ok := c.reg.Command(c.session.selected); !ok {
			c.session.selected = ""
		}
	}

	applyFilter(c.tree, c.query)
}

// Select updates the selection from a tree node id. Command nodes set
// the selected command; category nodes (or unknown ids) clear it.
func (c *Controller) Select(nodeID string) {
	if id, ok := c.nodeCommand[nodeID]; ok {
		c.session.selected = id
		return
	}
	c.session.selected = ""
}

// BindingList returns the selected command's bindings in registry order,
// with any draft edits applied. Nil when nothing is selected.
func (c *Controller) BindingList() []string {
	id := c.session.selected
	if id == "" {
		return nil
	}

	if draft, ok := c.session.drafts[id]; ok {
		out := make([]string, len(draft))
		copy(out, draft)
		return out
	}

	cmd, ok := c.reg.Command(id)
	if !ok {
		return nil
	}
	return cmd.Bindings
}

// Filter hides tree nodes whose display text does not contain the query
// and categories left with no visible children. Matching is
// case-insensitive substring; empty query shows everything.
func (c *Controller) Filter(query string) {
	c.query = query
	applyFilter(c.tree, query)
}

// AddBinding appends a captured combo to the selected command's draft.
// No selection, a fixed command, or an unparsable combo is a no-op.
func (c *Controller) AddBinding(combo string) {
	cmd, ok := c.selectedCommand()
	if !ok {
		return
	}

	display, err := key.Normalize(combo)
	if err != nil {
		return
	}

	draft := c.session.draftFor(cmd.ID, cmd.Bindings)
	c.session.drafts[cmd.ID] = append(draft, display)
	c.session.dirty = true
}

// RemoveBinding removes one binding by position from the selected
// command's draft. Out-of-range positions and missing selection are
// no-ops.
func (c *Controller) RemoveBinding(index int) {
	cmd, ok := c.selectedCommand()
	if !ok {
		return
	}

	draft := c.session.draftFor(cmd.ID, cmd.Bindings)
	if index < 0 || index >= len(draft) {
		return
	}

	c.session.drafts[cmd.ID] = append(draft[:index], draft[index+1:]...)
	c.session.dirty = true
}

// ClearBindings empties the selected command's draft binding list.
func (c *Controller) ClearBindings() {
	cmd, ok := c.selectedCommand()
	if !ok {
		return
	}

	c.session.draftFor(cmd.ID, cmd.Bindings)
	c.session.drafts[cmd.ID] = nil
	c.session.dirty = true
}

// Conflicts reports commands other than the selected one already bound
// to the combo.
func (c *Controller) Conflicts(combo string) []string {
	return c.reg.Conflicts(combo, c.session.selected)
}

// SwitchPreset loads a named preset. On failure the error is returned
// and the session, drafts, and tree are untouched. On success the tree
// reloads, drafts are discarded, and the selection clears.
func (c *Controller) SwitchPreset(name string) error {
	if err := c.reg.LoadPreset(name); err != nil {
		return fmt.Errorf("%w: %v", ErrPresetLoad, err)
	}

	c.session.discardDrafts()
	c.session.selected = ""
	c.Load()
	return nil
}

// Apply commits all pending drafts to the registry and clears the dirty
// flag. Calling it with no pending edits is a no-op.
func (c *Controller) Apply() error {
	if !c.session.dirty {
		return nil
	}

	for id, draft := range c.session.drafts {
		if err := c.reg.SetBindings(id, draft); err != nil {
			return fmt.Errorf("applying bindings for %s: %w", id, err)
		}
	}

	c.session.discardDrafts()
	c.Load()
	return nil
}

// ResetToDefaults discards all registry customizations and pending
// drafts, then reloads the tree.
func (c *Controller) ResetToDefaults() {
	c.reg.ResetToDefaults()
	c.session.discardDrafts()
	c.session.selected = ""
	c.Load()
}

// Presets returns the registry's available preset names.
func (c *Controller) Presets() []string {
	return c.reg.Presets()
}

// ActivePreset returns the registry's active preset name.
func (c *Controller) ActivePreset() string {
	return c.reg.ActivePreset()
}

// Close tears down the session. The controller must not be used after.
func (c *Controller) Close() {
	c.session = nil
	c.tree = nil
	c.nodeCommand = nil
}

// selectedCommand resolves the current selection against the registry.
// Editing a fixed command is refused here so every mutation path shares
// the same no-op behavior.
func (c *Controller) selectedCommand() (*shortcut.Command, bool) {
	id := c.session.selected
	if id == "" {
		return nil, false
	}
	cmd, ok := c.reg.Command(id)
	if !ok || !cmd.Customizable {
		return nil, false
	}
	return cmd, true
}
