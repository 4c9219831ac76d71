package shortcut

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/cutline/internal/input/key"
)

// Registry manages command definitions, their current bindings, and
// presets. Access is synchronized; all operations are in-process.
type Registry struct {
	mu sync.RWMutex

	// commands holds all registered commands by id.
	commands map[string]*Command

	// order preserves registration order for stable listings.
	order []string

	// activePreset is the name of the currently loaded preset.
	activePreset string

	// presetDir is scanned for user preset files (*.json).
	presetDir string
}

// NewRegistry creates a registry populated with the default command set.
func NewRegistry() *Registry {
	r := &Registry{
		commands:     make(map[string]*Command),
		activePreset: PresetDefault,
	}
	registerDefaults(r)
	return r
}

// SetPresetDir sets the directory scanned for user preset files.
func (r *Registry) SetPresetDir(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presetDir = dir
}

// Register adds a command to the registry. A command with the same id
// replaces the previous definition; binding strings are normalized to
// canonical display form.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.ID == "" {
		return fmt.Errorf("register: %w: empty id", ErrUnknownCommand)
	}

	normalized := make([]string, 0, len(cmd.Bindings))
	for _, b := range cmd.Bindings {
		display, err := key.Normalize(b)
		if err != nil {
			return fmt.Errorf("register %s: %w", cmd.ID, err)
		}
		normalized = append(normalized, display)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cmd.Clone()
	clone.Bindings = normalized
	if _, exists := r.commands[cmd.ID]; !exists {
		r.order = append(r.order, cmd.ID)
	}
	r.commands[cmd.ID] = clone
	return nil
}

// Command returns the command with the given id.
func (r *Registry) Command(id string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[id]
	if !ok {
		return nil, false
	}
	return cmd.Clone(), true
}

// Commands returns all commands in registration order.
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Command, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.commands[id].Clone())
	}
	return result
}

// CommandsByCategory returns commands grouped by category. Within a
// category, commands keep registration order.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]*Command)
	for _, id := range r.order {
		cmd := r.commands[id]
		result[cmd.Category] = append(result[cmd.Category], cmd.Clone())
	}
	return result
}

// SetBindings replaces a command's binding list. Combos are normalized;
// order is preserved as given.
func (r *Registry) SetBindings(id string, combos []string) error {
	normalized := make([]string, 0, len(combos))
	for _, c := range combos {
		display, err := key.Normalize(c)
		if err != nil {
			return fmt.Errorf("set bindings for %s: %w", id, err)
		}
		normalized = append(normalized, display)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cmd, ok := r.commands[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	if !cmd.Customizable {
		return fmt.Errorf("%w: %s", ErrNotCustomizable, id)
	}
	cmd.Bindings = normalized
	return nil
}

// Conflicts returns the ids of commands other than excludeID that are
// currently bound to the given combo. The combo is normalized before
// comparison; an unparsable combo yields no conflicts.
func (r *Registry) Conflicts(combo, excludeID string) []string {
	display, err := key.Normalize(combo)
	if err != nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, id := range r.order {
		if id == excludeID {
			continue
		}
		if r.commands[id].HasBinding(display) {
			ids = append(ids, id)
		}
	}
	return ids
}

// ActivePreset returns the name of the currently loaded preset.
func (r *Registry) ActivePreset() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activePreset
}

// ResetToDefaults discards all customizations and reloads the default
// command set with the Default preset.
func (r *Registry) ResetToDefaults() {
	r.mu.Lock()
	r.commands = make(map[string]*Command)
	r.order = nil
	r.activePreset = PresetDefault
	r.mu.Unlock()

	registerDefaults(r)
}

// Categories returns category names in lexicographic order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var result []string
	for _, id := range r.order {
		cat := r.commands[id].Category
		if !seen[cat] {
			seen[cat] = true
			result = append(result, cat)
		}
	}
	sort.Strings(result)
	return result
}
