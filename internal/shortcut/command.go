package shortcut

// Command represents an addressable editor action that can have zero or
// more key-combination bindings.
type Command struct {
	// ID is the stable identifier, e.g. "playback.playPause".
	ID string

	// Name is the display name shown in the editor dialog.
	Name string

	// Category groups commands for display, e.g. "Playback".
	Category string

	// Bindings holds the current key combinations in insertion order,
	// canonical display form ("Ctrl+K").
	Bindings []string

	// Customizable reports whether the bindings may be edited.
	Customizable bool
}

// Clone returns a deep copy of the command.
func (c *Command) Clone() *Command {
	clone := &Command{
		ID:           c.ID,
		Name:         c.Name,
		Category:     c.Category,
		Customizable: c.Customizable,
	}
	if c.Bindings != nil {
		clone.Bindings = make([]string, len(c.Bindings))
		copy(clone.Bindings, c.Bindings)
	}
	return clone
}

// HasBinding returns true if the command currently has the given combo.
func (c *Command) HasBinding(combo string) bool {
	for _, b := range c.Bindings {
		if b == combo {
			return true
		}
	}
	return false
}
