package shortcut

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrUnknownCommand indicates a command id not present in the registry.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownPreset indicates a preset name the registry cannot resolve.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrNotCustomizable indicates an attempt to rebind a fixed command.
	ErrNotCustomizable = errors.New("command is not customizable")
)

// PresetError reports a failure to load a named preset.
type PresetError struct {
	Name string
	Err  error
}

func (e *PresetError) Error() string {
	return fmt.Sprintf("loading preset %q: %v", e.Name, e.Err)
}

func (e *PresetError) Unwrap() error {
	return e.Err
}
