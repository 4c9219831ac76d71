package editor

import "errors"

// Controller errors.
var (
	// ErrPresetLoad indicates a preset failed to load. The session and
	// tree are unchanged; the message is shown to the operator.
	ErrPresetLoad = errors.New("preset load failed")
)
