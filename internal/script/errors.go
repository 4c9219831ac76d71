package script

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	// ErrEngineClosed indicates use after Close.
	ErrEngineClosed = errors.New("script engine closed")
)

// ScriptError wraps a failure from executing one script.
type ScriptError struct {
	Source string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
