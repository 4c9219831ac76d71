package editor

import "github.com/google/uuid"

// Session holds the editor's state for one dialog lifetime. It is
// created when the dialog opens and discarded on close; nothing in it
// outlives the dialog.
type Session struct {
	// ID correlates log lines from one dialog lifetime.
	ID string

	// selected is the selected command id, empty for no selection.
	selected string

	// dirty reports uncommitted draft edits.
	dirty bool

	// drafts holds pending binding lists keyed by command id. A command
	// absent from drafts shows its registry bindings.
	drafts map[string][]string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		drafts: make(map[string][]string),
	}
}

// Selected returns the selected command id, empty for no selection.
func (s *Session) Selected() string {
	return s.selected
}

// Dirty reports whether uncommitted edits exist.
func (s *Session) Dirty() bool {
	return s.dirty
}

// draftFor returns the draft binding list for a command, seeding it
// from the given current bindings on first edit.
func (s *Session) draftFor(id string, current []string) []string {
	if d, ok := s.drafts[id]; ok {
		return d
	}
	seed := make([]string, len(current))
	copy(seed, current)
	s.drafts[id] = seed
	return seed
}

// discardDrafts drops all pending edits and clears the dirty flag.
func (s *Session) discardDrafts() {
	s.drafts = make(map[string][]string)
	s.dirty = false
}
