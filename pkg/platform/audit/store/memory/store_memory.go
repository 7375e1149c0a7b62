// Package memory provides an in-memory audit store. Used in dev mode and as
// the recorder tests assert against.
package memory

import (
	"context"
	"sync"

	"aeroclaim/pkg/platform/audit"
)

// Store appends events to a slice under a mutex.
type Store struct {
	mu     sync.Mutex
	events []audit.Event
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *Store) Events() []audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]audit.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Emit lets the memory store double as an Emitter in dev wiring and tests.
func (s *Store) Emit(ctx context.Context, event audit.Event) error {
	return s.Append(ctx, event)
}
