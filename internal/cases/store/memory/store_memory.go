// Package memory provides an in-memory case store for dev mode and tests.
package memory

import (
	"context"
	"sync"

	"aeroclaim/internal/cases"
	"aeroclaim/pkg/platform/sentinel"
)

// Store keeps cases in a map under a mutex.
type Store struct {
	mu    sync.RWMutex
	cases map[string]cases.Case
}

func New() *Store {
	return &Store{cases: make(map[string]cases.Case)}
}

func (s *Store) Save(_ context.Context, c cases.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases[c.ID.String()] = c
	return nil
}

func (s *Store) FindByID(_ context.Context, id string) (cases.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return cases.Case{}, sentinel.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListByBookingReference(_ context.Context, bookingReference string) ([]cases.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []cases.Case
	for _, c := range s.cases {
		if c.Record.BookingReference == bookingReference {
			out = append(out, c)
		}
	}
	return out, nil
}
