package memory

import (
	"context"
	"sync"

	"docregistry/internal/event"
)

// Store keeps the event log in memory, grouped per owner with a global
// append order for recency queries.
type Store struct {
	mu      sync.RWMutex
	byOwner map[string][]event.Event
	all     []event.Event
}

func NewStore() *Store {
	return &Store{byOwner: make(map[string][]event.Event)}
}

var _ event.Store = (*Store)(nil)

func (s *Store) Append(_ context.Context, ev event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byOwner[ev.Owner] = append(s.byOwner[ev.Owner], ev)
	s.all = append(s.all, ev)
	return nil
}

func (s *Store) ListByOwner(_ context.Context, owner string) ([]event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]event.Event{}, s.byOwner[owner]...), nil
}

func (s *Store) ListRecent(_ context.Context, limit int) ([]event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.all) - limit
	if limit <= 0 || start < 0 {
		start = 0
	}
	return append([]event.Event{}, s.all[start:]...), nil
}
