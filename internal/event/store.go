package event

import "context"

// Store is the append-only event log. Events are never updated or removed;
// late observers replay the trail through the list methods.
type Store interface {
	Append(ctx context.Context, ev Event) error
	// ListByOwner returns the owner's events in append order.
	ListByOwner(ctx context.Context, owner string) ([]Event, error)
	// ListRecent returns up to limit of the most recently appended events,
	// in append order. A limit <= 0 returns the whole log.
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
