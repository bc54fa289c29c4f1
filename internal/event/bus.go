package event

import (
	"sync"
	"sync/atomic"
)

// Bus broadcasts registry events to in-process subscribers.
//
// Delivery is best-effort at-most-once to currently subscribed observers:
// Publish never blocks and never fails the write that produced the event.
// When a subscriber's buffer is full the event is dropped for that subscriber
// and counted. Observers that need the full trail read the persisted log
// (Store) instead of relying on the live feed.
type Bus interface {
	Publish(ev Event)
	// Subscribe registers an observer with the given channel buffer size.
	// The returned cancel func unregisters the observer and closes its channel.
	Subscribe(buffer int) (<-chan Event, func())
}

const defaultBuffer = 256

// MemoryBus is the in-process Bus implementation.
type MemoryBus struct {
	mu      sync.RWMutex
	subs    map[int]chan Event
	nextID  int
	dropped atomic.Int64
}

// NewMemoryBus creates a bus with no subscribers.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[int]chan Event)}
}

var _ Bus = (*MemoryBus)(nil)

func (b *MemoryBus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.dropped.Add(1)
		}
	}
}

func (b *MemoryBus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Dropped returns the total number of events discarded because a subscriber
// could not keep up.
func (b *MemoryBus) Dropped() int64 {
	return b.dropped.Load()
}
