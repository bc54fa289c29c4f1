package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendRecorder is a minimal Store for worker tests; the real
// implementations live in the memory and postgres subpackages.
type appendRecorder struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (r *appendRecorder) Append(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("append failed")
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *appendRecorder) ListByOwner(context.Context, string) ([]Event, error) { return nil, nil }
func (r *appendRecorder) ListRecent(context.Context, int) ([]Event, error)    { return nil, nil }

func (r *appendRecorder) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event{}, r.events...)
}

func TestWorker_PersistsPublishedEventsInOrder(t *testing.T) {
	bus := NewMemoryBus()
	sub, cancel := bus.Subscribe(16)
	defer cancel()

	store := &appendRecorder{}
	worker := NewWorker(store, sub)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	for i := 0; i < 5; i++ {
		bus.Publish(Event{Type: TypeDocumentRegistered, DocumentID: string(rune('a' + i))})
	}

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 5
	}, 2*time.Second, 10*time.Millisecond)

	evs := store.snapshot()
	for i, ev := range evs {
		assert.Equal(t, string(rune('a'+i)), ev.DocumentID)
	}

	stop()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorker_StopsWhenInboxCloses(t *testing.T) {
	bus := NewMemoryBus()
	sub, cancel := bus.Subscribe(4)

	worker := NewWorker(&appendRecorder{}, sub)
	done := make(chan error, 1)
	go func() { done <- worker.Run(context.Background()) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after inbox closed")
	}
}

func TestWorker_AppendFailureDoesNotStopConsumption(t *testing.T) {
	bus := NewMemoryBus()
	sub, cancel := bus.Subscribe(4)
	defer cancel()

	store := &appendRecorder{fail: true}
	worker := NewWorker(store, sub)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go func() { _ = worker.Run(ctx) }()

	bus.Publish(Event{Type: TypeDocumentRegistered, DocumentID: "doc1"})
	bus.Publish(Event{Type: TypeDocumentVerified, DocumentID: "doc1"})

	// The worker keeps draining even though every append fails.
	assert.Eventually(t, func() bool {
		return len(sub) == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, store.snapshot())
}
