package event

import (
	"context"
	"log"
)

// Worker drains a bus subscription into the event log so late observers can
// replay the trail. Append failures are logged and skipped: the log is a
// best-effort audit trail and must never stall the live feed behind it.
type Worker struct {
	store Store
	inbox <-chan Event
}

func NewWorker(store Store, inbox <-chan Event) *Worker {
	return &Worker{store: store, inbox: inbox}
}

// Run consumes events until the context is canceled or the inbox is closed.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, ev); err != nil {
				log.Printf("event worker: append %s for %s/%s failed: %v", ev.Type, ev.Owner, ev.DocumentID, err)
			}
		}
	}
}
