package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"docregistry/internal/event"
	"docregistry/internal/storage"
)

// Archiver batches registry events into JSONL objects in S3-compatible
// storage for long-term retention. Only event metadata is written, never
// document content. A batch is flushed when it reaches batchSize events or
// when flushEvery elapses with a non-empty batch.
type Archiver struct {
	store      storage.Storage
	prefix     string
	batchSize  int
	flushEvery time.Duration
}

// NewArchiver creates an archiver writing under the given key prefix.
func NewArchiver(store storage.Storage, prefix string, batchSize int, flushEvery time.Duration) *Archiver {
	if batchSize <= 0 {
		batchSize = 100
	}
	if flushEvery <= 0 {
		flushEvery = time.Minute
	}
	return &Archiver{store: store, prefix: prefix, batchSize: batchSize, flushEvery: flushEvery}
}

// Run accumulates events from inbox and flushes batches until the context is
// canceled or the inbox is closed. The final partial batch is flushed on exit.
func (a *Archiver) Run(ctx context.Context, inbox <-chan event.Event) error {
	ticker := time.NewTicker(a.flushEvery)
	defer ticker.Stop()

	batch := make([]event.Event, 0, a.batchSize)
	for {
		select {
		case <-ctx.Done():
			a.flush(batch)
			return ctx.Err()
		case <-ticker.C:
			if len(batch) > 0 {
				a.flush(batch)
				batch = batch[:0]
			}
		case ev, ok := <-inbox:
			if !ok {
				a.flush(batch)
				return nil
			}
			batch = append(batch, ev)
			if len(batch) >= a.batchSize {
				a.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (a *Archiver) flush(batch []event.Event) {
	if len(batch) == 0 {
		return
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, ev := range batch {
		if err := enc.Encode(ev); err != nil {
			log.Printf("event archiver: encode failed: %v", err)
			return
		}
	}

	key := a.objectKey(batch[0].Timestamp)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := a.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: "application/x-ndjson",
		Metadata:    map[string]string{"event-count": fmt.Sprintf("%d", len(batch))},
	})
	if err != nil {
		log.Printf("event archiver: put %s failed: %v", key, err)
	}
}

func (a *Archiver) objectKey(ts time.Time) string {
	return fmt.Sprintf("%s/%s/%s.jsonl", a.prefix, ts.UTC().Format("2006/01/02"), uuid.NewString())
}
