package archive

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"docregistry/internal/event"
	"docregistry/internal/storage"
	storeMocks "docregistry/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// capturePut records uploaded object bodies so tests can decode the batches.
type capturePut struct {
	mu      sync.Mutex
	objects map[string]string
}

func (c *capturePut) install(m *storeMocks.MockStorage) {
	c.objects = make(map[string]string)
	m.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
			body, _ := io.ReadAll(r)
			c.mu.Lock()
			c.objects[key] = string(body)
			c.mu.Unlock()
			return storage.ObjectInfo{Key: key}
		}, nil)
}

func (c *capturePut) snapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.objects))
	for k, v := range c.objects {
		out[k] = v
	}
	return out
}

func decodeBatch(t *testing.T, body string) []event.Event {
	t.Helper()
	var evs []event.Event
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		var ev event.Event
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		evs = append(evs, ev)
	}
	return evs
}

func TestArchiver_FlushesFullBatch(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	rec := &capturePut{}
	rec.install(mStore)

	arch := NewArchiver(mStore, "events", 3, time.Hour)

	inbox := make(chan event.Event)
	done := make(chan error, 1)
	go func() { done <- arch.Run(context.Background(), inbox) }()

	ts := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		inbox <- event.Event{
			Type:       event.TypeDocumentRegistered,
			Owner:      "owner-a",
			DocumentID: "doc1",
			Timestamp:  ts,
		}
	}

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	close(inbox)
	require.NoError(t, <-done)

	for key, body := range rec.snapshot() {
		assert.True(t, strings.HasPrefix(key, "events/2026/05/04/"), "unexpected key %s", key)
		assert.True(t, strings.HasSuffix(key, ".jsonl"))
		evs := decodeBatch(t, body)
		assert.Len(t, evs, 3)
	}
	mStore.AssertExpectations(t)
}

func TestArchiver_FlushesPartialBatchOnClose(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	rec := &capturePut{}
	rec.install(mStore)

	arch := NewArchiver(mStore, "events", 100, time.Hour)

	inbox := make(chan event.Event)
	done := make(chan error, 1)
	go func() { done <- arch.Run(context.Background(), inbox) }()

	inbox <- event.Event{Type: event.TypeDocumentVerified, Owner: "owner-a", DocumentID: "doc1", Matched: true, Timestamp: time.Now().UTC()}
	close(inbox)

	require.NoError(t, <-done)

	objects := rec.snapshot()
	require.Len(t, objects, 1)
	for _, body := range objects {
		evs := decodeBatch(t, body)
		require.Len(t, evs, 1)
		assert.True(t, evs[0].Matched)
	}
}

func TestArchiver_FlushesOnInterval(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	rec := &capturePut{}
	rec.install(mStore)

	arch := NewArchiver(mStore, "events", 100, 20*time.Millisecond)

	inbox := make(chan event.Event)
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- arch.Run(ctx, inbox) }()

	inbox <- event.Event{Type: event.TypeDocumentRegistered, Owner: "owner-a", DocumentID: "doc1", Timestamp: time.Now().UTC()}

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 5*time.Millisecond)

	stop()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestArchiver_NothingToFlush(t *testing.T) {
	mStore := new(storeMocks.MockStorage)

	arch := NewArchiver(mStore, "events", 10, time.Hour)

	inbox := make(chan event.Event)
	done := make(chan error, 1)
	go func() { done <- arch.Run(context.Background(), inbox) }()

	close(inbox)
	require.NoError(t, <-done)

	// No Put call expected for an empty batch.
	mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
