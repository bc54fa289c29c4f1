package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"docregistry/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndListByOwner(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(ctx, event.Event{
			Type:       event.TypeDocumentRegistered,
			Owner:      "owner-a",
			DocumentID: fmt.Sprintf("doc%d", i),
			Timestamp:  time.Now().UTC(),
		}))
	}
	require.NoError(t, store.Append(ctx, event.Event{
		Type:       event.TypeDocumentVerified,
		Owner:      "owner-b",
		DocumentID: "doc0",
	}))

	evs, err := store.ListByOwner(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, evs, 3)
	for i, ev := range evs {
		assert.Equal(t, fmt.Sprintf("doc%d", i), ev.DocumentID)
	}

	evs, err = store.ListByOwner(ctx, "owner-b")
	require.NoError(t, err)
	assert.Len(t, evs, 1)

	evs, err = store.ListByOwner(ctx, "owner-c")
	require.NoError(t, err)
	assert.Empty(t, evs)
}

func TestStore_ListRecent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, event.Event{
			Owner:      fmt.Sprintf("owner-%d", i%2),
			DocumentID: fmt.Sprintf("doc%d", i),
		}))
	}

	evs, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "doc3", evs[0].DocumentID)
	assert.Equal(t, "doc4", evs[1].DocumentID)

	evs, err = store.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, evs, 5)

	evs, err = store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, evs, 5)
}
