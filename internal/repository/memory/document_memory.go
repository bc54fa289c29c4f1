package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"docregistry/internal/model"
	"docregistry/internal/repository"
)

type key struct {
	owner      string
	documentID string
}

// DocumentMemory is an in-memory implementation of repository.RegistryRepository,
// used for tests and single-process deployments without PostgreSQL.
// A single RWMutex guards both the record map and the per-owner identifier
// lists; every critical section is constant-time, so insert-or-conflict stays
// atomic without per-key locks. Assigned timestamps are clamped to be
// monotonic non-decreasing even if the wall clock steps backwards.
type DocumentMemory struct {
	mu     sync.RWMutex
	docs   map[key]model.Document
	order  map[string][]string
	lastTS time.Time

	now func() time.Time
}

// NewDocumentMemory creates an empty in-memory repository.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{
		docs:  make(map[key]model.Document),
		order: make(map[string][]string),
		now:   time.Now,
	}
}

var _ repository.RegistryRepository = (*DocumentMemory)(nil)

func (r *DocumentMemory) Insert(_ context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{owner: doc.Owner, documentID: doc.DocumentID}
	if _, ok := r.docs[k]; ok {
		return nil, fmt.Errorf("insert document %s/%s: %w", doc.Owner, doc.DocumentID, repository.ErrConflict)
	}

	ts := r.now().UTC()
	if ts.Before(r.lastTS) {
		ts = r.lastTS
	}
	r.lastTS = ts

	stored := model.Document{
		Owner:        doc.Owner,
		DocumentID:   doc.DocumentID,
		DocumentHash: doc.DocumentHash,
		DocumentType: doc.DocumentType,
		Timestamp:    ts,
	}
	r.docs[k] = stored
	r.order[doc.Owner] = append(r.order[doc.Owner], doc.DocumentID)

	out := stored
	return &out, nil
}

func (r *DocumentMemory) Find(_ context.Context, owner, documentID string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.docs[key{owner: owner, documentID: documentID}]
	if !ok {
		return nil, fmt.Errorf("find document %s/%s: %w", owner, documentID, repository.ErrNotFound)
	}
	out := d
	return &out, nil
}

func (r *DocumentMemory) ListIDs(_ context.Context, owner string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.order[owner]...), nil
}

func (r *DocumentMemory) Count(_ context.Context, owner string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order[owner]), nil
}
