package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docregistry/internal/event"
	"docregistry/internal/model"
	"docregistry/internal/repository"
)

var (
	ErrOwnerRequired      = errors.New("owner is required")
	ErrDocumentIDRequired = errors.New("document id is required")
	ErrAlreadyRegistered  = errors.New("document already registered")
	ErrNotFound           = errors.New("document not found")
)

// Service defines the registry operations exposed to callers.
//
// Register and Verify always act within the caller's own namespace: the owner
// of a created record is the calling identity, and verification looks up the
// caller's records only. The query methods are open reads addressed by owner.
type Service interface {
	// Register commits a new fingerprint record under (caller, documentID)
	// and returns it with the store-assigned timestamp.
	// Fails with ErrAlreadyRegistered when the slot is occupied; a failed
	// registration leaves no trace in the store.
	Register(ctx context.Context, caller, documentID, documentHash, documentType string) (*model.Document, error)

	// Verify compares candidateHash against the hash stored at
	// (caller, documentID) using exact string equality. A mismatch is a
	// normal false result; only a missing record is an error (ErrNotFound).
	Verify(ctx context.Context, caller, documentID, candidateHash string) (bool, error)

	// Get returns the record at (owner, documentID) or ErrNotFound.
	Get(ctx context.Context, owner, documentID string) (*model.Document, error)

	// ListIDs returns the owner's document identifiers in registration order.
	ListIDs(ctx context.Context, owner string) ([]string, error)

	// Count returns the number of documents registered under owner.
	Count(ctx context.Context, owner string) (int, error)
}

type service struct {
	repo repository.RegistryRepository
	bus  event.Bus
	now  func() time.Time
}

// NewService constructs the registry engine. Events are published to bus on
// every registration and verification; queries emit nothing.
func NewService(repo repository.RegistryRepository, bus event.Bus) Service {
	return &service{repo: repo, bus: bus, now: time.Now}
}

func (s *service) Register(ctx context.Context, caller, documentID, documentHash, documentType string) (*model.Document, error) {
	if caller == "" {
		return nil, ErrOwnerRequired
	}
	if documentID == "" {
		return nil, ErrDocumentIDRequired
	}
	// Empty hash and type are tolerated: both are opaque caller-supplied
	// tokens the registry never interprets.

	stored, err := s.repo.Insert(ctx, &model.Document{
		Owner:        caller,
		DocumentID:   documentID,
		DocumentHash: documentHash,
		DocumentType: documentType,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("register %s/%s: %w", caller, documentID, ErrAlreadyRegistered)
		}
		return nil, err
	}

	s.bus.Publish(event.Event{
		Type:         event.TypeDocumentRegistered,
		Owner:        stored.Owner,
		DocumentID:   stored.DocumentID,
		DocumentHash: stored.DocumentHash,
		DocumentType: stored.DocumentType,
		Timestamp:    stored.Timestamp,
	})
	return stored, nil
}

func (s *service) Verify(ctx context.Context, caller, documentID, candidateHash string) (bool, error) {
	doc, err := s.repo.Find(ctx, caller, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, fmt.Errorf("verify %s/%s: %w", caller, documentID, ErrNotFound)
		}
		return false, err
	}

	matched := doc.DocumentHash == candidateHash

	s.bus.Publish(event.Event{
		Type:       event.TypeDocumentVerified,
		Owner:      caller,
		DocumentID: documentID,
		Matched:    matched,
		Timestamp:  s.now().UTC(),
	})
	return matched, nil
}

func (s *service) Get(ctx context.Context, owner, documentID string) (*model.Document, error) {
	doc, err := s.repo.Find(ctx, owner, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("get %s/%s: %w", owner, documentID, ErrNotFound)
		}
		return nil, err
	}
	return doc, nil
}

func (s *service) ListIDs(ctx context.Context, owner string) ([]string, error) {
	return s.repo.ListIDs(ctx, owner)
}

func (s *service) Count(ctx context.Context, owner string) (int, error) {
	return s.repo.Count(ctx, owner)
}
