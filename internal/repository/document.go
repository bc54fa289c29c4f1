package repository

import (
	"context"
	"errors"

	"docregistry/internal/model"
)

// Sentinel errors for store facts. Implementations return these (optionally
// wrapped) so the service layer can translate them into domain errors.
var (
	// ErrNotFound indicates no record exists at (owner, documentID).
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates (owner, documentID) is already occupied.
	ErrConflict = errors.New("conflict")
)

// RegistryRepository is the durable home for Document records and each
// owner's ordered identifier list. Records are append-only: there is no
// update or delete, and a committed record never changes.
type RegistryRepository interface {
	// Insert commits a new record if (owner, documentID) is vacant and
	// appends documentID to the owner's identifier list as part of the same
	// commit. The store assigns the timestamp; the returned document carries
	// it. Returns ErrConflict if the slot is occupied, leaving the list
	// untouched. Racing inserts on the same key yield exactly one success.
	Insert(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Find returns the record at (owner, documentID) or ErrNotFound.
	Find(ctx context.Context, owner, documentID string) (*model.Document, error)

	// ListIDs returns the owner's document identifiers in registration order.
	ListIDs(ctx context.Context, owner string) ([]string, error)

	// Count returns the number of records registered under owner.
	Count(ctx context.Context, owner string) (int, error)
}
