package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"docregistry/internal/model"
	"docregistry/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.RegistryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// Commit atomicity for racing inserts is delegated to the primary key on
// (owner, document_id): ON CONFLICT DO NOTHING guarantees exactly one winner
// without any application-level locking. Registration order is recorded by the
// seq column assigned at insert time.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.RegistryRepository = (*DocumentPostgres)(nil)

// Insert commits a new document row. The database assigns the timestamp and
// the enumeration position. A conflicting row maps to repository.ErrConflict
// and leaves the table untouched.
func (r *DocumentPostgres) Insert(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (owner, document_id, document_hash, document_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner, document_id) DO NOTHING
		RETURNING owner, document_id, document_hash, document_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.Owner,
		doc.DocumentID,
		doc.DocumentHash,
		doc.DocumentType,
	)
	var out model.Document
	if err := row.Scan(
		&out.Owner,
		&out.DocumentID,
		&out.DocumentHash,
		&out.DocumentType,
		&out.Timestamp,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// DO NOTHING returned no row: the slot is occupied.
			return nil, fmt.Errorf("insert document %s/%s: %w", doc.Owner, doc.DocumentID, repository.ErrConflict)
		}
		return nil, err
	}
	return &out, nil
}

// Find fetches a single document by its composite key.
func (r *DocumentPostgres) Find(ctx context.Context, owner, documentID string) (*model.Document, error) {
	const q = `
		SELECT owner, document_id, document_hash, document_type, created_at
		FROM documents
		WHERE owner = $1 AND document_id = $2
	`
	row := r.db.QueryRowContext(ctx, q, owner, documentID)
	var d model.Document
	if err := row.Scan(
		&d.Owner,
		&d.DocumentID,
		&d.DocumentHash,
		&d.DocumentType,
		&d.Timestamp,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find document %s/%s: %w", owner, documentID, repository.ErrNotFound)
		}
		return nil, err
	}
	return &d, nil
}

// ListIDs returns the owner's document identifiers in registration order.
func (r *DocumentPostgres) ListIDs(ctx context.Context, owner string) ([]string, error) {
	const q = `
		SELECT document_id
		FROM documents
		WHERE owner = $1
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Count returns the number of records registered under owner.
func (r *DocumentPostgres) Count(ctx context.Context, owner string) (int, error) {
	const q = `SELECT COUNT(*) FROM documents WHERE owner = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, owner).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
