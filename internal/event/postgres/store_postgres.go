package postgres

import (
	"context"
	"database/sql"

	"docregistry/internal/event"
)

// Store persists the event log in the registry_events table. Rows are only
// ever inserted; the id sequence provides append order.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ event.Store = (*Store)(nil)

func (s *Store) Append(ctx context.Context, ev event.Event) error {
	const q = `
		INSERT INTO registry_events (event_type, owner, document_id, document_hash, document_type, matched, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, q,
		string(ev.Type),
		ev.Owner,
		ev.DocumentID,
		ev.DocumentHash,
		ev.DocumentType,
		ev.Matched,
		ev.Timestamp,
	)
	return err
}

func (s *Store) ListByOwner(ctx context.Context, owner string) ([]event.Event, error) {
	const q = `
		SELECT event_type, owner, document_id, document_hash, document_type, matched, created_at
		FROM registry_events
		WHERE owner = $1
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]event.Event, error) {
	const q = `
		SELECT event_type, owner, document_id, document_hash, document_type, matched, created_at
		FROM registry_events
		ORDER BY id DESC
		LIMIT $1
	`
	var limitArg any = limit
	if limit <= 0 {
		limitArg = nil
	}
	rows, err := s.db.QueryContext(ctx, q, limitArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evs, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	// Restore append order.
	for i, j := 0, len(evs)-1; i < j; i, j = i+1, j-1 {
		evs[i], evs[j] = evs[j], evs[i]
	}
	return evs, nil
}

func scanEvents(rows *sql.Rows) ([]event.Event, error) {
	evs := make([]event.Event, 0)
	for rows.Next() {
		var ev event.Event
		var typ string
		if err := rows.Scan(
			&typ,
			&ev.Owner,
			&ev.DocumentID,
			&ev.DocumentHash,
			&ev.DocumentType,
			&ev.Matched,
			&ev.Timestamp,
		); err != nil {
			return nil, err
		}
		ev.Type = event.Type(typ)
		evs = append(evs, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return evs, nil
}
