package event

import "time"

// Type discriminates registry notifications.
type Type string

const (
	// TypeDocumentRegistered is emitted once per successful registration.
	TypeDocumentRegistered Type = "document_registered"
	// TypeDocumentVerified is emitted on every verification call, whether or
	// not the presented hash matched.
	TypeDocumentVerified Type = "document_verified"
)

// Event describes a completed registry operation. It is transport-agnostic so
// stores and sinks (log store, Kafka, object-storage archive) can fan out.
// Hash and DocumentType are only set on registration events; Matched is only
// meaningful on verification events.
type Event struct {
	Type         Type      `json:"type"`
	Owner        string    `json:"owner"`
	DocumentID   string    `json:"document_id"`
	DocumentHash string    `json:"document_hash,omitempty"`
	DocumentType string    `json:"document_type,omitempty"`
	Matched      bool      `json:"matched,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
