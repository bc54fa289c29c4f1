package model

import "time"

// Document is one registered fingerprint record.
// This is a pure domain model with no database-specific dependencies or tags.
// The hash is an opaque caller-supplied token: the registry never computes,
// normalizes, or inspects it. A record never changes after registration.
type Document struct {
	Owner        string    `json:"owner"`
	DocumentID   string    `json:"document_id"`
	DocumentHash string    `json:"document_hash"`
	DocumentType string    `json:"document_type"`
	Timestamp    time.Time `json:"timestamp"`
}
