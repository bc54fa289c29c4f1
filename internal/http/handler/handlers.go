package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"docregistry/internal/event"
	"docregistry/internal/registry"
)

// OwnerHeader carries the caller identity. The fronting backend authenticates
// its end user and translates that identity into this header; the registry
// itself performs no authentication.
const OwnerHeader = "X-Owner-ID"

type registerRequest struct {
	DocumentID   string `json:"document_id"`
	DocumentHash string `json:"document_hash"`
	DocumentType string `json:"document_type"`
}

type verifyRequest struct {
	DocumentHash string `json:"document_hash"`
}

type verifyResponse struct {
	Matched bool `json:"matched"`
}

type listResponse struct {
	DocumentIDs []string `json:"document_ids"`
	Total       int      `json:"total"`
}

type countResponse struct {
	Count int `json:"count"`
}

func owner(c *fiber.Ctx) string {
	return c.Get(OwnerHeader)
}

// HealthCheck returns a handler that checks DB connectivity.
// A nil db (memory store deployments) reports healthy.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe returns a simple liveness handler.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterDocument handles document registration.
//
// @Summary Register a document fingerprint
// @Tags documents
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Caller identity"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /documents [post]
func RegisterDocument(svc registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		doc, err := svc.Register(c.UserContext(), owner(c), req.DocumentID, req.DocumentHash, req.DocumentType)
		if err != nil {
			switch {
			case errors.Is(err, registry.ErrOwnerRequired):
				return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner identity is required")
			case errors.Is(err, registry.ErrDocumentIDRequired):
				return writeError(c, fiber.StatusBadRequest, "DOCUMENT_ID_REQUIRED", "document id is required")
			case errors.Is(err, registry.ErrAlreadyRegistered):
				return writeError(c, fiber.StatusConflict, "ALREADY_REGISTERED", "document already registered")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// VerifyDocument handles fingerprint verification. A mismatch is a successful
// response with matched=false, never an error status.
//
// @Summary Verify a document fingerprint
// @Tags documents
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Caller identity"
// @Param id path string true "Document ID"
// @Success 200 {object} verifyResponse
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/verify [post]
func VerifyDocument(svc registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if owner(c) == "" {
			return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner identity is required")
		}

		var req verifyRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		matched, err := svc.Verify(c.UserContext(), owner(c), c.Params("id"), req.DocumentHash)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(verifyResponse{Matched: matched})
	}
}

// GetDocument returns a single registered record.
//
// @Summary Get a registered document record
// @Tags documents
// @Produce json
// @Param X-Owner-ID header string true "Owner identity"
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(svc registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if owner(c) == "" {
			return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner identity is required")
		}

		doc, err := svc.Get(c.UserContext(), owner(c), c.Params("id"))
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(doc)
	}
}

// ListDocuments returns the owner's document identifiers in registration order.
//
// @Summary List registered document IDs
// @Tags documents
// @Produce json
// @Param X-Owner-ID header string true "Owner identity"
// @Success 200 {object} listResponse
// @Router /documents [get]
func ListDocuments(svc registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if owner(c) == "" {
			return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner identity is required")
		}

		ids, err := svc.ListIDs(c.UserContext(), owner(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(listResponse{DocumentIDs: ids, Total: len(ids)})
	}
}

// DocumentCount returns the number of documents registered under the owner.
//
// @Summary Count registered documents
// @Tags documents
// @Produce json
// @Param X-Owner-ID header string true "Owner identity"
// @Success 200 {object} countResponse
// @Router /documents/count [get]
func DocumentCount(svc registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if owner(c) == "" {
			return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner identity is required")
		}

		n, err := svc.Count(c.UserContext(), owner(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(countResponse{Count: n})
	}
}

// ListEvents returns the owner's persisted event trail in append order,
// trimmed to the most recent ?limit= entries when given.
//
// @Summary List registry events
// @Tags events
// @Produce json
// @Param X-Owner-ID header string true "Owner identity"
// @Param limit query int false "Return at most this many recent events"
// @Success 200 {array} event.Event
// @Router /events [get]
func ListEvents(store event.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if owner(c) == "" {
			return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner identity is required")
		}

		evs, err := store.ListByOwner(c.UserContext(), owner(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
			if limit < len(evs) {
				evs = evs[len(evs)-limit:]
			}
		}
		return c.JSON(evs)
	}
}

const defaultRecentLimit = 50

// RecentEvents returns the newest events across all owners, for operational
// inspection. Not owner-scoped.
//
// @Summary List most recent registry events across owners
// @Tags events
// @Produce json
// @Param limit query int false "Return at most this many events (default 50)"
// @Success 200 {array} event.Event
// @Router /events/recent [get]
func RecentEvents(store event.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := defaultRecentLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			n, err := strconv.Atoi(limitStr)
			if err != nil || n < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
			limit = n
		}

		evs, err := store.ListRecent(c.UserContext(), limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(evs)
	}
}
