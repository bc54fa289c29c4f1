package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docregistry/internal/event"
	"docregistry/internal/registry"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the in-memory store backend is configured.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc registry.Service, events event.Store) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/documents", RegisterDocument(svc))
	app.Get("/documents", ListDocuments(svc))
	app.Get("/documents/count", DocumentCount(svc))
	app.Get("/documents/:id", GetDocument(svc))
	app.Post("/documents/:id/verify", VerifyDocument(svc))

	app.Get("/events", ListEvents(events))
	app.Get("/events/recent", RecentEvents(events))
}
