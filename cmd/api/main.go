package main

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docregistry/docs"
	"docregistry/internal/config"
	"docregistry/internal/database"
	"docregistry/internal/database/migration"
	"docregistry/internal/event"
	"docregistry/internal/event/archive"
	"docregistry/internal/event/kafka"
	eventmemory "docregistry/internal/event/memory"
	eventpostgres "docregistry/internal/event/postgres"
	handlers "docregistry/internal/http/handler"
	"docregistry/internal/http/middleware"
	"docregistry/internal/otel"
	"docregistry/internal/registry"
	"docregistry/internal/repository"
	repomemory "docregistry/internal/repository/memory"
	repopostgres "docregistry/internal/repository/postgres"
	"docregistry/internal/storage"
)

// @title Document Hash Registry API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Select the registry store backend. Postgres is the durable default;
	// memory serves single-process deployments and local development.
	var (
		db       *sql.DB
		repo     repository.RegistryRepository
		eventLog event.Store
	)
	switch cfg.StoreBackend {
	case "memory":
		repo = repomemory.NewDocumentMemory()
		eventLog = eventmemory.NewStore()
	default:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		repo = repopostgres.NewDocumentPostgres(db)
		eventLog = eventpostgres.NewStore(db)
	}

	// Event fan-out: every registration and verification is published to the
	// bus; the worker persists the trail, optional sinks bridge it outward.
	bus := event.NewMemoryBus()
	prometheus.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "registry_events_dropped_total",
		Help: "Events discarded because a bus subscriber could not keep up",
	}, func() float64 { return float64(bus.Dropped()) }))

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	logInbox, cancelLog := bus.Subscribe(cfg.Events.BufferSize)
	defer cancelLog()
	go func() {
		if err := event.NewWorker(eventLog, logInbox).Run(workerCtx); err != nil && err != context.Canceled {
			log.Printf("event log worker stopped: %v", err)
		}
	}()

	if len(cfg.Events.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			log.Fatalf("failed to connect to kafka: %v", err)
		}
		defer publisher.Close()

		kafkaInbox, cancelKafka := bus.Subscribe(cfg.Events.BufferSize)
		defer cancelKafka()
		go func() {
			if err := publisher.Run(workerCtx, kafkaInbox); err != nil && err != context.Canceled {
				log.Printf("kafka publisher stopped: %v", err)
			}
		}()
	}

	if cfg.MinIO.Endpoint != "" {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}

		archInbox, cancelArch := bus.Subscribe(cfg.Events.BufferSize)
		defer cancelArch()
		archiver := archive.NewArchiver(objStore, cfg.Archive.Prefix, cfg.Archive.BatchSize, cfg.Archive.FlushEvery)
		go func() {
			if err := archiver.Run(workerCtx, archInbox); err != nil && err != context.Canceled {
				log.Printf("event archiver stopped: %v", err)
			}
		}()
	}

	svc := registry.NewService(repo, bus)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, svc, eventLog)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
