package container

import (
	"fmt"
	"log"

	"spotify-etl/internal/config"
	snapshotHandler "spotify-etl/internal/domains/snapshot/handler"
	snapshotService "spotify-etl/internal/domains/snapshot/service"
	"spotify-etl/internal/infrastructure/queue"
	"spotify-etl/internal/infrastructure/spotify"
	"spotify-etl/internal/infrastructure/storage"
)

// Container holds the application's dependency graph.
// Initialization order matters: config → infrastructure → services →
// handlers. Everything is a singleton for the process lifetime.
type Container struct {
	// Infrastructure
	Config  *config.Config
	Storage *storage.MinIOStorage
	Queue   *queue.Client
	Catalog *spotify.Client

	// Services
	TransformService snapshotService.TransformService
	ExtractService   snapshotService.ExtractService

	// HTTP handlers
	ExtractHandler *snapshotHandler.ExtractHandler
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Config first — nothing depends on more than the environment.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Object store
	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object store: %w", err)
	}
	c.Storage = store
	log.Printf("✅ Object store connected (bucket: %s)", cfg.MinIO.Bucket)

	// Task queue client
	c.Queue = queue.NewClient(cfg.Redis.Host)

	// Catalog API client
	c.Catalog = spotify.NewClient(cfg.Spotify)

	// Services
	c.TransformService = snapshotService.NewTransformService(c.Storage, cfg.Pipeline)
	c.ExtractService = snapshotService.NewExtractService(c.Catalog, c.Storage, c.Queue, cfg.Pipeline)

	// Handlers
	c.ExtractHandler = snapshotHandler.NewExtractHandler(c.ExtractService)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}
	log.Println("✅ Container cleanup completed")
}
