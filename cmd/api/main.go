package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/Fid-Wiz/timecapsule/internal/config"
	"github.com/Fid-Wiz/timecapsule/internal/embedding"
	"github.com/Fid-Wiz/timecapsule/internal/http"
	"github.com/Fid-Wiz/timecapsule/internal/ingest"
	"github.com/Fid-Wiz/timecapsule/internal/objectstore"
	"github.com/Fid-Wiz/timecapsule/internal/search"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
	"github.com/Fid-Wiz/timecapsule/internal/sweeper"
	"github.com/Fid-Wiz/timecapsule/internal/vectorstore"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API provides a time-capsule service: capsules hold items that stay
// hidden until a scheduled unlock time, and unlocked content is searchable
// by meaning through vector embeddings.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Time Capsule API
//   description: |
//     Time-gated capsule service. Capsules collect text and media items,
//     stay locked until their unlock time passes, and expose unlocked
//     content through a public feed and a semantic search endpoint.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	capsuleRepo := storage.NewCapsuleRepo(db)
	itemRepo := storage.NewItemRepo(db)
	engagementRepo := storage.NewEngagementRepo(db)
	inviteRepo := storage.NewInviteRepo(db)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Ensure collection exists with correct vector size
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, embedding.Dim); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", embedding.Dim)

	// Create embedding service. Without an API key the service still runs,
	// falling back to zero vectors so ingestion never blocks on the provider.
	var embedClient *embedding.Client
	if cfg.HFAPIKey != "" {
		embedClient = embedding.NewClient(cfg.EmbeddingBaseURL, cfg.HFAPIKey, cfg.EmbeddingModel, cfg.EmbeddingTimeout)
		slog.Info("Embedding client configured", "model", cfg.EmbeddingModel)
	} else {
		slog.Warn("No embedding API key set, items will be stored with zero vectors")
	}
	embedService := embedding.NewService(embedClient)

	// Object storage is optional; without it uploads are rejected but
	// structured items still work.
	var objects objectstore.Store
	if cfg.MinioEndpoint != "" {
		minioStore, err := objectstore.NewMinioStore(ctx, objectstore.MinioConfig{
			Endpoint:   cfg.MinioEndpoint,
			AccessKey:  cfg.MinioAccessKey,
			SecretKey:  cfg.MinioSecretKey,
			Bucket:     cfg.MinioBucket,
			Secure:     cfg.MinioSecure,
			PublicBase: cfg.MinioPublicURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		objects = minioStore
		slog.Info("Object storage ready", "endpoint", cfg.MinioEndpoint, "bucket", cfg.MinioBucket)
	} else {
		slog.Warn("No object storage configured, media uploads are disabled")
	}

	// Create ingestion pipeline
	pipeline := ingest.NewPipeline(
		capsuleRepo,
		itemRepo,
		embedService,
		vectorStore,
		objects,
		cfg.QdrantCollection,
	)

	// Create search engine
	searchEngine := search.NewEngine(embedService, vectorStore, cfg.QdrantCollection)
	slog.Info("Search engine initialized")

	// Create unlock sweeper and start the periodic sweep
	sweep := sweeper.New(capsuleRepo, cfg.SweepInterval)
	go sweep.Run(ctx)
	slog.Info("Unlock sweeper started", "interval", cfg.SweepInterval)

	// Create router with dependencies
	deps := &http.Deps{
		DB:             db,
		Capsules:       capsuleRepo,
		Items:          itemRepo,
		Engagement:     engagementRepo,
		Invites:        inviteRepo,
		Pipeline:       pipeline,
		SearchEngine:   searchEngine,
		Sweeper:        sweep,
		VectorStore:    vectorStore,
		CollectionName: cfg.QdrantCollection,
		CronSecret:     cfg.CronSecret,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
